// Package guard implements the request admission chain. Each guard is an
// independent echo middleware: it either passes the request through (plus
// optional context attributes) or terminates it with a redirect, a JSON 403,
// or a rendered denial page. Guards never partially apply; composition order
// on a route group is evaluation order, short-circuiting on first denial.
package guard

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"givehub/internal/config"
	"givehub/internal/model"
	"givehub/internal/rbac"
	"givehub/internal/settings"
)

const (
	userContextKey = "auth_user"
	orgContextKey  = "auth_organization"

	loginRoute = "/login"
)

// UserSource is the slice of user persistence the guards need.
type UserSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateTimezone(ctx context.Context, id uuid.UUID, timezone string) error
	HasSelectedTopics(ctx context.Context, id uuid.UUID) (bool, error)
}

// OrganizationSource resolves a user's organization.
type OrganizationSource interface {
	FindByBoardMember(ctx context.Context, userID uuid.UUID) (*model.Organization, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) (*model.Organization, error)
	HasActiveBoardOfficer(ctx context.Context, orgID uuid.UUID) (bool, error)
}

// SubscriptionChecker reconciles and reports a merchant's subscription.
type SubscriptionChecker interface {
	EnsureActive(ctx context.Context, merchantID uuid.UUID) (*model.Subscription, bool, error)
}

// Notifier re-sends the email verification notice for interactive requests.
type Notifier interface {
	SendVerificationNotice(ctx context.Context, user *model.User) error
}

// DenyRenderer renders the permission-denied page for non-JSON clients.
type DenyRenderer interface {
	RenderDenied(c echo.Context, props map[string]interface{}) error
}

// Deps carries everything the guard chain needs.
type Deps struct {
	Users      UserSource
	Orgs       OrganizationSource
	Subs       SubscriptionChecker
	Resolver   rbac.Resolver
	Settings   settings.Provider
	Notifier   Notifier
	Pages      DenyRenderer
	Compliance config.ComplianceChecks
}

// Guard builds the admission middlewares.
type Guard struct {
	users      UserSource
	orgs       OrganizationSource
	subs       SubscriptionChecker
	resolver   rbac.Resolver
	settings   settings.Provider
	notifier   Notifier
	pages      DenyRenderer
	compliance config.ComplianceChecks
}

// New creates a Guard.
func New(deps Deps) *Guard {
	return &Guard{
		users:      deps.Users,
		orgs:       deps.Orgs,
		subs:       deps.Subs,
		resolver:   deps.Resolver,
		settings:   deps.Settings,
		notifier:   deps.Notifier,
		pages:      deps.Pages,
		compliance: deps.Compliance,
	}
}

// CurrentUser returns the authenticated user attached to the request, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// SetCurrentUser attaches the authenticated user to the request context.
// Exported for handler tests.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(userContextKey, user)
}

// CurrentOrganization returns the organization attached by
// RequireApprovedOrganization, or nil.
func CurrentOrganization(c echo.Context) *model.Organization {
	org, _ := c.Get(orgContextKey).(*model.Organization)
	return org
}

// ExpectsJSON reports whether the client negotiated a JSON response. A single
// request never receives a mix of JSON and rendered denial shapes.
func ExpectsJSON(c echo.Context) bool {
	if c.Request().Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// backURL resolves the "back" link on a denial page: explicit referer first,
// else the role's default landing route.
func backURL(c echo.Context, role rbac.Role) string {
	if referer := c.Request().Referer(); referer != "" {
		return referer
	}
	return rbac.DefaultLandingRoute(role)
}

func redirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, loginRoute)
}
