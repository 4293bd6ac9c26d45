package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"givehub/internal/guard"
	"givehub/internal/page"
	"givehub/internal/service"
)

// PageHandler renders the server-driven pages.
type PageHandler struct {
	pages       *page.Renderer
	userService service.UserService
	orgService  service.OrganizationService
	subService  service.SubscriptionService
	feedService service.FeedService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(pages *page.Renderer, userService service.UserService,
	orgService service.OrganizationService, subService service.SubscriptionService,
	feedService service.FeedService) *PageHandler {
	return &PageHandler{
		pages:       pages,
		userService: userService,
		orgService:  orgService,
		subService:  subService,
		feedService: feedService,
	}
}

// Home renders the landing page, or forwards signed-in users to their
// dashboard.
func (h *PageHandler) Home(c echo.Context) error {
	if user := guard.CurrentUser(c); user != nil {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return h.pages.Render(c, "Home", nil)
}

// Login renders the login page.
func (h *PageHandler) Login(c echo.Context) error {
	if user := guard.CurrentUser(c); user != nil {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return h.pages.Render(c, "Auth/Login", nil)
}

// RegisterPage renders the registration page.
func (h *PageHandler) RegisterPage(c echo.Context) error {
	return h.pages.Render(c, "Auth/Register", nil)
}

// Dashboard renders the shared dashboard for admins and organizations.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return h.pages.Render(c, "Dashboard", nil)
}

// MerchantDashboard renders the merchant dashboard. It stays reachable
// without an active subscription; subscription_required=1 in the query
// flags the redirect banner.
func (h *PageHandler) MerchantDashboard(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return c.Redirect(http.StatusFound, "/login")
	}

	sub, active, err := h.subService.EnsureActive(c.Request().Context(), user.ID)
	if err != nil {
		return domainError(err)
	}
	return h.pages.Render(c, "Merchant/Dashboard", map[string]interface{}{
		"subscription":         sub,
		"subscriptionActive":   active,
		"subscriptionRequired": c.QueryParam("subscription_required") == "1",
	})
}

// Profile renders the user profile page.
func (h *PageHandler) Profile(c echo.Context) error {
	return h.pages.Render(c, "Profile", nil)
}

// TopicSelect renders the topic selection page for regular users.
func (h *PageHandler) TopicSelect(c echo.Context) error {
	return h.topicSelect(c, "Topics/Select")
}

// OrgTopicSelect renders the topic selection page for organizations.
func (h *PageHandler) OrgTopicSelect(c echo.Context) error {
	return h.topicSelect(c, "Topics/OrgSelect")
}

func (h *PageHandler) topicSelect(c echo.Context, component string) error {
	topics, err := h.userService.ListTopics(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return h.pages.Render(c, component, map[string]interface{}{
		"topics": topics,
	})
}

// VerifyNotice renders the "verify your email" interstitial.
func (h *PageHandler) VerifyNotice(c echo.Context) error {
	return h.pages.Render(c, "Auth/VerifyEmail", nil)
}

// BarterHome renders the barter network home with the approved directory.
func (h *PageHandler) BarterHome(c echo.Context) error {
	orgs, err := h.orgService.ListApproved(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return h.pages.Render(c, "Barter/Home", map[string]interface{}{
		"organization":  guard.CurrentOrganization(c),
		"organizations": orgs,
	})
}

// Feed renders the social feed page.
func (h *PageHandler) Feed(c echo.Context) error {
	posts, err := h.feedService.ListRecent(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return h.pages.Render(c, "Feed", map[string]interface{}{
		"posts": posts,
	})
}
