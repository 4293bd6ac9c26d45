// Package page renders server-driven pages: an HTML shell carrying a JSON
// page object for the client runtime, or the bare page object for XHR
// navigations. It also reflects the authenticated user's role and permission
// grants into every page's shared props so the client can hide controls the
// server would deny anyway.
package page

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"givehub/internal/guard"
	"givehub/internal/model"
	"givehub/internal/rbac"
)

const deniedComponent = "Errors/PermissionDenied"

const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>GiveHub</title>
<link rel="stylesheet" href="/assets/app.css">
</head>
<body>
<div id="app" data-page="{{.}}"></div>
<script src="/assets/app.js" defer></script>
</body>
</html>
`

// Renderer builds page objects and writes them as HTML shells or JSON.
type Renderer struct {
	resolver         rbac.Resolver
	publicStorageURL string
	shell            *template.Template
}

// NewRenderer creates a Renderer. publicStorageURL prefixes stored image
// paths so the client receives fully qualified URLs.
func NewRenderer(resolver rbac.Resolver, publicStorageURL string) *Renderer {
	return &Renderer{
		resolver:         resolver,
		publicStorageURL: strings.TrimRight(publicStorageURL, "/"),
		shell:            template.Must(template.New("shell").Parse(shellTemplate)),
	}
}

// Render writes the page for the given component with shared auth props
// merged in.
func (r *Renderer) Render(c echo.Context, component string, props map[string]interface{}) error {
	return r.render(c, http.StatusOK, component, props)
}

// RenderDenied renders the permission-denied page with a 403 status. It
// satisfies the guard chain's DenyRenderer.
func (r *Renderer) RenderDenied(c echo.Context, props map[string]interface{}) error {
	return r.render(c, http.StatusForbidden, deniedComponent, props)
}

func (r *Renderer) render(c echo.Context, status int, component string, props map[string]interface{}) error {
	if props == nil {
		props = map[string]interface{}{}
	}
	props["auth"] = r.authProps(c)

	page := map[string]interface{}{
		"component": component,
		"props":     props,
		"url":       c.Request().URL.RequestURI(),
	}

	if guard.ExpectsJSON(c) {
		return c.JSON(status, page)
	}

	encoded, err := json.Marshal(page)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := r.shell.Execute(&buf, string(encoded)); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// authProps projects the authenticated user, their role and their resolved
// permission grants into the shared props. Guests get a nil user and empty
// permissions so client code can test "auth.user" without special cases.
func (r *Renderer) authProps(c echo.Context) map[string]interface{} {
	user := guard.CurrentUser(c)
	if user == nil {
		return map[string]interface{}{
			"user":        nil,
			"role":        "",
			"permissions": []string{},
		}
	}

	permissions, err := r.resolver.PermissionsForRole(c.Request().Context(), rbac.Role(user.Role))
	if err != nil {
		c.Logger().Warnf("resolve permissions for role %s: %v", user.Role, err)
		permissions = []string{}
	}
	if permissions == nil {
		permissions = []string{}
	}

	return map[string]interface{}{
		"user":        r.userProjection(c, user),
		"role":        user.Role,
		"permissions": permissions,
	}
}

// UserProjection is the client-facing shape of the authenticated user. It
// carries only what pages need; password hashes and audit columns never
// leave the server.
type UserProjection struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Email           string                  `json:"email"`
	Phone           string                  `json:"phone,omitempty"`
	ImageURL        string                  `json:"image_url,omitempty"`
	Timezone        string                  `json:"timezone,omitempty"`
	EmailVerifiedAt *time.Time              `json:"email_verified_at"`
	Organization    *OrganizationProjection `json:"organization,omitempty"`
}

// OrganizationProjection summarizes the organization attached to the request
// by the barter guard.
type OrganizationProjection struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (r *Renderer) userProjection(c echo.Context, user *model.User) *UserProjection {
	projection := &UserProjection{
		ID:              user.ID.String(),
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		Timezone:        user.Timezone,
		EmailVerifiedAt: user.EmailVerifiedAt,
	}
	if user.ImagePath != "" {
		projection.ImageURL = r.publicStorageURL + "/" + strings.TrimLeft(user.ImagePath, "/")
	}
	if org := guard.CurrentOrganization(c); org != nil {
		projection.Organization = &OrganizationProjection{
			ID:     org.ID.String(),
			Name:   org.Name,
			Status: string(org.RegistrationStatus),
		}
	}
	return projection
}
