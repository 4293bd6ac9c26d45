package guard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"givehub/internal/obs"
	"givehub/internal/rbac"
)

const permissionDeniedMessage = "You do not have permission to perform this action."

// PermissionDeniedResponse is the JSON body for a named-capability denial.
type PermissionDeniedResponse struct {
	Message    string `json:"message"`
	Permission string `json:"permission"`
}

// RequirePermission is the named-capability strategy: the request passes when
// the permission set resolved through the user's role contains permission.
// The guard reads the user and role associations only; it never mutates them.
func (g *Guard) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return g.checkPermission(c, permission, next)
		}
	}
}

// RequireCodePermission derives the permission from the :kind route parameter,
// e.g. DELETE on /codes/classification needs "classification.code.delete".
func (g *Guard) RequireCodePermission(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return g.checkPermission(c, rbac.CodePermission(c.Param("kind"), action), next)
		}
	}
}

func (g *Guard) checkPermission(c echo.Context, permission string, next echo.HandlerFunc) error {
	user := CurrentUser(c)
	if user == nil {
		return redirectToLogin(c)
	}

	role := rbac.Role(user.Role)
	granted, err := g.resolver.PermissionsForRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	for _, name := range granted {
		if name == permission {
			return next(c)
		}
	}

	obs.RecordDenial("permission", permission)
	if ExpectsJSON(c) {
		return c.JSON(http.StatusForbidden, PermissionDeniedResponse{
			Message:    permissionDeniedMessage,
			Permission: permission,
		})
	}
	return g.pages.RenderDenied(c, map[string]interface{}{
		"message":            permissionDeniedMessage,
		"permission":         permission,
		"userRole":           user.Role,
		"userRoles":          []string{user.Role},
		"userPermissions":    granted,
		"requiredPermission": permission,
		"backUrl":            backURL(c, role),
	})
}
