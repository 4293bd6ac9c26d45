package guard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"givehub/internal/obs"
	"givehub/internal/rbac"
)

const roleDeniedMessage = "You do not have the required role to access this resource."

// RoleDeniedResponse is the JSON body for an enumerated-role denial.
type RoleDeniedResponse struct {
	Message       string   `json:"message"`
	RequiredRoles []string `json:"requiredRoles"`
	UserRole      string   `json:"userRole"`
}

// RequireRoles is the enumerated-role strategy: the request passes when the
// user's role satisfies any of the acceptable roles. organization_pending
// satisfies organization. This guard and RequirePermission are distinct
// strategies; a route declares one or the other, never both in one guard.
func (g *Guard) RequireRoles(roles ...rbac.Role) echo.MiddlewareFunc {
	required := make([]string, len(roles))
	for i, r := range roles {
		required[i] = string(r)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return redirectToLogin(c)
			}

			role := rbac.Role(user.Role)
			for _, acceptable := range roles {
				if role.Satisfies(acceptable) {
					return next(c)
				}
			}

			obs.RecordDenial("role", "role_mismatch")
			if ExpectsJSON(c) {
				return c.JSON(http.StatusForbidden, RoleDeniedResponse{
					Message:       roleDeniedMessage,
					RequiredRoles: required,
					UserRole:      user.Role,
				})
			}
			return g.pages.RenderDenied(c, map[string]interface{}{
				"message":       roleDeniedMessage,
				"requiredRoles": required,
				"userRole":      user.Role,
				"backUrl":       backURL(c, role),
			})
		}
	}
}
