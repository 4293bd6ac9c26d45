package guard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"givehub/internal/rbac"
)

const (
	userTopicsRoute = "/topics/select"
	orgTopicsRoute  = "/organization/topics/select"
)

// topicExemptPaths are the routes a user without selected topics may still
// reach: the topic selection/submission pages themselves and logout. The
// allow-list exists to prevent redirect loops.
var topicExemptPaths = map[string]bool{
	userTopicsRoute:    true,
	orgTopicsRoute:     true,
	"/api/topics":      true,
	"/logout":          true,
	"/api/auth/logout": true,
}

// RequireTopicsSelected redirects first-time users who have not picked any
// interested topics to their role's topic-selection page.
func (g *Guard) RequireTopicsSelected() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return redirectToLogin(c)
			}

			if topicExemptPaths[c.Request().URL.Path] {
				return next(c)
			}

			selected, err := g.users.HasSelectedTopics(c.Request().Context(), user.ID)
			if err != nil {
				// fail open: a broken topics lookup should not wall off the app
				c.Logger().Warnf("topic selection lookup for %s: %v", user.ID, err)
				return next(c)
			}
			if selected {
				return next(c)
			}

			if rbac.Role(user.Role).IsOrganization() {
				return c.Redirect(http.StatusFound, orgTopicsRoute)
			}
			return c.Redirect(http.StatusFound, userTopicsRoute)
		}
	}
}
