package guard

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"givehub/internal/obs"
)

const (
	merchantDashboardRoute    = "/merchant/dashboard"
	subscriptionRequiredRoute = "/merchant/dashboard?subscription_required=1"
)

// subscriptionExempt reports whether the path stays reachable without an
// active subscription: the merchant's own dashboard and the subscription
// management routes they need to fix the situation.
func subscriptionExempt(path string) bool {
	return path == merchantDashboardRoute ||
		strings.HasPrefix(path, "/merchant/subscription") ||
		strings.HasPrefix(path, "/api/merchant/subscription")
}

// RequireActiveSubscription gates merchant features on a reconciled, active
// subscription. The reconciliation itself (live provider re-check, pending
// cancellation handling, fail-open on provider errors) lives in the
// subscription service; this guard only acts on the outcome.
func (g *Guard) RequireActiveSubscription() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return redirectToLogin(c)
			}

			_, active, err := g.subs.EnsureActive(c.Request().Context(), user.ID)
			if err != nil {
				return err
			}
			if active {
				return next(c)
			}
			if subscriptionExempt(c.Request().URL.Path) {
				return next(c)
			}

			obs.RecordDenial("subscription", "inactive")
			if ExpectsJSON(c) {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"message":               "An active subscription is required.",
					"subscription_required": true,
				})
			}
			return c.Redirect(http.StatusFound, subscriptionRequiredRoute)
		}
	}
}
