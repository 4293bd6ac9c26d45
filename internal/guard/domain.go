package guard

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"givehub/internal/obs"
)

// DomainNotFoundMessage is the 404 body for primary-app routes requested on
// the secondary domain.
const DomainNotFoundMessage = "Route not found on this domain"

// SecondaryDomainOnly aborts with 404 any request whose host exactly equals
// the configured secondary hostname while targeting a route outside the
// secondary domain's dedicated route set.
//
// Matching is deliberately exact: subdomains and host:port variants of the
// secondary domain are NOT blocked. That asymmetry is preserved as specified
// and flagged in DESIGN.md rather than silently widened.
func SecondaryDomainOnly(secondaryHost string, secondaryPathPrefixes []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secondaryHost == "" || c.Request().Host != secondaryHost {
				return next(c)
			}
			for _, prefix := range secondaryPathPrefixes {
				if strings.HasPrefix(c.Request().URL.Path, prefix) {
					return next(c)
				}
			}
			obs.RecordDenial("domain", "primary_route_on_secondary_host")
			return echo.NewHTTPError(http.StatusNotFound, DomainNotFoundMessage)
		}
	}
}
