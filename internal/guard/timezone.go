package guard

import (
	"github.com/labstack/echo/v4"
)

// TimezoneHeader carries the client-detected IANA timezone name.
const TimezoneHeader = "X-Timezone"

// SyncTimezone opportunistically stores a client-supplied timezone when it
// differs from the one on record. Plain read-then-write, last writer wins;
// contention on a per-user field is negligible and a lost update self-heals
// on the next request.
func (g *Guard) SyncTimezone() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			tz := c.Request().Header.Get(TimezoneHeader)
			if user != nil && tz != "" && tz != user.Timezone {
				if err := g.users.UpdateTimezone(c.Request().Context(), user.ID, tz); err != nil {
					c.Logger().Warnf("update timezone for %s: %v", user.ID, err)
				} else {
					user.Timezone = tz
				}
			}
			return next(c)
		}
	}
}
