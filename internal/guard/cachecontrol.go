package guard

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// noStorePaths are the authentication-related paths whose responses must
// never be cached: a cached login or register page can serve a stale CSRF
// token from a proxy or service worker.
var noStorePaths = map[string]bool{
	"/":             true,
	"/login":        true,
	"/register":     true,
	"/verify-email": true,
}

var noStorePrefixes = []string{
	"/forgot-password",
	"/reset-password",
}

// NoStoreCacheHeaders stamps no-store headers on responses for the
// authentication path allow-list. Headers are set before the handler runs so
// they go out on every outcome, success or failure.
func NoStoreCacheHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cacheSuppressed(c.Request().URL.Path) {
				h := c.Response().Header()
				h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
				h.Set("Pragma", "no-cache")
				h.Set("Expires", "0")
			}
			return next(c)
		}
	}
}

func cacheSuppressed(path string) bool {
	if noStorePaths[path] {
		return true
	}
	for _, prefix := range noStorePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
