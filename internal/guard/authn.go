package guard

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"givehub/internal/auth"
)

// Authenticate parses the JWT from the Authorization header or access_token
// cookie. Missing or invalid tokens are ignored here: the request simply
// carries no identity and RequireAuth (or a later guard) decides what to do.
func Authenticate(jwtSecret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(jwtSecret),
		TokenLookup: "header:Authorization:Bearer ,cookie:access_token",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
}

// LoadUser hydrates the authenticated user from validated claims. The user is
// re-read from the database so revoked accounts and role changes take effect
// on the next request, not at token expiry.
func (g *Guard) LoadUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return next(c)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return next(c)
			}
			user, err := g.users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				// unknown or deleted user: proceed unauthenticated
				return next(c)
			}
			SetCurrentUser(c, user)
			return next(c)
		}
	}
}

// RequireAuth terminates unauthenticated requests with a redirect to the
// login entry point. Never a 403: without an identity there is no permission
// context to render a denial against.
func (g *Guard) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return redirectToLogin(c)
			}
			return next(c)
		}
	}
}
