package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"givehub/internal/auth"
	"givehub/internal/config"
	"givehub/internal/rbac"
)

const testSecret = "test-secret"

// serveAuthed runs a request through the full authentication prologue the
// router installs: token parsing, user hydration, then RequireAuth.
func serveAuthed(f *guardFixture, configure func(*http.Request)) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(Authenticate(testSecret))
	e.Use(f.guard.LoadUser())
	e.GET("/dashboard", func(c echo.Context) error {
		return c.String(http.StatusOK, CurrentUser(c).Email)
	}, f.guard.RequireAuth())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateBearerHeader(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleUser)
	f.users.users[user.ID] = user

	token, err := auth.NewJWTService(testSecret).GenerateAccessToken(user.ID, user.Email, user.Role)
	assert.NoError(t, err)

	rec := serveAuthed(f, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.Email, rec.Body.String())
}

func TestAuthenticateCookie(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleUser)
	f.users.users[user.ID] = user

	token, err := auth.NewJWTService(testSecret).GenerateAccessToken(user.ID, user.Email, user.Role)
	assert.NoError(t, err)

	rec := serveAuthed(f, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.Email, rec.Body.String())
}

func TestAuthenticateMissingTokenRedirects(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	rec := serveAuthed(f, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthenticateGarbageTokenRedirects(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	// An invalid token is treated as no identity, never as a 401.
	rec := serveAuthed(f, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.jwt")
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestLoadUserDeletedAccountProceedsUnauthenticated(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleUser)
	// Token is valid but the account is gone from the store.

	token, err := auth.NewJWTService(testSecret).GenerateAccessToken(user.ID, user.Email, user.Role)
	assert.NoError(t, err)

	rec := serveAuthed(f, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}
