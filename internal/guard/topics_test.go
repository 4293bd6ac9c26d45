package guard

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"givehub/internal/config"
	"givehub/internal/rbac"
)

func TestTopicsGuardRedirectsUsersWithoutSelection(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleUser)
	f.users.users[user.ID] = user

	c, rec := request(http.MethodGet, "/feed", false)
	SetCurrentUser(c, user)

	err := f.guard.RequireTopicsSelected()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/topics/select", rec.Header().Get(echo.HeaderLocation))
}

func TestTopicsGuardRedirectsOrganizationsToTheirPage(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	for _, role := range []rbac.Role{rbac.RoleOrganization, rbac.RoleOrganizationPending} {
		user := testUser(role)
		c, rec := request(http.MethodGet, "/feed", false)
		SetCurrentUser(c, user)

		err := f.guard.RequireTopicsSelected()(okHandler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/organization/topics/select", rec.Header().Get(echo.HeaderLocation), string(role))
	}
}

func TestTopicsGuardPassesAfterSelection(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleUser)
	f.users.topics[user.ID] = true

	c, rec := request(http.MethodGet, "/feed", false)
	SetCurrentUser(c, user)

	err := f.guard.RequireTopicsSelected()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTopicsGuardExemptPathsAvoidRedirectLoop(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleUser)

	for _, path := range []string{"/topics/select", "/organization/topics/select", "/api/topics", "/logout", "/api/auth/logout"} {
		c, rec := request(http.MethodGet, path, false)
		SetCurrentUser(c, user)

		err := f.guard.RequireTopicsSelected()(okHandler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestTopicsGuardFailsOpenOnLookupError(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	f.users.topicsErr = errors.New("db down")
	user := testUser(rbac.RoleUser)

	c, rec := request(http.MethodGet, "/feed", false)
	SetCurrentUser(c, user)

	err := f.guard.RequireTopicsSelected()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
