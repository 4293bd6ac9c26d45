package guard

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"givehub/internal/config"
	"givehub/internal/rbac"
)

func TestRequireRolesDeniesWithExactJSONShape(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/api/admin/roles", true)
	SetCurrentUser(c, testUser(rbac.RoleUser))

	err := f.guard.RequireRoles(rbac.RoleAdmin)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "You do not have the required role to access this resource.", body["message"])
	assert.Equal(t, []interface{}{"admin"}, body["requiredRoles"])
	assert.Equal(t, "user", body["userRole"])
}

func TestRequireRolesPassesMatchingRole(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/api/admin/roles", true)
	SetCurrentUser(c, testUser(rbac.RoleAdmin))

	err := f.guard.RequireRoles(rbac.RoleAdmin)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesPendingSatisfiesOrganization(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/organization/area", true)
	SetCurrentUser(c, testUser(rbac.RoleOrganizationPending))

	err := f.guard.RequireRoles(rbac.RoleOrganization)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesAcceptsAnyListedRole(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/dashboard", true)
	SetCurrentUser(c, testUser(rbac.RoleMerchant))

	err := f.guard.RequireRoles(rbac.RoleAdmin, rbac.RoleMerchant)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesRendersDenyPageForBrowsers(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/api/admin/roles", false)
	c.Request().Header.Set("Referer", "/somewhere")
	SetCurrentUser(c, testUser(rbac.RoleMerchant))

	err := f.guard.RequireRoles(rbac.RoleAdmin)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotNil(t, f.renderer.props)
	assert.Equal(t, "merchant", f.renderer.props["userRole"])
	assert.Equal(t, "/somewhere", f.renderer.props["backUrl"])
}

func TestRequireRolesBackURLFallsBackToLandingRoute(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, _ := request(http.MethodGet, "/api/admin/roles", false)
	SetCurrentUser(c, testUser(rbac.RoleMerchant))

	err := f.guard.RequireRoles(rbac.RoleAdmin)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, "/merchant/dashboard", f.renderer.props["backUrl"])
}

func TestRequireRolesUnauthenticatedRedirects(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/api/admin/roles", true)
	err := f.guard.RequireRoles(rbac.RoleAdmin)(okHandler)(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}
