package guard

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"givehub/internal/config"
	"givehub/internal/model"
	"givehub/internal/rbac"
)

func TestSubscriptionGuardPassesActive(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	f.subs.sub = &model.Subscription{Status: model.SubscriptionActive}
	f.subs.active = true

	c, rec := request(http.MethodGet, "/merchant/offers", false)
	SetCurrentUser(c, testUser(rbac.RoleMerchant))

	err := f.guard.RequireActiveSubscription()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubscriptionGuardRedirectsInactiveBrowser(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/merchant/offers", false)
	SetCurrentUser(c, testUser(rbac.RoleMerchant))

	err := f.guard.RequireActiveSubscription()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/merchant/dashboard?subscription_required=1", rec.Header().Get(echo.HeaderLocation))
}

func TestSubscriptionGuardJSONDenial(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/api/merchant/offers", true)
	SetCurrentUser(c, testUser(rbac.RoleMerchant))

	err := f.guard.RequireActiveSubscription()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "An active subscription is required.", body["message"])
	assert.Equal(t, true, body["subscription_required"])
}

func TestSubscriptionGuardDashboardStaysReachable(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	for _, path := range []string{"/merchant/dashboard", "/merchant/subscription", "/api/merchant/subscription"} {
		c, rec := request(http.MethodGet, path, false)
		SetCurrentUser(c, testUser(rbac.RoleMerchant))

		err := f.guard.RequireActiveSubscription()(okHandler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSubscriptionGuardUnauthenticatedRedirects(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/merchant/offers", false)
	err := f.guard.RequireActiveSubscription()(okHandler)(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}
