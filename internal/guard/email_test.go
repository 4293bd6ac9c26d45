package guard

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"givehub/internal/config"
	"givehub/internal/rbac"
)

func TestEmailGuardJSONDenialShape(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/api/feed", true)
	SetCurrentUser(c, testUser(rbac.RoleUser))

	err := f.guard.RequireVerifiedEmail()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Your email address is not verified.", body["message"])
	assert.Equal(t, "EMAIL_NOT_VERIFIED", body["error"])
	assert.Nil(t, body["email_verified_at"])
	assert.Equal(t, true, body["requires_verification"])

	// The API variant never triggers a notice.
	assert.Empty(t, f.notifier.sent)
}

func TestEmailGuardInteractiveRedirectsAndResends(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleUser)

	c, rec := request(http.MethodGet, "/feed", false)
	SetCurrentUser(c, user)

	err := f.guard.RequireVerifiedEmail()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/verify-email", rec.Header().Get(echo.HeaderLocation))
	if assert.Len(t, f.notifier.sent, 1) {
		assert.Equal(t, user.ID, f.notifier.sent[0])
	}
}

func TestEmailGuardPassesVerifiedUser(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleUser)
	now := time.Now()
	user.EmailVerifiedAt = &now

	c, rec := request(http.MethodGet, "/api/feed", true)
	SetCurrentUser(c, user)

	err := f.guard.RequireVerifiedEmail()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailGuardDisabledByAdminToggle(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, false)

	c, rec := request(http.MethodGet, "/api/feed", true)
	SetCurrentUser(c, testUser(rbac.RoleUser))

	err := f.guard.RequireVerifiedEmail()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
