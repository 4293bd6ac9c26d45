package guard

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"givehub/internal/config"
	"givehub/internal/model"
	"givehub/internal/rbac"
)

func approvedOrg() *model.Organization {
	return &model.Organization{
		ID:                 uuid.New(),
		Name:               "Helping Hands",
		EIN:                "12-3456789",
		KYBStatus:          "approved",
		RegistrationStatus: model.RegistrationApproved,
	}
}

func TestBarterDeniesNonOrganizationRoles(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	for _, role := range []rbac.Role{rbac.RoleUser, rbac.RoleMerchant, rbac.RoleAdmin} {
		c, rec := request(http.MethodGet, "/barter", true)
		SetCurrentUser(c, testUser(role))

		err := f.guard.RequireApprovedOrganization()(okHandler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code, string(role))
	}
}

func TestBarterDeniesUserWithoutOrganization(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)

	c, rec := request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, testUser(rbac.RoleOrganization))

	err := f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No organization is linked to your account.", body["message"])
}

func TestBarterDeniesUnapprovedOrganization(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleOrganization)
	org := approvedOrg()
	org.RegistrationStatus = model.RegistrationPending
	f.orgs.byOwner[user.ID] = org

	c, rec := request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, user)

	err := f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Your organization must be admin-approved to access the barter network.", body["message"])
}

func TestBarterPassesApprovedAndAttachesOrganization(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleOrganization)
	org := approvedOrg()
	f.orgs.byOwner[user.ID] = org

	c, rec := request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, user)

	err := f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, org, CurrentOrganization(c))
}

func TestBarterBoardMembershipWinsOverOwnership(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleOrganization)
	boardOrg := approvedOrg()
	ownedOrg := approvedOrg()
	f.orgs.byBoardMember[user.ID] = boardOrg
	f.orgs.byOwner[user.ID] = ownedOrg

	c, rec := request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, user)

	err := f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, boardOrg, CurrentOrganization(c))
}

func TestBarterComplianceChecksOffByDefault(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{}, true)
	user := testUser(rbac.RoleOrganization)
	org := approvedOrg()
	org.EIN = "not-a-tax-id"
	org.KYBStatus = "rejected"
	f.orgs.byOwner[user.ID] = org

	c, rec := request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, user)

	// Approval alone decides while the compliance flags stay off.
	err := f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBarterTaxIDCheckWhenEnabled(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{TaxID: true}, true)
	user := testUser(rbac.RoleOrganization)
	org := approvedOrg()
	org.EIN = "bogus"
	f.orgs.byOwner[user.ID] = org

	c, rec := request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, user)

	err := f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBarterKYBCheckWhenEnabled(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{KYB: true}, true)
	user := testUser(rbac.RoleOrganization)
	org := approvedOrg()
	org.KYBStatus = "pending"
	f.orgs.byOwner[user.ID] = org

	c, rec := request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, user)

	err := f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBarterBoardOfficerCheckWhenEnabled(t *testing.T) {
	f := newGuardFixture(config.ComplianceChecks{BoardOfficer: true}, true)
	user := testUser(rbac.RoleOrganization)
	org := approvedOrg()
	f.orgs.byOwner[user.ID] = org

	c, rec := request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, user)
	err := f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Passes once an active officer is on file.
	f.orgs.officers[org.ID] = true
	c, rec = request(http.MethodGet, "/barter", true)
	SetCurrentUser(c, user)
	err = f.guard.RequireApprovedOrganization()(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidEIN(t *testing.T) {
	assert.True(t, validEIN("12-3456789"))
	assert.True(t, validEIN("123456789"))
	assert.False(t, validEIN("12-345678"))
	assert.False(t, validEIN("12-345678X"))
	assert.False(t, validEIN(""))
}
