package rbac

// Permission name constants. Names are dotted resource.action strings; the
// category is what the admin UI groups them under.
const (
	PermRoleCreate       = "role.create"
	PermRoleUpdate       = "role.update"
	PermRoleDelete       = "role.delete"
	PermRoleView         = "role.view"
	PermOrgApprove       = "organization.approve"
	PermOrgReject        = "organization.reject"
	PermOrgView          = "organization.view"
	PermSettingsUpdate   = "settings.update"
	PermCampaignCreate   = "campaign.create"
	PermCampaignUpdate   = "campaign.update"
	PermOfferCreate      = "offer.create"
	PermOfferUpdate      = "offer.update"
	PermOfferDelete      = "offer.delete"
	PermFeedPostCreate   = "feed.post.create"
	PermBmfRecordCreate  = "bmf.record.create"
	PermBmfRecordUpdate  = "bmf.record.update"
	PermBmfRecordDelete  = "bmf.record.delete"
	PermBmfRecordView    = "bmf.record.view"
)

// Reference-code permissions are derived from the code kind so that every
// kind (classification, ntee, status, deductibility) carries the same
// create/update/delete/view verbs, e.g. "classification.code.delete".
func CodePermission(kind, action string) string {
	return kind + ".code." + action
}

// CodeKinds is the closed list of reference-code tables exposed over CRUD.
var CodeKinds = []string{"classification", "ntee", "status", "deductibility"}

// Catalog lists every permission with its UI category. Seeded as immutable
// reference data; roles reference these by name.
type CatalogEntry struct {
	Name     string
	Category string
}

func Catalog() []CatalogEntry {
	entries := []CatalogEntry{
		{PermRoleCreate, "Roles"},
		{PermRoleUpdate, "Roles"},
		{PermRoleDelete, "Roles"},
		{PermRoleView, "Roles"},
		{PermOrgApprove, "Organizations"},
		{PermOrgReject, "Organizations"},
		{PermOrgView, "Organizations"},
		{PermSettingsUpdate, "Settings"},
		{PermCampaignCreate, "Fundraising"},
		{PermCampaignUpdate, "Fundraising"},
		{PermOfferCreate, "Rewards"},
		{PermOfferUpdate, "Rewards"},
		{PermOfferDelete, "Rewards"},
		{PermFeedPostCreate, "Feed"},
		{PermBmfRecordCreate, "IRS BMF"},
		{PermBmfRecordUpdate, "IRS BMF"},
		{PermBmfRecordDelete, "IRS BMF"},
		{PermBmfRecordView, "IRS BMF"},
	}
	for _, kind := range CodeKinds {
		for _, action := range []string{"create", "update", "delete", "view"} {
			entries = append(entries, CatalogEntry{CodePermission(kind, action), "Reference Data"})
		}
	}
	return entries
}

// DefaultBundles is the role -> permission mapping seeded for each built-in
// role. Admin-managed roles may override a bundle in the database; these are
// the authoritative defaults.
var DefaultBundles = map[Role][]string{
	RoleAdmin:               adminBundle(),
	RoleOrganization:        {PermCampaignCreate, PermCampaignUpdate, PermFeedPostCreate},
	RoleOrganizationPending: {PermFeedPostCreate},
	RoleMerchant:            {PermOfferCreate, PermOfferUpdate, PermOfferDelete},
	RoleUser:                {PermFeedPostCreate},
}

func adminBundle() []string {
	all := Catalog()
	names := make([]string, 0, len(all))
	for _, e := range all {
		names = append(names, e.Name)
	}
	return names
}
