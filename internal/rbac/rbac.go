package rbac

import "context"

// Role is the closed set of coarse account roles. The raw string lives on the
// user record; everything else in the codebase goes through this type.
type Role string

const (
	RoleAdmin               Role = "admin"
	RoleOrganization        Role = "organization"
	RoleOrganizationPending Role = "organization_pending"
	RoleMerchant            Role = "merchant"
	RoleUser                Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOrganization, RoleOrganizationPending, RoleMerchant, RoleUser:
		return true
	}
	return false
}

// Satisfies reports whether r is acceptable where required is demanded.
// A pending organization counts as an organization for role checks; its
// permission bundle is still the pending one.
func (r Role) Satisfies(required Role) bool {
	if r == required {
		return true
	}
	return r == RoleOrganizationPending && required == RoleOrganization
}

// IsOrganization reports whether r is the organization role or its pending variant.
func (r Role) IsOrganization() bool {
	return r == RoleOrganization || r == RoleOrganizationPending
}

// DefaultLandingRoute is where a role lands when no better destination is
// known, e.g. the "back" link on a permission-denied page with no referer.
func DefaultLandingRoute(r Role) string {
	switch r {
	case RoleAdmin, RoleOrganization, RoleOrganizationPending:
		return "/dashboard"
	case RoleMerchant:
		return "/merchant/dashboard"
	case RoleUser:
		return "/profile"
	default:
		return "/"
	}
}

// Resolver maps a role name to the flat permission set granted through it.
type Resolver interface {
	PermissionsForRole(ctx context.Context, role Role) ([]string, error)
}

// StaticResolver resolves permissions from the built-in default bundles.
// It backs the resolver chain when the role table has no override row and is
// the sole resolver in tests.
type StaticResolver struct{}

// PermissionsForRole returns a copy of the default bundle for role.
func (StaticResolver) PermissionsForRole(_ context.Context, role Role) ([]string, error) {
	bundle := DefaultBundles[role]
	out := make([]string, len(bundle))
	copy(out, bundle)
	return out, nil
}
