package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "givehub/internal/errors"
	"givehub/internal/model"
	"givehub/internal/rbac"
)

// RoleRepository defines role and permission persistence operations.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	SetPermissions(ctx context.Context, roleID uuid.UUID, permissionNames []string) error
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	PermissionsForRole(ctx context.Context, role rbac.Role) ([]string, error)
}

type roleRepository struct {
	db     *gorm.DB
	static rbac.StaticResolver
}

// Ensure the repository satisfies the resolver interface guards depend on.
var _ rbac.Resolver = (RoleRepository)(nil)

// NewRoleRepository creates a new role repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Create creates a new role.
func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

// Update updates an existing role.
func (r *roleRepository) Update(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

// Delete removes a role. Deletion is blocked while any user holds the role;
// cascading would silently strip their permissions.
func (r *roleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	role, err := r.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrRoleNotFound
		}
		return err
	}

	var holders int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", role.Name).Count(&holders).Error; err != nil {
		return err
	}
	if holders > 0 {
		return domainerrors.ErrRoleInUse
	}
	return r.db.WithContext(ctx).Delete(&model.Role{}, "id = ?", id).Error
}

// FindByID finds a role by ID with its permissions.
func (r *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").
		Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByName finds a role by name with its permissions.
func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").
		Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// List lists all roles with their permissions.
func (r *roleRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").
		Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// SetPermissions replaces the role's permission bundle.
func (r *roleRepository) SetPermissions(ctx context.Context, roleID uuid.UUID, permissionNames []string) error {
	var permissions []model.Permission
	if len(permissionNames) > 0 {
		if err := r.db.WithContext(ctx).
			Where("name IN ?", permissionNames).Find(&permissions).Error; err != nil {
			return err
		}
	}
	role := model.Role{ID: roleID}
	return r.db.WithContext(ctx).Model(&role).Association("Permissions").Replace(permissions)
}

// ListPermissions lists the permission catalog.
func (r *roleRepository) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.WithContext(ctx).Order("category, name").Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

// PermissionsForRole flattens the role's permission bundle into names.
// Falls back to the built-in default bundle when the role row is missing,
// so a half-seeded database never locks everyone out.
func (r *roleRepository) PermissionsForRole(ctx context.Context, role rbac.Role) ([]string, error) {
	dbRole, err := r.FindByName(ctx, string(role))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.static.PermissionsForRole(ctx, role)
		}
		return nil, err
	}

	names := make([]string, 0, len(dbRole.Permissions))
	for _, p := range dbRole.Permissions {
		names = append(names, p.Name)
	}
	return names, nil
}
