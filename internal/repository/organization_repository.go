package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givehub/internal/model"
)

// OrganizationRepository defines organization persistence operations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) (*model.Organization, error)
	FindByBoardMember(ctx context.Context, userID uuid.UUID) (*model.Organization, error)
	ListByStatus(ctx context.Context, status model.RegistrationStatus) ([]model.Organization, error)
	ListApproved(ctx context.Context) ([]model.Organization, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RegistrationStatus) error
	HasActiveBoardOfficer(ctx context.Context, orgID uuid.UUID) (bool, error)
	AddBoardMember(ctx context.Context, member *model.BoardMember) error
}

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository.
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

// Create creates a new organization.
func (r *organizationRepository) Create(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// Update updates an existing organization.
func (r *organizationRepository) Update(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

// FindByID finds an organization by ID.
func (r *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindByOwner finds the organization whose primary identity is userID.
func (r *organizationRepository) FindByOwner(ctx context.Context, userID uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindByBoardMember finds the organization where userID sits on the board.
func (r *organizationRepository) FindByBoardMember(ctx context.Context, userID uuid.UUID) (*model.Organization, error) {
	var member model.BoardMember
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		First(&member).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, member.OrganizationID)
}

// ListByStatus lists organizations in the given registration status.
func (r *organizationRepository) ListByStatus(ctx context.Context, status model.RegistrationStatus) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.WithContext(ctx).
		Where("registration_status = ?", status).
		Order("created_at DESC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListApproved lists admin-approved organizations.
func (r *organizationRepository) ListApproved(ctx context.Context) ([]model.Organization, error) {
	return r.ListByStatus(ctx, model.RegistrationApproved)
}

// UpdateStatus sets the registration status.
func (r *organizationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RegistrationStatus) error {
	return r.db.WithContext(ctx).Model(&model.Organization{}).
		Where("id = ?", id).
		Update("registration_status", status).Error
}

// HasActiveBoardOfficer reports whether the organization has an active officer.
func (r *organizationRepository) HasActiveBoardOfficer(ctx context.Context, orgID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.BoardMember{}).
		Where("organization_id = ? AND is_officer = ? AND active = ?", orgID, true, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddBoardMember links a user to an organization's board.
func (r *organizationRepository) AddBoardMember(ctx context.Context, member *model.BoardMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}
