package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "givehub/internal/errors"
	"givehub/internal/model"
	"givehub/internal/rbac"
	"givehub/internal/repository"
)

// OrganizationService handles organization registration and the admin
// approval workflow.
type OrganizationService interface {
	RegisterOrganization(ctx context.Context, ownerID uuid.UUID, name, ein, nteeCode, classificationCode string) (*model.Organization, error)
	Approve(ctx context.Context, orgID uuid.UUID) (*model.Organization, error)
	Reject(ctx context.Context, orgID uuid.UUID) (*model.Organization, error)
	ListPending(ctx context.Context) ([]model.Organization, error)
	ListApproved(ctx context.Context) ([]model.Organization, error)
}

type organizationService struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo, userRepo: userRepo}
}

// RegisterOrganization creates a pending organization owned by ownerID.
func (s *organizationService) RegisterOrganization(ctx context.Context, ownerID uuid.UUID, name, ein, nteeCode, classificationCode string) (*model.Organization, error) {
	org := &model.Organization{
		UserID:             ownerID,
		Name:               name,
		EIN:                ein,
		NteeCode:           nteeCode,
		ClassificationCode: classificationCode,
		RegistrationStatus: model.RegistrationPending,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return org, nil
}

// Approve marks the organization approved and promotes the owner from the
// pending role to the full organization role.
func (s *organizationService) Approve(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	org, err := s.setStatus(ctx, orgID, model.RegistrationApproved)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByID(ctx, org.UserID)
	if err != nil {
		return nil, fmt.Errorf("load owner: %w", err)
	}
	if owner.Role == string(rbac.RoleOrganizationPending) {
		owner.Role = string(rbac.RoleOrganization)
		if err := s.userRepo.Update(ctx, owner); err != nil {
			return nil, fmt.Errorf("promote owner: %w", err)
		}
	}
	return org, nil
}

// Reject marks the organization rejected. The owner keeps the pending role so
// a later re-review can promote them without re-registration.
func (s *organizationService) Reject(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	return s.setStatus(ctx, orgID, model.RegistrationRejected)
}

// ListPending lists organizations awaiting review.
func (s *organizationService) ListPending(ctx context.Context) ([]model.Organization, error) {
	return s.orgRepo.ListByStatus(ctx, model.RegistrationPending)
}

// ListApproved lists admin-approved organizations (the barter directory).
func (s *organizationService) ListApproved(ctx context.Context) ([]model.Organization, error) {
	return s.orgRepo.ListApproved(ctx)
}

func (s *organizationService) setStatus(ctx context.Context, orgID uuid.UUID, status model.RegistrationStatus) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrOrganizationNotFound
		}
		return nil, err
	}
	if err := s.orgRepo.UpdateStatus(ctx, orgID, status); err != nil {
		return nil, err
	}
	org.RegistrationStatus = status
	return org, nil
}
