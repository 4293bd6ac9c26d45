package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "givehub/internal/errors"
	"givehub/internal/model"
	"givehub/internal/rbac"
	"givehub/internal/repository"
)

const defaultPageSize = 25

// RefDataService handles CRUD over the reference-code tables and the IRS
// Business Master File.
type RefDataService interface {
	CreateCode(ctx context.Context, kind, code, name, description string) (*model.RefCode, error)
	UpdateCode(ctx context.Context, id uuid.UUID, name, description string) (*model.RefCode, error)
	DeleteCode(ctx context.Context, id uuid.UUID) error
	ListCodes(ctx context.Context, kind, search string, page, perPage int) ([]model.RefCode, int64, error)

	CreateBmf(ctx context.Context, record *model.BmfRecord) error
	UpdateBmf(ctx context.Context, record *model.BmfRecord) error
	DeleteBmf(ctx context.Context, id uuid.UUID) error
	ListBmf(ctx context.Context, search, state string, page, perPage int) ([]model.BmfRecord, int64, error)
}

type refDataService struct {
	refRepo repository.RefCodeRepository
}

// NewRefDataService creates a new reference-data service.
func NewRefDataService(refRepo repository.RefCodeRepository) RefDataService {
	return &refDataService{refRepo: refRepo}
}

func validKind(kind string) bool {
	for _, k := range rbac.CodeKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// CreateCode creates a reference code of a known kind.
func (s *refDataService) CreateCode(ctx context.Context, kind, code, name, description string) (*model.RefCode, error) {
	if !validKind(kind) {
		return nil, domainerrors.ErrUnknownCodeKind
	}
	refCode := &model.RefCode{
		Kind:        kind,
		Code:        code,
		Name:        name,
		Description: description,
	}
	if err := s.refRepo.Create(ctx, refCode); err != nil {
		return nil, err
	}
	return refCode, nil
}

// UpdateCode updates name/description of a reference code.
func (s *refDataService) UpdateCode(ctx context.Context, id uuid.UUID, name, description string) (*model.RefCode, error) {
	refCode, err := s.refRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrCodeNotFound
		}
		return nil, err
	}
	refCode.Name = name
	refCode.Description = description
	if err := s.refRepo.Update(ctx, refCode); err != nil {
		return nil, err
	}
	return refCode, nil
}

// DeleteCode removes a reference code.
func (s *refDataService) DeleteCode(ctx context.Context, id uuid.UUID) error {
	if _, err := s.refRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrCodeNotFound
		}
		return err
	}
	return s.refRepo.Delete(ctx, id)
}

// ListCodes lists codes of a kind with search and pagination.
func (s *refDataService) ListCodes(ctx context.Context, kind, search string, page, perPage int) ([]model.RefCode, int64, error) {
	if !validKind(kind) {
		return nil, 0, domainerrors.ErrUnknownCodeKind
	}
	offset, limit := paginate(page, perPage)
	return s.refRepo.List(ctx, kind, search, offset, limit)
}

// CreateBmf creates a BMF record.
func (s *refDataService) CreateBmf(ctx context.Context, record *model.BmfRecord) error {
	return s.refRepo.CreateBmf(ctx, record)
}

// UpdateBmf updates a BMF record.
func (s *refDataService) UpdateBmf(ctx context.Context, record *model.BmfRecord) error {
	return s.refRepo.UpdateBmf(ctx, record)
}

// DeleteBmf removes a BMF record.
func (s *refDataService) DeleteBmf(ctx context.Context, id uuid.UUID) error {
	if _, err := s.refRepo.FindBmfByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrCodeNotFound
		}
		return err
	}
	return s.refRepo.DeleteBmf(ctx, id)
}

// ListBmf lists BMF records with search and pagination.
func (s *refDataService) ListBmf(ctx context.Context, search, state string, page, perPage int) ([]model.BmfRecord, int64, error) {
	offset, limit := paginate(page, perPage)
	return s.refRepo.ListBmf(ctx, search, state, offset, limit)
}

func paginate(page, perPage int) (offset, limit int) {
	if perPage <= 0 || perPage > 100 {
		perPage = defaultPageSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage, perPage
}
