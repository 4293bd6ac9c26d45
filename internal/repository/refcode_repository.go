package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givehub/internal/model"
)

// RefCodeRepository defines reference-code and BMF persistence operations.
type RefCodeRepository interface {
	Create(ctx context.Context, code *model.RefCode) error
	Update(ctx context.Context, code *model.RefCode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RefCode, error)
	List(ctx context.Context, kind, search string, offset, limit int) ([]model.RefCode, int64, error)

	CreateBmf(ctx context.Context, record *model.BmfRecord) error
	UpdateBmf(ctx context.Context, record *model.BmfRecord) error
	DeleteBmf(ctx context.Context, id uuid.UUID) error
	FindBmfByID(ctx context.Context, id uuid.UUID) (*model.BmfRecord, error)
	FindBmfByEIN(ctx context.Context, ein string) (*model.BmfRecord, error)
	ListBmf(ctx context.Context, search, state string, offset, limit int) ([]model.BmfRecord, int64, error)
}

type refCodeRepository struct {
	db *gorm.DB
}

// NewRefCodeRepository creates a new reference-code repository.
func NewRefCodeRepository(db *gorm.DB) RefCodeRepository {
	return &refCodeRepository{db: db}
}

// Create creates a new reference code.
func (r *refCodeRepository) Create(ctx context.Context, code *model.RefCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// Update updates a reference code.
func (r *refCodeRepository) Update(ctx context.Context, code *model.RefCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

// Delete removes a reference code.
func (r *refCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RefCode{}, "id = ?", id).Error
}

// FindByID finds a reference code by ID.
func (r *refCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RefCode, error) {
	var code model.RefCode
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&code).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

// List lists reference codes of a kind with search and pagination.
func (r *refCodeRepository) List(ctx context.Context, kind, search string, offset, limit int) ([]model.RefCode, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.RefCode{}).Where("kind = ?", kind)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("code LIKE ? OR name LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var codes []model.RefCode
	if err := query.Order("code").Offset(offset).Limit(limit).Find(&codes).Error; err != nil {
		return nil, 0, err
	}
	return codes, total, nil
}

// CreateBmf creates a new BMF record.
func (r *refCodeRepository) CreateBmf(ctx context.Context, record *model.BmfRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// UpdateBmf updates a BMF record.
func (r *refCodeRepository) UpdateBmf(ctx context.Context, record *model.BmfRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteBmf removes a BMF record.
func (r *refCodeRepository) DeleteBmf(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BmfRecord{}, "id = ?", id).Error
}

// FindBmfByID finds a BMF record by ID.
func (r *refCodeRepository) FindBmfByID(ctx context.Context, id uuid.UUID) (*model.BmfRecord, error) {
	var record model.BmfRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindBmfByEIN finds a BMF record by EIN.
func (r *refCodeRepository) FindBmfByEIN(ctx context.Context, ein string) (*model.BmfRecord, error) {
	var record model.BmfRecord
	if err := r.db.WithContext(ctx).Where("ein = ?", ein).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListBmf lists BMF records with search and pagination.
func (r *refCodeRepository) ListBmf(ctx context.Context, search, state string, offset, limit int) ([]model.BmfRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.BmfRecord{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("ein LIKE ? OR name LIKE ?", like, like)
	}
	if state != "" {
		query = query.Where("state = ?", state)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.BmfRecord
	if err := query.Order("name").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
