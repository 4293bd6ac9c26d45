package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givehub/internal/model"
)

// RewardRepository defines reward-offer persistence operations.
type RewardRepository interface {
	Create(ctx context.Context, offer *model.RewardOffer) error
	Update(ctx context.Context, offer *model.RewardOffer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RewardOffer, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]model.RewardOffer, error)
	ListActive(ctx context.Context) ([]model.RewardOffer, error)
}

type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository creates a new reward repository.
func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

// Create creates a new reward offer.
func (r *rewardRepository) Create(ctx context.Context, offer *model.RewardOffer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

// Update updates a reward offer.
func (r *rewardRepository) Update(ctx context.Context, offer *model.RewardOffer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}

// Delete removes a reward offer.
func (r *rewardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RewardOffer{}, "id = ?", id).Error
}

// FindByID finds a reward offer by ID.
func (r *rewardRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RewardOffer, error) {
	var offer model.RewardOffer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

// ListByMerchant lists a merchant's offers.
func (r *rewardRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]model.RewardOffer, error) {
	var offers []model.RewardOffer
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// ListActive lists all active offers for the public rewards hub.
func (r *rewardRepository) ListActive(ctx context.Context) ([]model.RewardOffer, error) {
	var offers []model.RewardOffer
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}
