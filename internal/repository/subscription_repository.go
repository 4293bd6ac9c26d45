package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givehub/internal/model"
)

// SubscriptionRepository defines subscription persistence operations.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	Update(ctx context.Context, sub *model.Subscription) error
	LatestByMerchant(ctx context.Context, merchantID uuid.UUID, statuses []model.SubscriptionStatus) (*model.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create creates a new subscription record.
func (r *subscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// Update updates a subscription record. The cached status fields are written
// read-reconcile-then-write without a transaction; last writer wins.
func (r *subscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// LatestByMerchant returns the merchant's most recent subscription in one of
// the given statuses.
func (r *subscriptionRepository) LatestByMerchant(ctx context.Context, merchantID uuid.UUID, statuses []model.SubscriptionStatus) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND status IN ?", merchantID, statuses).
		Order("created_at DESC").
		First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
