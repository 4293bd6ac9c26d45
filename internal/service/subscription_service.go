package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givehub/internal/billing"
	"givehub/internal/model"
	"givehub/internal/obs"
	"givehub/internal/repository"
)

// SubscriptionService reconciles cached subscription state against the
// billing provider.
type SubscriptionService interface {
	// EnsureActive returns the merchant's reconciled subscription and whether
	// it currently grants access. A nil subscription with ok=false means the
	// merchant has no subscription at all.
	EnsureActive(ctx context.Context, merchantID uuid.UUID) (sub *model.Subscription, ok bool, err error)
	Record(ctx context.Context, merchantID uuid.UUID, providerSubID string, status model.SubscriptionStatus) (*model.Subscription, error)
}

// reconcileStatuses are the locally cached states worth re-checking with the
// provider. Anything else is terminal.
var reconcileStatuses = []model.SubscriptionStatus{
	model.SubscriptionActive,
	model.SubscriptionTrialing,
	model.SubscriptionCanceled,
}

type subscriptionService struct {
	subRepo  repository.SubscriptionRepository
	provider billing.Provider
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subRepo repository.SubscriptionRepository, provider billing.Provider) SubscriptionService {
	return &subscriptionService{subRepo: subRepo, provider: provider}
}

// EnsureActive loads the latest subscription and re-checks it with the
// provider. A provider-reported pending cancellation is treated as canceled
// immediately, even while the raw provider status still reads active. If the
// provider call fails the last-known cached status is used (fail open) and a
// warning is logged; billing outages must not lock merchants out.
func (s *subscriptionService) EnsureActive(ctx context.Context, merchantID uuid.UUID) (*model.Subscription, bool, error) {
	sub, err := s.subRepo.LatestByMerchant(ctx, merchantID, reconcileStatuses)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	state, err := s.provider.GetSubscription(ctx, sub.ProviderSubID)
	if err != nil {
		obs.BillingProviderErrors.Inc()
		log.Printf("WARN billing provider check failed for subscription %s, using cached status %q: %v",
			sub.ProviderSubID, sub.Status, err)
		return sub, sub.Usable(), nil
	}

	status := model.SubscriptionStatus(state.Status)
	if state.PendingCancellation() {
		status = model.SubscriptionCanceled
	}

	changed := sub.Status != status ||
		!equalTimePtr(sub.CancelAt, state.CancelAt) ||
		!equalTimePtr(sub.TrialEnd, state.TrialEnd)

	sub.Status = status
	sub.CancelAt = state.CancelAt
	sub.TrialEnd = state.TrialEnd
	sub.SyncedAt = time.Now()

	if changed {
		if err := s.subRepo.Update(ctx, sub); err != nil {
			return nil, false, err
		}
	}

	return sub, sub.Usable(), nil
}

// Record stores a new subscription reference after checkout completes.
func (s *subscriptionService) Record(ctx context.Context, merchantID uuid.UUID, providerSubID string, status model.SubscriptionStatus) (*model.Subscription, error) {
	sub := &model.Subscription{
		MerchantID:    merchantID,
		ProviderSubID: providerSubID,
		Status:        status,
		SyncedAt:      time.Now(),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
