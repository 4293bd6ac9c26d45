package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"givehub/internal/model"
	"givehub/internal/repository"
)

// ErrNotOfferOwner is returned when a merchant touches another merchant's offer.
var ErrNotOfferOwner = errors.New("offer belongs to another merchant")

// RewardService handles merchant reward offers.
type RewardService interface {
	CreateOffer(ctx context.Context, merchantID uuid.UUID, title, description string, points int) (*model.RewardOffer, error)
	UpdateOffer(ctx context.Context, merchantID, offerID uuid.UUID, title, description string, points int, active bool) (*model.RewardOffer, error)
	DeleteOffer(ctx context.Context, merchantID, offerID uuid.UUID) error
	ListMerchantOffers(ctx context.Context, merchantID uuid.UUID) ([]model.RewardOffer, error)
	ListActiveOffers(ctx context.Context) ([]model.RewardOffer, error)
}

type rewardService struct {
	rewardRepo repository.RewardRepository
}

// NewRewardService creates a new reward service.
func NewRewardService(rewardRepo repository.RewardRepository) RewardService {
	return &rewardService{rewardRepo: rewardRepo}
}

// CreateOffer publishes a new offer for the merchant.
func (s *rewardService) CreateOffer(ctx context.Context, merchantID uuid.UUID, title, description string, points int) (*model.RewardOffer, error) {
	offer := &model.RewardOffer{
		MerchantID:  merchantID,
		Title:       title,
		Description: description,
		Points:      points,
		Active:      true,
	}
	if err := s.rewardRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// UpdateOffer updates an offer the merchant owns.
func (s *rewardService) UpdateOffer(ctx context.Context, merchantID, offerID uuid.UUID, title, description string, points int, active bool) (*model.RewardOffer, error) {
	offer, err := s.ownedOffer(ctx, merchantID, offerID)
	if err != nil {
		return nil, err
	}
	offer.Title = title
	offer.Description = description
	offer.Points = points
	offer.Active = active
	if err := s.rewardRepo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// DeleteOffer removes an offer the merchant owns.
func (s *rewardService) DeleteOffer(ctx context.Context, merchantID, offerID uuid.UUID) error {
	if _, err := s.ownedOffer(ctx, merchantID, offerID); err != nil {
		return err
	}
	return s.rewardRepo.Delete(ctx, offerID)
}

// ListMerchantOffers lists the merchant's own offers.
func (s *rewardService) ListMerchantOffers(ctx context.Context, merchantID uuid.UUID) ([]model.RewardOffer, error) {
	return s.rewardRepo.ListByMerchant(ctx, merchantID)
}

// ListActiveOffers lists every active offer in the rewards hub.
func (s *rewardService) ListActiveOffers(ctx context.Context) ([]model.RewardOffer, error) {
	return s.rewardRepo.ListActive(ctx)
}

func (s *rewardService) ownedOffer(ctx context.Context, merchantID, offerID uuid.UUID) (*model.RewardOffer, error) {
	offer, err := s.rewardRepo.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.MerchantID != merchantID {
		return nil, ErrNotOfferOwner
	}
	return offer, nil
}
