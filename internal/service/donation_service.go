package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"givehub/internal/billing"
	domainerrors "givehub/internal/errors"
	"givehub/internal/model"
	"givehub/internal/repository"
)

// DonationService handles fundraising campaigns and hosted-checkout donations.
type DonationService interface {
	CreateCampaign(ctx context.Context, orgID uuid.UUID, title, description string, goal decimal.Decimal) (*model.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*model.Campaign, error)
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	// Donate creates a pending donation and a hosted checkout session,
	// returning the URL the donor is redirected to. DonorID is nil for
	// anonymous donations.
	Donate(ctx context.Context, campaignID uuid.UUID, donorID *uuid.UUID, amount decimal.Decimal, successURL, cancelURL string) (checkoutURL string, err error)
	// ConfirmBySession completes the donation matching a finished checkout
	// session. Safe to call more than once; webhook deliveries retry.
	ConfirmBySession(ctx context.Context, sessionID string) error
}

type donationService struct {
	donationRepo repository.DonationRepository
	provider     billing.Provider
}

// NewDonationService creates a new donation service.
func NewDonationService(donationRepo repository.DonationRepository, provider billing.Provider) DonationService {
	return &donationService{donationRepo: donationRepo, provider: provider}
}

// CreateCampaign creates an active campaign for an organization.
func (s *donationService) CreateCampaign(ctx context.Context, orgID uuid.UUID, title, description string, goal decimal.Decimal) (*model.Campaign, error) {
	if goal.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.ErrInvalidAmount
	}
	campaign := &model.Campaign{
		OrganizationID: orgID,
		Title:          title,
		Description:    description,
		Goal:           goal,
		Raised:         decimal.Zero,
		Active:         true,
	}
	if err := s.donationRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return campaign, nil
}

// GetCampaign finds a campaign by ID.
func (s *donationService) GetCampaign(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	campaign, err := s.donationRepo.FindCampaignByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerrors.ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}

// ListCampaigns lists campaigns open for donations.
func (s *donationService) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	return s.donationRepo.ListActiveCampaigns(ctx)
}

// Donate creates the pending donation record first so the provider's
// client_reference_id always points at a persisted row.
func (s *donationService) Donate(ctx context.Context, campaignID uuid.UUID, donorID *uuid.UUID, amount decimal.Decimal, successURL, cancelURL string) (string, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", domainerrors.ErrInvalidAmount
	}

	campaign, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	if !campaign.Active {
		return "", domainerrors.ErrCampaignClosed
	}

	donation := &model.Donation{
		CampaignID: campaignID,
		DonorID:    donorID,
		Amount:     amount,
		Status:     model.DonationPending,
	}
	if err := s.donationRepo.CreateDonation(ctx, donation); err != nil {
		return "", fmt.Errorf("create donation: %w", err)
	}

	session, err := s.provider.CreateCheckoutSession(ctx, billing.CheckoutParams{
		Amount:      amount,
		Currency:    "usd",
		Description: fmt.Sprintf("Donation to %s", campaign.Title),
		Reference:   donation.ID.String(),
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	donation.CheckoutSessionID = session.ID
	if err := s.donationRepo.UpdateDonation(ctx, donation); err != nil {
		return "", fmt.Errorf("store checkout session: %w", err)
	}

	return session.URL, nil
}

// ConfirmBySession completes the donation tied to sessionID.
func (s *donationService) ConfirmBySession(ctx context.Context, sessionID string) error {
	donation, err := s.donationRepo.FindDonationBySession(ctx, sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainerrors.ErrDonationNotFound
		}
		return err
	}
	return s.donationRepo.CompleteDonation(ctx, donation.ID)
}
