package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givehub/internal/model"
)

// DonationRepository defines campaign and donation persistence operations.
type DonationRepository interface {
	CreateCampaign(ctx context.Context, campaign *model.Campaign) error
	UpdateCampaign(ctx context.Context, campaign *model.Campaign) error
	FindCampaignByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error)
	ListActiveCampaigns(ctx context.Context) ([]model.Campaign, error)
	CreateDonation(ctx context.Context, donation *model.Donation) error
	UpdateDonation(ctx context.Context, donation *model.Donation) error
	FindDonationBySession(ctx context.Context, sessionID string) (*model.Donation, error)
	CompleteDonation(ctx context.Context, donationID uuid.UUID) error
}

type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository.
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// CreateCampaign creates a new campaign.
func (r *donationRepository) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

// UpdateCampaign updates an existing campaign.
func (r *donationRepository) UpdateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).Save(campaign).Error
}

// FindCampaignByID finds a campaign by ID.
func (r *donationRepository) FindCampaignByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

// ListActiveCampaigns lists campaigns open for donations.
func (r *donationRepository) ListActiveCampaigns(ctx context.Context) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// CreateDonation creates a new donation record.
func (r *donationRepository) CreateDonation(ctx context.Context, donation *model.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

// UpdateDonation updates a donation record.
func (r *donationRepository) UpdateDonation(ctx context.Context, donation *model.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

// FindDonationBySession finds a donation by its checkout session ID.
func (r *donationRepository) FindDonationBySession(ctx context.Context, sessionID string) (*model.Donation, error) {
	var donation model.Donation
	if err := r.db.WithContext(ctx).
		Where("checkout_session_id = ?", sessionID).First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

// CompleteDonation marks a donation completed and adds its amount to the
// campaign's raised total in one transaction.
func (r *donationRepository) CompleteDonation(ctx context.Context, donationID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donation model.Donation
		if err := tx.Where("id = ?", donationID).First(&donation).Error; err != nil {
			return err
		}
		if donation.Status == model.DonationCompleted {
			return nil // webhook retries are expected, complete once
		}
		if err := tx.Model(&model.Donation{}).
			Where("id = ?", donationID).
			Update("status", model.DonationCompleted).Error; err != nil {
			return err
		}
		return tx.Model(&model.Campaign{}).
			Where("id = ?", donation.CampaignID).
			Update("raised", gorm.Expr("raised + ?", donation.Amount)).Error
	})
}
