package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Campaign is a fundraising campaign owned by an organization.
type Campaign struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:char(36);not null;index"`
	Title          string          `json:"title" gorm:"size:255;not null"`
	Description    string          `json:"description,omitempty" gorm:"type:text"`
	Goal           decimal.Decimal `json:"goal" gorm:"type:decimal(20,2);not null"`
	Raised         decimal.Decimal `json:"raised" gorm:"type:decimal(20,2);not null;default:0"`
	Active         bool            `json:"active" gorm:"default:true;index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// DonationStatus tracks a donation through hosted checkout.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

// Donation records one hosted-checkout donation to a campaign. DonorID is nil
// for anonymous donations.
type Donation struct {
	ID                uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CampaignID        uuid.UUID       `json:"campaign_id" gorm:"type:char(36);not null;index"`
	DonorID           *uuid.UUID      `json:"donor_id,omitempty" gorm:"type:char(36);index"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	CheckoutSessionID string          `json:"-" gorm:"size:255;index"`
	Status            DonationStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Campaign Campaign `json:"-" gorm:"foreignKey:CampaignID"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
