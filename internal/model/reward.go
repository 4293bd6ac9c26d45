package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RewardOffer is a merchant-published offer in the rewards hub.
type RewardOffer struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	MerchantID  uuid.UUID      `json:"merchant_id" gorm:"type:char(36);not null;index"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Points      int            `json:"points" gorm:"not null"`
	Active      bool           `json:"active" gorm:"default:true;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Merchant User `json:"-" gorm:"foreignKey:MerchantID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *RewardOffer) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
