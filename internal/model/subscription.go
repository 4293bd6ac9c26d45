package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionStatus mirrors the billing provider's subscription states that
// this platform cares about.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

// Subscription caches a merchant's billing-provider subscription. Status,
// CancelAt and TrialEnd are reconciled against the provider on access; the
// cached values are the fallback when the provider is unreachable.
type Subscription struct {
	ID            uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	MerchantID    uuid.UUID          `json:"merchant_id" gorm:"type:char(36);not null;index"`
	ProviderSubID string             `json:"provider_sub_id" gorm:"size:255;not null;index"`
	Status        SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	CancelAt      *time.Time         `json:"cancel_at,omitempty"`
	TrialEnd      *time.Time         `json:"trial_end,omitempty"`
	SyncedAt      time.Time          `json:"synced_at"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `json:"-" gorm:"index"`

	// Relations
	Merchant User `json:"-" gorm:"foreignKey:MerchantID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Usable reports whether the subscription grants access right now.
func (s *Subscription) Usable() bool {
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}
