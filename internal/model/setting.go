package model

import "time"

// Setting is one admin-configurable key/value pair. Read fresh per request
// by the settings provider, never cached process-wide.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;size:100"`
	Value     string    `json:"value" gorm:"size:255;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Setting keys.
const (
	SettingEmailVerificationRequired = "email_verification_required"
)
