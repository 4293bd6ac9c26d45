package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefCode is one reference-data code row. Kind discriminates the code table
// (classification, ntee, status, deductibility); all four share the same
// CRUD surface and shape.
type RefCode struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Kind        string         `json:"kind" gorm:"size:32;not null;uniqueIndex:idx_ref_codes_kind_code"`
	Code        string         `json:"code" gorm:"size:16;not null;uniqueIndex:idx_ref_codes_kind_code"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (r *RefCode) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BmfRecord is an IRS Business Master File row keyed by EIN.
type BmfRecord struct {
	ID                 uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	EIN                string         `json:"ein" gorm:"uniqueIndex;size:16;not null"`
	Name               string         `json:"name" gorm:"size:255;not null;index"`
	City               string         `json:"city,omitempty" gorm:"size:100"`
	State              string         `json:"state,omitempty" gorm:"size:2;index"`
	NteeCode           string         `json:"ntee_code,omitempty" gorm:"size:10"`
	ClassificationCode string         `json:"classification_code,omitempty" gorm:"size:10"`
	StatusCode         string         `json:"status_code,omitempty" gorm:"size:10"`
	DeductibilityCode  string         `json:"deductibility_code,omitempty" gorm:"size:10"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (b *BmfRecord) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
