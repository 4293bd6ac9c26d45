package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationStatus is the admin-controlled approval state of an organization.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// Organization is a registered nonprofit owned by exactly one primary user.
// Additional users are linked through board membership.
type Organization struct {
	ID                 uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	UserID             uuid.UUID          `json:"user_id" gorm:"type:char(36);not null;index"`
	Name               string             `json:"name" gorm:"size:255;not null;index"`
	EIN                string             `json:"ein,omitempty" gorm:"size:16"`
	RegistrationStatus RegistrationStatus `json:"registration_status" gorm:"type:varchar(20);not null;default:'pending';index"`
	KYBStatus          string             `json:"kyb_status,omitempty" gorm:"size:32"`
	NteeCode           string             `json:"ntee_code,omitempty" gorm:"size:10"`
	ClassificationCode string             `json:"classification_code,omitempty" gorm:"size:10"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `json:"-" gorm:"index"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Approved reports whether the organization passed admin review.
func (o *Organization) Approved() bool {
	return o.RegistrationStatus == RegistrationApproved
}

// BoardMember links a user to an organization's board, optionally as an officer.
type BoardMember struct {
	ID             uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:char(36);not null;index"`
	UserID         uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;index"`
	Title          string         `json:"title,omitempty" gorm:"size:100"`
	IsOfficer      bool           `json:"is_officer" gorm:"default:false"`
	Active         bool           `json:"active" gorm:"default:true;index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID"`
	User         User         `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *BoardMember) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
