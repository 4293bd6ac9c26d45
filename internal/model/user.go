package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticated identity on the platform. Role is the raw
// coarse role string (see rbac.Role); fine-grained capabilities come from the
// role's permission bundle, never from the user directly.
type User struct {
	ID              uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name            string         `json:"name" gorm:"size:255;not null;index"`
	Email           string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone           string         `json:"phone,omitempty" gorm:"size:32"`
	PasswordHash    string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role            string         `json:"role" gorm:"size:50;not null;default:'user';index"`
	EmailVerifiedAt *time.Time     `json:"email_verified_at"`
	Timezone        string         `json:"timezone,omitempty" gorm:"size:64"`
	ImagePath       string         `json:"-" gorm:"size:255"` // relative storage path, rewritten for clients
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Topics []Topic `json:"topics,omitempty" gorm:"many2many:user_topics"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// EmailVerified reports whether the verification timestamp is set.
func (u *User) EmailVerified() bool {
	return u.EmailVerifiedAt != nil && !u.EmailVerifiedAt.IsZero()
}
