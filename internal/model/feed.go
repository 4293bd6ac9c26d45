package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedPost is a post on the social feed.
type FeedPost struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	AuthorID  uuid.UUID      `json:"author_id" gorm:"type:char(36);not null;index"`
	Body      string         `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Author User `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *FeedPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
