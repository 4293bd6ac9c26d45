package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is an interest area users pick on first login; the selection drives
// the feed and the topic-selection redirect.
type Topic struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
