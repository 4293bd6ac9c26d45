package repository

import (
	"context"

	"gorm.io/gorm"

	"givehub/internal/model"
)

// FeedRepository defines feed persistence operations.
type FeedRepository interface {
	CreatePost(ctx context.Context, post *model.FeedPost) error
	ListRecent(ctx context.Context, limit int) ([]model.FeedPost, error)
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new feed repository.
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// CreatePost creates a feed post.
func (r *feedRepository) CreatePost(ctx context.Context, post *model.FeedPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// ListRecent lists the most recent posts.
func (r *feedRepository) ListRecent(ctx context.Context, limit int) ([]model.FeedPost, error) {
	var posts []model.FeedPost
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
