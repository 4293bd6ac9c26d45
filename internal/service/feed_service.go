package service

import (
	"context"

	"github.com/google/uuid"

	"givehub/internal/model"
	"givehub/internal/repository"
)

const feedPageSize = 50

// FeedService handles the social feed.
type FeedService interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, body string) (*model.FeedPost, error)
	ListRecent(ctx context.Context) ([]model.FeedPost, error)
}

type feedService struct {
	feedRepo repository.FeedRepository
}

// NewFeedService creates a new feed service.
func NewFeedService(feedRepo repository.FeedRepository) FeedService {
	return &feedService{feedRepo: feedRepo}
}

// CreatePost creates a feed post.
func (s *feedService) CreatePost(ctx context.Context, authorID uuid.UUID, body string) (*model.FeedPost, error) {
	post := &model.FeedPost{AuthorID: authorID, Body: body}
	if err := s.feedRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListRecent lists the latest feed posts.
func (s *feedService) ListRecent(ctx context.Context) ([]model.FeedPost, error) {
	return s.feedRepo.ListRecent(ctx, feedPageSize)
}
