package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"givehub/internal/model"
	"givehub/internal/repository"
)

// UserService handles profile, topic selection and email verification.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) (*model.User, error)
	ListTopics(ctx context.Context) ([]model.Topic, error)
	SelectTopics(ctx context.Context, id uuid.UUID, topicIDs []uuid.UUID) error
	VerifyEmail(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Get loads a user by ID.
func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateProfile updates display fields on the user.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.Phone = phone
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListTopics lists all selectable topics.
func (s *userService) ListTopics(ctx context.Context) ([]model.Topic, error) {
	return s.userRepo.ListTopics(ctx)
}

// SelectTopics replaces the user's interested topics.
func (s *userService) SelectTopics(ctx context.Context, id uuid.UUID, topicIDs []uuid.UUID) error {
	return s.userRepo.SelectTopics(ctx, id, topicIDs)
}

// VerifyEmail stamps the verification timestamp.
func (s *userService) VerifyEmail(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.MarkEmailVerified(ctx, id, time.Now())
}
