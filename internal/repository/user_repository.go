package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givehub/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateTimezone(ctx context.Context, id uuid.UUID, timezone string) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error
	HasSelectedTopics(ctx context.Context, id uuid.UUID) (bool, error)
	SelectTopics(ctx context.Context, id uuid.UUID, topicIDs []uuid.UUID) error
	ListTopics(ctx context.Context) ([]model.Topic, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update updates an existing user.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateTimezone sets the user's timezone. Last writer wins; contention on a
// per-user field is low enough that no lock is taken.
func (r *userRepository) UpdateTimezone(ctx context.Context, id uuid.UUID, timezone string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("timezone", timezone).Error
}

// MarkEmailVerified stamps the verification timestamp.
func (r *userRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("email_verified_at", at).Error
}

// HasSelectedTopics reports whether the user picked any interested topics.
func (r *userRepository) HasSelectedTopics(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("user_topics").
		Where("user_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SelectTopics replaces the user's interested topics.
func (r *userRepository) SelectTopics(ctx context.Context, id uuid.UUID, topicIDs []uuid.UUID) error {
	topics := make([]model.Topic, 0, len(topicIDs))
	for _, topicID := range topicIDs {
		topics = append(topics, model.Topic{ID: topicID})
	}
	user := model.User{ID: id}
	return r.db.WithContext(ctx).Model(&user).Association("Topics").Replace(topics)
}

// ListTopics lists all selectable topics.
func (r *userRepository) ListTopics(ctx context.Context) ([]model.Topic, error) {
	var topics []model.Topic
	if err := r.db.WithContext(ctx).Order("name").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// CountByRole counts users currently holding the named role.
func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", role).Count(&count).Error
	return count, err
}
