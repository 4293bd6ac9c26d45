// Package settings exposes admin-configurable runtime settings. Values are
// read from the database on every call so an admin change takes effect on the
// next request without a restart; tests substitute the Provider interface.
package settings

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"givehub/internal/model"
)

// Provider reads admin settings per request.
type Provider interface {
	EmailVerificationRequired(ctx context.Context) bool
}

// Store is the database-backed settings provider and writer.
type Store struct {
	db *gorm.DB
}

var _ Provider = (*Store)(nil)

// NewStore creates a settings store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EmailVerificationRequired reports the verification toggle, defaulting to
// true when the row is missing or unreadable.
func (s *Store) EmailVerificationRequired(ctx context.Context) bool {
	return s.getBool(ctx, model.SettingEmailVerificationRequired, true)
}

// Set upserts a setting value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	setting := model.Setting{Key: key, Value: value}
	return s.db.WithContext(ctx).Save(&setting).Error
}

// Get returns the raw value for key, or def when missing.
func (s *Store) Get(ctx context.Context, key, def string) string {
	var setting model.Setting
	if err := s.db.WithContext(ctx).Where("`key` = ?", key).First(&setting).Error; err != nil {
		return def
	}
	return setting.Value
}

func (s *Store) getBool(ctx context.Context, key string, def bool) bool {
	raw := s.Get(ctx, key, strconv.FormatBool(def))
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return parsed
}

// Static is a fixed-value provider for tests.
type Static struct {
	VerificationRequired bool
}

var _ Provider = Static{}

// EmailVerificationRequired returns the fixed toggle.
func (s Static) EmailVerificationRequired(context.Context) bool {
	return s.VerificationRequired
}
