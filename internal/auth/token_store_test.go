package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"givehub/internal/cache"
)

func newTestTokenStore(t *testing.T) *TokenStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTokenStore(cache.NewFromClient(client))
}

func TestTokenStoreRoundTrip(t *testing.T) {
	store := newTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	err := store.StoreRefreshToken(ctx, "token-1", userID, "pat@example.com", time.Minute)
	assert.NoError(t, err)

	gotID, gotEmail, err := store.GetRefreshToken(ctx, "token-1")
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "pat@example.com", gotEmail)
}

func TestTokenStoreMissingToken(t *testing.T) {
	store := newTestTokenStore(t)

	_, _, err := store.GetRefreshToken(context.Background(), "nope")
	assert.Error(t, err)
}

func TestTokenStoreDelete(t *testing.T) {
	store := newTestTokenStore(t)
	ctx := context.Background()

	assert.NoError(t, store.StoreRefreshToken(ctx, "token-2", uuid.New(), "pat@example.com", time.Minute))
	assert.NoError(t, store.DeleteRefreshToken(ctx, "token-2"))

	_, _, err := store.GetRefreshToken(ctx, "token-2")
	assert.Error(t, err)
}

func TestTokenStoreBlacklist(t *testing.T) {
	store := newTestTokenStore(t)
	ctx := context.Background()

	blacklisted, err := store.IsAccessTokenBlacklisted(ctx, "access-1")
	assert.NoError(t, err)
	assert.False(t, blacklisted)

	assert.NoError(t, store.BlacklistAccessToken(ctx, "access-1", time.Minute))

	blacklisted, err = store.IsAccessTokenBlacklisted(ctx, "access-1")
	assert.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestTokenStoreFailsSafeWithoutRedis(t *testing.T) {
	// A dead redis behaves like a miss: logins still work, refresh fails.
	store := NewTokenStore(cache.NewFromClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})))
	ctx := context.Background()

	assert.NoError(t, store.StoreRefreshToken(ctx, "token-3", uuid.New(), "pat@example.com", time.Minute))
	_, _, err := store.GetRefreshToken(ctx, "token-3")
	assert.Error(t, err)
}
