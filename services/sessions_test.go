package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis поднимает miniredis и подменяет общий клиент.
func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = RedisClient.Close()
		RedisClient = nil
	})
	return mr
}

func TestSessionLifecycle(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	token, err := CreateSession(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, token, 64)

	userID, err := ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	require.NoError(t, DeleteSession(ctx, token))
	userID, err = ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Zero(t, userID)
}

func TestResolveSessionUnknownToken(t *testing.T) {
	setupTestRedis(t)

	// Неизвестный токен - (0, nil), не ошибка
	userID, err := ResolveSession(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Zero(t, userID)
}

func TestSessionExpiry(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	token, err := CreateSession(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(SESSION_TTL + 1)

	userID, err := ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Zero(t, userID)
}

func TestSessionsWithoutRedis(t *testing.T) {
	RedisClient = nil

	_, err := CreateSession(context.Background(), 1)
	assert.Error(t, err)
	_, err = ResolveSession(context.Background(), "token")
	assert.Error(t, err)
}
