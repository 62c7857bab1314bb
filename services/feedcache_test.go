package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/models"
	"socialnet/store"
)

func setupFeedFixture(t *testing.T) (*store.Store, *FeedCache, *models.User, *models.User) {
	t.Helper()
	st := store.New()
	fc := NewFeedCache(st)

	alice := st.CreateUser(models.User{Username: "alice", Name: "Alice"})
	bob := st.CreateUser(models.User{Username: "bob", Name: "Bob"})
	edge, ok := st.CreateFriendRequest(alice.ID, bob.ID)
	require.True(t, ok)
	require.True(t, st.AcceptFriendRequest(edge.ID))

	return st, fc, alice, bob
}

func TestFeedCacheMissThenHit(t *testing.T) {
	mr := setupTestRedis(t)
	st, fc, alice, bob := setupFeedFixture(t)
	ctx := context.Background()

	st.CreatePost(alice.ID, "hello", "")

	feed := fc.GetFeed(ctx, bob.ID)
	require.Len(t, feed, 1)

	// Лента закешировалась
	assert.True(t, mr.Exists(FEED_KEY_PREFIX+"2"))

	// Повторное чтение отдаёт кеш даже после мутации без инвалидации
	st.CreatePost(alice.ID, "second", "")
	feed = fc.GetFeed(ctx, bob.ID)
	assert.Len(t, feed, 1)
}

func TestFeedCacheInvalidate(t *testing.T) {
	setupTestRedis(t)
	st, fc, alice, bob := setupFeedFixture(t)
	ctx := context.Background()

	st.CreatePost(alice.ID, "hello", "")
	require.Len(t, fc.GetFeed(ctx, bob.ID), 1)

	st.CreatePost(alice.ID, "second", "")
	fc.InvalidateForAuthor(ctx, alice.ID)

	// После инвалидации лента пересчитана
	assert.Len(t, fc.GetFeed(ctx, bob.ID), 2)
}

func TestFeedCacheInvalidateCoversFriends(t *testing.T) {
	mr := setupTestRedis(t)
	st, fc, alice, bob := setupFeedFixture(t)
	ctx := context.Background()

	st.CreatePost(alice.ID, "hello", "")
	fc.GetFeed(ctx, alice.ID)
	fc.GetFeed(ctx, bob.ID)
	require.True(t, mr.Exists(FEED_KEY_PREFIX+"1"))
	require.True(t, mr.Exists(FEED_KEY_PREFIX+"2"))

	// Сбрасываются и своя лента, и ленты всех друзей автора
	fc.InvalidateForAuthor(ctx, alice.ID)
	assert.False(t, mr.Exists(FEED_KEY_PREFIX+"1"))
	assert.False(t, mr.Exists(FEED_KEY_PREFIX+"2"))
}

func TestFeedCacheWithoutRedis(t *testing.T) {
	RedisClient = nil
	st, fc, alice, bob := setupFeedFixture(t)
	ctx := context.Background()

	st.CreatePost(alice.ID, "hello", "")

	// Без Redis лента считается напрямую из хранилища
	feed := fc.GetFeed(ctx, bob.ID)
	require.Len(t, feed, 1)
	assert.Equal(t, "hello", feed[0].Content)

	// Инвалидация без Redis - no-op
	fc.InvalidateForAuthor(ctx, alice.ID)
}
