package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCRUD(t *testing.T) {
	s := New()
	u := s.CreateUser(newTestUser())

	p := s.CreatePost(u.ID, "hello", "img.jpg")
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, u.ID, p.UserID)

	got, ok := s.GetPost(p.ID)
	require.True(t, ok)
	assert.Equal(t, "hello", got.Content)
	assert.Equal(t, "img.jpg", got.Media)

	updated, ok := s.UpdatePost(p.ID, "edited")
	require.True(t, ok)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, "img.jpg", updated.Media)

	_, ok = s.UpdatePost(99, "x")
	assert.False(t, ok)

	require.True(t, s.DeletePost(p.ID))
	_, ok = s.GetPost(p.ID)
	assert.False(t, ok)
	assert.False(t, s.DeletePost(p.ID))
}

func TestDeletePostCascade(t *testing.T) {
	s := New()
	alice := s.CreateUser(newTestUser())
	bob := s.CreateUser(newTestUser())

	p := s.CreatePost(alice.ID, "post", "")
	s.CreateLike(bob.ID, p.ID)
	s.CreateComment(bob.ID, p.ID, "hi")
	s.SavePost(bob.ID, p.ID)

	require.True(t, s.DeletePost(p.ID))

	assert.Empty(t, s.GetLikesByPost(p.ID))
	assert.Empty(t, s.GetCommentsByPost(p.ID))
	assert.Empty(t, s.GetSavedPosts(bob.ID))
}

func TestCreateLikeDedupe(t *testing.T) {
	s := New()
	u := s.CreateUser(newTestUser())
	p := s.CreatePost(u.ID, "post", "")

	like, ok := s.CreateLike(u.ID, p.ID)
	require.True(t, ok)
	require.NotNil(t, like)

	// Дубликат пары не вставляется
	_, ok = s.CreateLike(u.ID, p.ID)
	assert.False(t, ok)
	assert.Len(t, s.GetLikesByPost(p.ID), 1)

	got, ok := s.GetLike(u.ID, p.ID)
	require.True(t, ok)
	assert.Equal(t, like.ID, got.ID)
}

func TestRemoveLike(t *testing.T) {
	s := New()
	u := s.CreateUser(newTestUser())
	p := s.CreatePost(u.ID, "post", "")

	s.CreateLike(u.ID, p.ID)
	s.RemoveLike(u.ID, p.ID)
	assert.Empty(t, s.GetLikesByPost(p.ID))

	// Снятие несуществующего лайка - no-op
	s.RemoveLike(u.ID, p.ID)
	_, ok := s.GetLike(u.ID, p.ID)
	assert.False(t, ok)

	// После снятия пару можно лайкнуть заново
	_, ok = s.CreateLike(u.ID, p.ID)
	assert.True(t, ok)
}

func TestCommentsOrdered(t *testing.T) {
	s := New()
	u := s.CreateUser(newTestUser())
	p := s.CreatePost(u.ID, "post", "")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	current := base
	s.SetClock(func() time.Time { return current })

	first := s.CreateComment(u.ID, p.ID, "first")
	second := s.CreateComment(u.ID, p.ID, "same moment") // то же время, больший id
	current = base.Add(time.Minute)
	third := s.CreateComment(u.ID, p.ID, "later")

	comments := s.GetCommentsByPost(p.ID)
	require.Len(t, comments, 3)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
	assert.Equal(t, third.ID, comments[2].ID)
}

func TestCommentsEmptyNotNil(t *testing.T) {
	s := New()
	u := s.CreateUser(newTestUser())
	p := s.CreatePost(u.ID, "post", "")

	// Пост без комментариев - пустой список, не "not found"
	comments := s.GetCommentsByPost(p.ID)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestSavedPosts(t *testing.T) {
	s := New()
	u := s.CreateUser(newTestUser())
	p1 := s.CreatePost(u.ID, "one", "")
	p2 := s.CreatePost(u.ID, "two", "")

	s.SavePost(u.ID, p2.ID)
	s.SavePost(u.ID, p1.ID)
	s.SavePost(u.ID, p2.ID) // повтор - no-op

	saved := s.GetSavedPosts(u.ID)
	require.Len(t, saved, 2)
	// Порядок добавления сохраняется
	assert.Equal(t, p2.ID, saved[0].ID)
	assert.Equal(t, p1.ID, saved[1].ID)

	s.UnsavePost(u.ID, p2.ID)
	s.UnsavePost(u.ID, p2.ID) // повтор - no-op
	saved = s.GetSavedPosts(u.ID)
	require.Len(t, saved, 1)
	assert.Equal(t, p1.ID, saved[0].ID)
}
