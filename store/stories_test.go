package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoriesExpiry(t *testing.T) {
	s := New()
	alice := s.CreateUser(newTestUser())
	bob := s.CreateUser(newTestUser())

	edge, _ := s.CreateFriendRequest(alice.ID, bob.ID)
	require.True(t, s.AcceptFriendRequest(edge.ID))

	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	current := now.Add(-25 * time.Hour)
	s.SetClock(func() time.Time { return current })
	expired := s.CreateStory(alice.ID, "old.jpg")

	current = now.Add(-23 * time.Hour)
	fresh := s.CreateStory(alice.ID, "fresh.jpg")

	current = now
	stories := s.GetStories(bob.ID)
	require.Len(t, stories, 1)
	assert.Equal(t, fresh.ID, stories[0].ID)
	assert.Equal(t, alice.ID, stories[0].Author.ID)

	for _, sv := range stories {
		assert.NotEqual(t, expired.ID, sv.ID)
	}
}

func TestStoriesVisibility(t *testing.T) {
	s := New()
	alice := s.CreateUser(newTestUser())
	bob := s.CreateUser(newTestUser())
	carol := s.CreateUser(newTestUser())

	s.CreateStory(alice.ID, "a.jpg")
	s.CreateStory(carol.ID, "c.jpg")
	own := s.CreateStory(bob.ID, "b.jpg")

	// Без дружбы Боб видит только свои истории
	stories := s.GetStories(bob.ID)
	require.Len(t, stories, 1)
	assert.Equal(t, own.ID, stories[0].ID)

	edge, _ := s.CreateFriendRequest(bob.ID, alice.ID)
	s.AcceptFriendRequest(edge.ID)

	stories = s.GetStories(bob.ID)
	assert.Len(t, stories, 2)
}

func TestStoriesNewestFirst(t *testing.T) {
	s := New()
	u := s.CreateUser(newTestUser())

	base := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	current := base
	s.SetClock(func() time.Time { return current })

	older := s.CreateStory(u.ID, "one.jpg")
	current = base.Add(time.Hour)
	newer := s.CreateStory(u.ID, "two.jpg")
	current = base.Add(2 * time.Hour)

	stories := s.GetStories(u.ID)
	require.Len(t, stories, 2)
	assert.Equal(t, newer.ID, stories[0].ID)
	assert.Equal(t, older.ID, stories[1].ID)
}
