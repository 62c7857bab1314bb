package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/models"
)

func TestCreateFriendRequest(t *testing.T) {
	s := New()
	alice := s.CreateUser(newTestUser())
	bob := s.CreateUser(newTestUser())

	edge, ok := s.CreateFriendRequest(alice.ID, bob.ID)
	require.True(t, ok)
	assert.Equal(t, models.FriendStatusPending, edge.Status)
	assert.Equal(t, alice.ID, edge.RequesterID)
	assert.Equal(t, bob.ID, edge.AddresseeID)
}

func TestFriendRequestDuplicateEitherDirection(t *testing.T) {
	s := New()
	alice := s.CreateUser(newTestUser())
	bob := s.CreateUser(newTestUser())

	_, ok := s.CreateFriendRequest(alice.ID, bob.ID)
	require.True(t, ok)

	// Заявка видна независимо от порядка аргументов
	_, found := s.GetFriendRequest(alice.ID, bob.ID)
	assert.True(t, found)
	_, found = s.GetFriendRequest(bob.ID, alice.ID)
	assert.True(t, found)

	// Встречная заявка не создаёт вторую связь
	_, ok = s.CreateFriendRequest(bob.ID, alice.ID)
	assert.False(t, ok)
}

func TestAcceptFriendRequest(t *testing.T) {
	s := New()
	alice := s.CreateUser(newTestUser())
	bob := s.CreateUser(newTestUser())

	edge, _ := s.CreateFriendRequest(alice.ID, bob.ID)
	require.True(t, s.AcceptFriendRequest(edge.ID))

	// Оба видят друг друга ровно один раз
	aliceFriends := s.GetFriends(alice.ID)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends := s.GetFriends(bob.ID)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID, bobFriends[0].ID)

	assert.False(t, s.AcceptFriendRequest(999))
}

func TestRejectThenNewRequest(t *testing.T) {
	s := New()
	alice := s.CreateUser(newTestUser())
	bob := s.CreateUser(newTestUser())

	edge, _ := s.CreateFriendRequest(alice.ID, bob.ID)
	require.True(t, s.RejectFriendRequest(edge.ID))

	// Отклонённая связь не считается активной
	_, found := s.GetFriendRequest(alice.ID, bob.ID)
	assert.False(t, found)
	assert.Empty(t, s.GetFriends(alice.ID))

	// Отказ не запрещает новую заявку
	edge2, ok := s.CreateFriendRequest(bob.ID, alice.ID)
	require.True(t, ok)
	assert.Equal(t, models.FriendStatusPending, edge2.Status)
	assert.NotEqual(t, edge.ID, edge2.ID)
}

func TestGetFriendRequestsForUser(t *testing.T) {
	s := New()
	alice := s.CreateUser(newTestUser())
	bob := s.CreateUser(newTestUser())
	carol := s.CreateUser(newTestUser())

	s.CreateFriendRequest(alice.ID, carol.ID)
	edge, _ := s.CreateFriendRequest(bob.ID, carol.ID)

	// Входящие только pending и только на адресата
	reqs := s.GetFriendRequestsForUser(carol.ID)
	require.Len(t, reqs, 2)
	assert.Equal(t, alice.ID, reqs[0].Requester.ID)
	assert.Equal(t, bob.ID, reqs[1].Requester.ID)
	assert.Empty(t, s.GetFriendRequestsForUser(alice.ID))

	s.AcceptFriendRequest(edge.ID)
	reqs = s.GetFriendRequestsForUser(carol.ID)
	require.Len(t, reqs, 1)
	assert.Equal(t, alice.ID, reqs[0].Requester.ID)
}

func TestFriendSuggestions(t *testing.T) {
	s := New()

	users := make([]*models.User, 0, 8)
	for i := 0; i < 8; i++ {
		users = append(users, s.CreateUser(newTestUser()))
	}
	me := users[0]

	// users[1] - pending, users[2] - accepted, users[3] - rejected:
	// все трое исключаются из предложений
	s.CreateFriendRequest(me.ID, users[1].ID)
	e2, _ := s.CreateFriendRequest(users[2].ID, me.ID)
	s.AcceptFriendRequest(e2.ID)
	e3, _ := s.CreateFriendRequest(me.ID, users[3].ID)
	s.RejectFriendRequest(e3.ID)

	suggestions := s.GetFriendSuggestions(me.ID)
	require.Len(t, suggestions, 4)
	assert.Equal(t, users[4].ID, suggestions[0].ID)
	assert.Equal(t, users[5].ID, suggestions[1].ID)
	assert.Equal(t, users[6].ID, suggestions[2].ID)
	assert.Equal(t, users[7].ID, suggestions[3].ID)
}

func TestFriendSuggestionsCap(t *testing.T) {
	s := New()
	me := s.CreateUser(newTestUser())
	for i := 0; i < 10; i++ {
		s.CreateUser(newTestUser())
	}

	suggestions := s.GetFriendSuggestions(me.ID)
	require.Len(t, suggestions, 5)
	// Первые пять в порядке id
	for i, u := range suggestions {
		assert.Equal(t, me.ID+int64(i)+1, u.ID)
	}
}
