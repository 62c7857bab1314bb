package store

import (
	"sort"

	"socialnet/models"
)

// CreateFriendRequest создаёт заявку в друзья со статусом pending.
// Проверка самозаявки - на вызывающем, но существование связи в любом
// направлении перепроверяется под блокировкой: конкурентные встречные заявки
// не создадут две связи, вторая получит false.
func (s *Store) CreateFriendRequest(requesterID, addresseeID int64) (*models.FriendEdge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.friendEdgeLocked(requesterID, addresseeID); ok {
		return nil, false
	}

	s.lastFriendID++
	e := &models.FriendEdge{
		ID:          s.lastFriendID,
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendStatusPending,
		CreatedAt:   s.now(),
	}
	s.friends[e.ID] = e

	out := *e
	return &out, true
}

// GetFriendRequest находит связь между a и b независимо от того, кто из них
// отправитель.
func (s *Store) GetFriendRequest(a, b int64) (*models.FriendEdge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.friendEdgeLocked(a, b)
	if !ok {
		return nil, false
	}
	out := *e
	return &out, true
}

func (s *Store) AcceptFriendRequest(edgeID int64) bool {
	return s.setFriendStatus(edgeID, models.FriendStatusAccepted)
}

func (s *Store) RejectFriendRequest(edgeID int64) bool {
	return s.setFriendStatus(edgeID, models.FriendStatusRejected)
}

func (s *Store) setFriendStatus(edgeID int64, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.friends[edgeID]
	if !ok {
		return false
	}
	e.Status = status
	return true
}

// GetFriendRequestsForUser возвращает входящие pending-заявки вместе с
// профилями отправителей, от старых к новым.
func (s *Store) GetFriendRequestsForUser(userID int64) []models.FriendRequestView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.FriendRequestView, 0)
	for _, e := range s.friends {
		if e.AddresseeID != userID || e.Status != models.FriendStatusPending {
			continue
		}
		requester, ok := s.users[e.RequesterID]
		if !ok {
			continue
		}
		res = append(res, models.FriendRequestView{
			RequestID: e.ID,
			Requester: *requester,
			CreatedAt: e.CreatedAt,
		})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].RequestID < res[j].RequestID })
	return res
}

// GetFriends возвращает подтверждённых друзей: для каждой accepted-связи
// берётся противоположная сторона.
func (s *Store) GetFriends(userID int64) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*models.User, 0)
	for _, id := range s.friendIDsLocked(userID) {
		if u, ok := s.users[id]; ok {
			out := *u
			res = append(res, &out)
		}
	}
	return res
}

// GetFriendSuggestions возвращает до пяти первых (по id) пользователей, с
// которыми ещё нет никакой связи - включая отклонённые заявки. Это намеренно
// примитивный алгоритм без ранжирования.
func (s *Store) GetFriendSuggestions(userID int64) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	const maxSuggestions = 5

	connected := make(map[int64]bool)
	for _, e := range s.friends {
		if e.RequesterID == userID {
			connected[e.AddresseeID] = true
		}
		if e.AddresseeID == userID {
			connected[e.RequesterID] = true
		}
	}

	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	res := make([]*models.User, 0, maxSuggestions)
	for _, id := range ids {
		if id == userID || connected[id] {
			continue
		}
		out := *s.users[id]
		res = append(res, &out)
		if len(res) == maxSuggestions {
			break
		}
	}
	return res
}

// friendIDsLocked возвращает id подтверждённых друзей в возрастающем порядке.
func (s *Store) friendIDsLocked(userID int64) []int64 {
	ids := make([]int64, 0)
	for _, e := range s.friends {
		if e.Status != models.FriendStatusAccepted {
			continue
		}
		switch userID {
		case e.RequesterID:
			ids = append(ids, e.AddresseeID)
		case e.AddresseeID:
			ids = append(ids, e.RequesterID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// friendEdgeLocked ищет активную (pending или accepted) связь между a и b в
// любом направлении. Отклонённые связи не считаются: после отказа можно
// отправить новую заявку.
func (s *Store) friendEdgeLocked(a, b int64) (*models.FriendEdge, bool) {
	for _, e := range s.friends {
		if e.Status == models.FriendStatusRejected {
			continue
		}
		if (e.RequesterID == a && e.AddresseeID == b) ||
			(e.RequesterID == b && e.AddresseeID == a) {
			return e, true
		}
	}
	return nil, false
}
