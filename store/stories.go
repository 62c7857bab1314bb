package store

import (
	"sort"

	"socialnet/models"
)

func (s *Store) CreateStory(userID int64, media string) *models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastStoryID++
	st := &models.Story{
		ID:        s.lastStoryID,
		UserID:    userID,
		Media:     media,
		CreatedAt: s.now(),
	}
	s.stories[st.ID] = st

	out := *st
	return &out
}

// GetStories возвращает истории подтверждённых друзей и самого пользователя,
// созданные за последние 24 часа, от новых к старым. Истёкшие истории
// отфильтровываются здесь, фонового удаления нет.
func (s *Store) GetStories(viewerID int64) []models.StoryView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visible := map[int64]bool{viewerID: true}
	for _, id := range s.friendIDsLocked(viewerID) {
		visible[id] = true
	}

	cutoff := s.now().Add(-models.StoryTTL)

	res := make([]models.StoryView, 0)
	for _, st := range s.stories {
		if !visible[st.UserID] || !st.CreatedAt.After(cutoff) {
			continue
		}
		sv := models.StoryView{Story: *st}
		if author, ok := s.users[st.UserID]; ok {
			sv.Author = *author
		}
		res = append(res, sv)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res
}
