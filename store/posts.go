package store

import (
	"sort"

	"socialnet/models"
)

func (s *Store) CreatePost(userID int64, content, media string) *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastPostID++
	p := &models.Post{
		ID:        s.lastPostID,
		UserID:    userID,
		Content:   content,
		Media:     media,
		CreatedAt: s.now(),
	}
	s.posts[p.ID] = p

	out := *p
	return &out
}

func (s *Store) GetPost(id int64) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, false
	}
	out := *p
	return &out, true
}

// UpdatePost заменяет текст поста. Медиа и автор не меняются.
func (s *Store) UpdatePost(id int64, content string) (*models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, false
	}
	p.Content = content

	out := *p
	return &out, true
}

// DeletePost удаляет пост и каскадом все его лайки и комментарии.
func (s *Store) DeletePost(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return false
	}
	s.dropPostLocked(id)
	return true
}

// dropPostLocked удаляет пост вместе с лайками, комментариями и закладками.
// Вызывается только под write-блокировкой.
func (s *Store) dropPostLocked(postID int64) {
	delete(s.posts, postID)
	for likeID, l := range s.likes {
		if l.PostID == postID {
			delete(s.likes, likeID)
		}
	}
	for commentID, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, commentID)
		}
	}
	for userID, ids := range s.saved {
		for i, pid := range ids {
			if pid == postID {
				s.saved[userID] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
}

// CreateLike сохраняет лайк. Проверка "пары ещё нет" выполняется под той же
// блокировкой, что и вставка: два конкурентных дубля не пройдут, второй
// получит false.
func (s *Store) CreateLike(userID, postID int64) (*models.Like, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.likeLocked(userID, postID); ok {
		return nil, false
	}

	s.lastLikeID++
	l := &models.Like{
		ID:        s.lastLikeID,
		UserID:    userID,
		PostID:    postID,
		CreatedAt: s.now(),
	}
	s.likes[l.ID] = l

	out := *l
	return &out, true
}

func (s *Store) GetLike(userID, postID int64) (*models.Like, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.likeLocked(userID, postID)
	if !ok {
		return nil, false
	}
	out := *l
	return &out, true
}

// RemoveLike снимает лайк. Отсутствие лайка не ошибка.
func (s *Store) RemoveLike(userID, postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for likeID, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			delete(s.likes, likeID)
			return
		}
	}
}

func (s *Store) GetLikesByPost(postID int64) []*models.Like {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*models.Like, 0)
	for _, l := range s.likes {
		if l.PostID == postID {
			out := *l
			res = append(res, &out)
		}
	}
	return res
}

func (s *Store) CreateComment(userID, postID int64, content string) *models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastCommentID++
	c := &models.Comment{
		ID:        s.lastCommentID,
		UserID:    userID,
		PostID:    postID,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.comments[c.ID] = c

	out := *c
	return &out
}

// GetCommentsByPost возвращает комментарии от старых к новым, при равном
// времени - в порядке вставки (по id).
func (s *Store) GetCommentsByPost(postID int64) []*models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			out := *c
			res = append(res, &out)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})
	return res
}

// SavePost добавляет пост в закладки. Повторное сохранение - no-op.
func (s *Store) SavePost(userID, postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pid := range s.saved[userID] {
		if pid == postID {
			return
		}
	}
	s.saved[userID] = append(s.saved[userID], postID)
}

// UnsavePost убирает пост из закладок. Отсутствие закладки не ошибка.
func (s *Store) UnsavePost(userID, postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.saved[userID]
	for i, pid := range ids {
		if pid == postID {
			s.saved[userID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// GetSavedPosts возвращает закладки в порядке добавления, обогащённые как
// посты ленты.
func (s *Store) GetSavedPosts(userID int64) []models.FeedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.FeedPost, 0)
	for _, postID := range s.saved[userID] {
		p, ok := s.posts[postID]
		if !ok {
			continue
		}
		res = append(res, s.enrichPostLocked(p, userID))
	}
	return res
}

func (s *Store) likeLocked(userID, postID int64) (*models.Like, bool) {
	for _, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			return l, true
		}
	}
	return nil, false
}
