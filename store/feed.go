package store

import (
	"sort"

	"socialnet/models"
)

// GetPostsForFeed строит ленту пользователя: его собственные посты плюс посты
// подтверждённых друзей, от новых к старым. Каждый пост обогащается автором,
// счётчиком лайков, флагом "лайкнул ли сам пользователь" и комментариями.
// Лента пересчитывается при каждом вызове, материализованного представления
// хранилище не держит.
func (s *Store) GetPostsForFeed(userID int64) []models.FeedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visible := map[int64]bool{userID: true}
	for _, id := range s.friendIDsLocked(userID) {
		visible[id] = true
	}

	res := make([]models.FeedPost, 0)
	for _, p := range s.posts {
		if visible[p.UserID] {
			res = append(res, s.enrichPostLocked(p, userID))
		}
	}
	sortFeed(res)
	return res
}

// GetPostsByUser возвращает посты одного пользователя с тем же обогащением,
// что и лента. Пользователь без постов - пустой список, не "not found".
func (s *Store) GetPostsByUser(userID int64) []models.FeedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.FeedPost, 0)
	for _, p := range s.posts {
		if p.UserID == userID {
			res = append(res, s.enrichPostLocked(p, userID))
		}
	}
	sortFeed(res)
	return res
}

// GetAllPostsWithAuthors возвращает все посты с авторами - административное
// представление.
func (s *Store) GetAllPostsWithAuthors() []models.FeedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.FeedPost, 0, len(s.posts))
	for _, p := range s.posts {
		res = append(res, s.enrichPostLocked(p, 0))
	}
	sortFeed(res)
	return res
}

// enrichPostLocked собирает FeedPost: join по пользователям, лайкам и
// комментариям. Вызывается под блокировкой (достаточно read).
func (s *Store) enrichPostLocked(p *models.Post, viewerID int64) models.FeedPost {
	fp := models.FeedPost{Post: *p}

	if author, ok := s.users[p.UserID]; ok {
		fp.Author = *author
	}

	for _, l := range s.likes {
		if l.PostID != p.ID {
			continue
		}
		fp.Likes++
		if l.UserID == viewerID {
			fp.Liked = true
		}
	}

	fp.Comments = make([]models.PostComment, 0)
	for _, c := range s.comments {
		if c.PostID != p.ID {
			continue
		}
		pc := models.PostComment{Comment: *c}
		if author, ok := s.users[c.UserID]; ok {
			pc.Author = *author
		}
		fp.Comments = append(fp.Comments, pc)
	}
	sort.Slice(fp.Comments, func(i, j int) bool {
		if !fp.Comments[i].CreatedAt.Equal(fp.Comments[j].CreatedAt) {
			return fp.Comments[i].CreatedAt.Before(fp.Comments[j].CreatedAt)
		}
		return fp.Comments[i].ID < fp.Comments[j].ID
	})

	return fp
}

// sortFeed сортирует посты от новых к старым, при равном времени - по id по
// убыванию.
func sortFeed(posts []models.FeedPost) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}
