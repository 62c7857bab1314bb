package store

import (
	"sync"
	"time"

	"socialnet/models"
)

// SocialStore - контракт хранилища социальных данных. Все операции синхронные,
// отсутствие сущности сигнализируется вторым bool-результатом, а не ошибкой.
// Проверки предусловий (уникальность username, самозаявка в друзья и т.п.) -
// ответственность вызывающего слоя, хранилище даёт для них query-операции.
type SocialStore interface {
	// Пользователи
	CreateUser(u models.User) *models.User
	GetUser(id int64) (*models.User, bool)
	GetUserByUsername(username string) (*models.User, bool)
	SearchUsers(query string) []*models.User
	UpdateUser(id int64, patch models.UserPatch) (*models.User, bool)
	DeleteUser(id int64) bool
	ToggleBan(id int64) (*models.User, bool)

	// Посты, лайки, комментарии, закладки
	CreatePost(userID int64, content, media string) *models.Post
	GetPost(id int64) (*models.Post, bool)
	UpdatePost(id int64, content string) (*models.Post, bool)
	DeletePost(id int64) bool
	CreateLike(userID, postID int64) (*models.Like, bool)
	GetLike(userID, postID int64) (*models.Like, bool)
	RemoveLike(userID, postID int64)
	GetLikesByPost(postID int64) []*models.Like
	CreateComment(userID, postID int64, content string) *models.Comment
	GetCommentsByPost(postID int64) []*models.Comment
	SavePost(userID, postID int64)
	UnsavePost(userID, postID int64)
	GetSavedPosts(userID int64) []models.FeedPost

	// Граф дружбы
	CreateFriendRequest(requesterID, addresseeID int64) (*models.FriendEdge, bool)
	GetFriendRequest(a, b int64) (*models.FriendEdge, bool)
	AcceptFriendRequest(edgeID int64) bool
	RejectFriendRequest(edgeID int64) bool
	GetFriendRequestsForUser(userID int64) []models.FriendRequestView
	GetFriends(userID int64) []*models.User
	GetFriendSuggestions(userID int64) []*models.User

	// Лента и истории
	GetPostsForFeed(userID int64) []models.FeedPost
	GetPostsByUser(userID int64) []models.FeedPost
	GetAllPostsWithAuthors() []models.FeedPost
	CreateStory(userID int64, media string) *models.Story
	GetStories(viewerID int64) []models.StoryView
}

// Store - in-memory реализация SocialStore. Все коллекции принадлежат структуре
// и защищены одним RWMutex: нагрузка не критична к латентности, грубая
// блокировка даёт атомарность каскадных удалений для читателей.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users    map[int64]*models.User
	posts    map[int64]*models.Post
	likes    map[int64]*models.Like
	comments map[int64]*models.Comment
	friends  map[int64]*models.FriendEdge
	stories  map[int64]*models.Story

	// saved хранит закладки в порядке добавления
	saved map[int64][]int64

	lastUserID    int64
	lastPostID    int64
	lastLikeID    int64
	lastCommentID int64
	lastFriendID  int64
	lastStoryID   int64
}

var _ SocialStore = (*Store)(nil)

func New() *Store {
	return &Store{
		now:      time.Now,
		users:    make(map[int64]*models.User),
		posts:    make(map[int64]*models.Post),
		likes:    make(map[int64]*models.Like),
		comments: make(map[int64]*models.Comment),
		friends:  make(map[int64]*models.FriendEdge),
		stories:  make(map[int64]*models.Story),
		saved:    make(map[int64][]int64),
	}
}

// SetClock подменяет источник времени. Используется тестами историй и ленты.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
