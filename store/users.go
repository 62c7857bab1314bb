package store

import (
	"sort"
	"strings"

	"socialnet/models"
)

// CreateUser сохраняет нового пользователя и присваивает ему id и timestamp.
// Уникальность username хранилище не перепроверяет - это делает вызывающий
// через GetUserByUsername до вставки.
func (s *Store) CreateUser(u models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUserID++
	u.ID = s.lastUserID
	u.CreatedAt = s.now()
	u.Banned = false

	s.users[u.ID] = &u

	out := u
	return &out
}

func (s *Store) GetUser(id int64) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userLocked(id)
}

func (s *Store) GetUserByUsername(username string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, true
		}
	}
	return nil, false
}

// SearchUsers ищет подстроку без учёта регистра в имени или username.
// Результат отсортирован по отображаемому имени.
func (s *Store) SearchUsers(query string) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	res := make([]*models.User, 0)
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Username), q) {
			out := *u
			res = append(res, &out)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// UpdateUser вливает в запись только явно присутствующие поля патча:
// nil-указатель оставляет текущее значение.
func (s *Store) UpdateUser(id int64, patch models.UserPatch) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}

	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.CoverImage != nil {
		u.CoverImage = *patch.CoverImage
	}
	if patch.CoverColor != nil {
		u.CoverColor = *patch.CoverColor
	}
	if patch.Work != nil {
		u.Work = *patch.Work
	}
	if patch.Education != nil {
		u.Education = *patch.Education
	}
	if patch.City != nil {
		u.City = *patch.City
	}
	if patch.Hometown != nil {
		u.Hometown = *patch.Hometown
	}
	if patch.LastNameChange != nil {
		t := *patch.LastNameChange
		u.LastNameChange = &t
	}

	out := *u
	return &out, true
}

// DeleteUser удаляет пользователя и каскадом: его посты (вместе с их лайками и
// комментариями), его лайки и комментарии на чужих постах и все его связи
// дружбы. Выполняется целиком под write-блокировкой - читатель не увидит
// пользователя без постов или осиротевшие лайки.
func (s *Store) DeleteUser(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)

	for postID, p := range s.posts {
		if p.UserID == id {
			s.dropPostLocked(postID)
		}
	}
	for likeID, l := range s.likes {
		if l.UserID == id {
			delete(s.likes, likeID)
		}
	}
	for commentID, c := range s.comments {
		if c.UserID == id {
			delete(s.comments, commentID)
		}
	}
	for edgeID, e := range s.friends {
		if e.RequesterID == id || e.AddresseeID == id {
			delete(s.friends, edgeID)
		}
	}
	for storyID, st := range s.stories {
		if st.UserID == id {
			delete(s.stories, storyID)
		}
	}
	delete(s.saved, id)

	return true
}

// ToggleBan переключает флаг блокировки. Повторный вызов возвращает исходное
// состояние.
func (s *Store) ToggleBan(id int64) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	u.Banned = !u.Banned

	out := *u
	return &out, true
}

func (s *Store) userLocked(id int64) (*models.User, bool) {
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	out := *u
	return &out, true
}
