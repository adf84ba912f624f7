package client

import (
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
)

// Session is the signed-in user and their token.
type Session struct {
	mu    sync.RWMutex
	user  models.User
	token string
}

func (s *Session) Set(user models.User, token string) {
	s.mu.Lock()
	s.user, s.token = user, token
	s.mu.Unlock()
}

func (s *Session) Reset() {
	s.Set(models.User{}, "")
}

func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user.Role == models.RoleAdmin
}
