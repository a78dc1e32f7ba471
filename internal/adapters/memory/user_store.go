package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	apperrors "github.com/target/chat-portal/internal/errors"
	"github.com/target/chat-portal/internal/ports"
)

var (
	_ ports.UserRepository       = (*UserStore)(nil)
	_ ports.EmailTokenRepository = (*UserStore)(nil)
)

// UserStore is an in-memory user and email token repository for the dev gateway.
// Emails are matched case-insensitively, usernames exactly.
type UserStore struct {
	mu     sync.RWMutex
	byID   map[string]ports.UserRecord
	tokens map[string]ports.EmailToken
}

// NewUserStore creates an empty store.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:   make(map[string]ports.UserRecord),
		tokens: make(map[string]ports.EmailToken),
	}
}

func (s *UserStore) Create(_ context.Context, u *ports.UserRecord) error {
	if u == nil || u.ID == "" {
		return errors.New("user with ID is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return apperrors.FieldConflict("email")
		}
		if existing.Username == u.Username {
			return apperrors.FieldConflict("username")
		}
	}
	s.byID[u.ID] = *u
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*ports.UserRecord, error) {
	return s.find(func(u ports.UserRecord) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*ports.UserRecord, error) {
	return s.find(func(u ports.UserRecord) bool { return u.Username == username }), nil
}

func (s *UserStore) find(match func(ports.UserRecord) bool) *ports.UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.byID {
		if match(u) {
			found := u
			return &found
		}
	}
	return nil
}

func (s *UserStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	delete(s.tokens, id)
	return nil
}

func (s *UserStore) Save(_ context.Context, t ports.EmailToken) error {
	if t.UserID == "" {
		return errors.New("token user ID is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[t.UserID] = t
	return nil
}

func (s *UserStore) FindByUser(_ context.Context, userID string) (*ports.EmailToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tokens[userID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}
