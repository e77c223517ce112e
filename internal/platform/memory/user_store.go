package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/quietpage/stacks-api/internal/domain"
	"github.com/quietpage/stacks-api/internal/service/auth"
	"github.com/quietpage/stacks-api/internal/store"
)

// UserStore implements store.UserStore with a username-keyed map. Username
// lookup is the hot path (login, registration conflict check), so the map is
// keyed by username with a secondary ID index.
type UserStore struct {
	hasher auth.PasswordHasher

	mu         sync.RWMutex
	byUsername map[string]*domain.User
	byID       map[uuid.UUID]string
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty user store that hashes passwords with the
// given hasher before retaining them.
func NewUserStore(hasher auth.PasswordHasher) *UserStore {
	return &UserStore{
		hasher:     hasher,
		byUsername: make(map[string]*domain.User),
		byID:       make(map[uuid.UUID]string),
	}
}

// Create implements store.UserStore.Create. The plaintext password is hashed
// here and wiped from the stored record.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[user.Username]; ok {
		return store.ErrUsernameExists
	}

	stored := *user
	stored.Password = ""
	stored.HashedPassword = hashed

	s.byUsername[stored.Username] = &stored
	s.byID[stored.ID] = stored.Username

	// Reflect the hash back so the caller's copy matches the stored record.
	user.Password = ""
	user.HashedPassword = hashed

	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	user := *s.byUsername[username]
	return &user, nil
}

// GetByUsername implements store.UserStore.GetByUsername. Comparison is
// case-sensitive: "Alice" and "alice" are distinct users.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byUsername[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	out := *user
	return &out, nil
}
