package memory

import (
	"context"
	"sync"
	"time"

	"github.com/quietpage/stacks-api/internal/domain"
	"github.com/quietpage/stacks-api/internal/store"
)

// SessionStore implements store.SessionStore with an ID-keyed map. Expired
// entries are rejected on read and swept by a background janitor so an
// abandoned session does not linger for the full process lifetime.
type SessionStore struct {
	timeFunc func() time.Time // Injectable for testing

	mu       sync.RWMutex
	sessions map[string]*domain.Session

	stopOnce sync.Once
	stopCh   chan struct{}
}

// Ensure SessionStore implements store.SessionStore interface
var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty session store and starts a janitor
// goroutine that evicts expired sessions at the given interval. Call Stop to
// terminate the janitor. A non-positive interval disables the janitor;
// expired sessions are then only evicted lazily on Get.
func NewSessionStore(janitorInterval time.Duration) *SessionStore {
	s := &SessionStore{
		timeFunc: time.Now,
		sessions: make(map[string]*domain.Session),
		stopCh:   make(chan struct{}),
	}

	if janitorInterval > 0 {
		go s.janitor(janitorInterval)
	}

	return s
}

// Stop terminates the janitor goroutine.
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// Create implements store.SessionStore.Create.
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

// Get implements store.SessionStore.Get. An expired session is evicted and
// reported as not found, so callers never see a lapsed entry.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, store.ErrSessionNotFound
	}

	if session.Expired(s.timeFunc()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, store.ErrSessionNotFound
	}

	out := *session
	return &out, nil
}

// Delete implements store.SessionStore.Delete.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Len reports the number of live entries. For tests and metrics.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// janitor periodically sweeps expired sessions.
func (s *SessionStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep removes every expired session.
func (s *SessionStore) sweep() {
	now := s.timeFunc()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
		}
	}
}
