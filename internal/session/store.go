package session

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/GateFare/GateFare/internal/domain"
	"github.com/GateFare/GateFare/internal/observability"
)

// Session pairs one wizard with the bookkeeping the HTTP layer needs. The
// wizard itself assumes a single caller; Do serializes access per session.
type Session struct {
	ID uuid.UUID

	mu     sync.Mutex
	wizard *domain.Wizard
}

// Do runs fn with exclusive access to the session's wizard.
func (s *Session) Do(fn func(*domain.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.wizard)
}

// Store holds in-flight booking attempts in memory, keyed by session id.
// Nothing is persisted: an abandoned draft is swept after the TTL, a submitted
// one only survives as the notification the endpoint sent.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	lastSeen map[uuid.UUID]time.Time
	ttl      time.Duration
	logger   observability.Logger
}

func NewStore(ttl time.Duration, logger observability.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		lastSeen: make(map[uuid.UUID]time.Time),
		ttl:      ttl,
		logger:   logger,
	}
}

func (st *Store) Create(w *domain.Wizard) *Session {
	sess := &Session{ID: uuid.New(), wizard: w}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.lastSeen[sess.ID] = time.Now()
	st.mu.Unlock()

	observability.BookingSessionsStarted.Inc()
	observability.BookingSessionsActive.Set(float64(st.Len()))
	return sess
}

// Get returns the session and refreshes its TTL.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return nil, errors.Mark(errors.Newf("booking session %s", id), domain.ErrNotFound)
	}
	st.lastSeen[id] = time.Now()
	return sess, nil
}

func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	delete(st.lastSeen, id)
	st.mu.Unlock()
	observability.BookingSessionsActive.Set(float64(st.Len()))
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep discards sessions idle longer than the TTL. Runs until ctx is done.
func (st *Store) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			expired := st.ExpireNow(now)
			if expired > 0 {
				st.logger.WithField("count", expired).Info("swept abandoned booking sessions")
			}
		}
	}
}

// ExpireNow drops every session idle longer than the TTL as of now, returning
// how many were discarded.
func (st *Store) ExpireNow(now time.Time) int {
	st.mu.Lock()
	var expired int
	for id, seen := range st.lastSeen {
		if now.Sub(seen) > st.ttl {
			delete(st.sessions, id)
			delete(st.lastSeen, id)
			expired++
		}
	}
	remaining := len(st.sessions)
	st.mu.Unlock()

	if expired > 0 {
		observability.BookingSessionsExpired.Add(float64(expired))
		observability.BookingSessionsActive.Set(float64(remaining))
	}
	return expired
}
