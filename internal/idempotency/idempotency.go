package idempotency

import (
	"sync"
	"time"
)

// Response is a replayable submission outcome.
type Response struct {
	Status int
	Body   []byte
}

// Store caches submission responses by the client-supplied Idempotency-Key.
// A retry after an ambiguous failure replays the recorded outcome instead of
// pushing a second notification through the endpoint. In-memory only, like
// every other piece of funnel state.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
}

type entry struct {
	resp      Response
	expiresAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, entries: make(map[string]entry)}
}

func (s *Store) Get(key string) (Response, bool) {
	if key == "" {
		return Response{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return Response{}, false
	}
	return e.resp, true
}

func (s *Store) Set(key string, resp Response) {
	if key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.entries[key] = entry{resp: resp, expiresAt: now.Add(s.ttl)}
}
