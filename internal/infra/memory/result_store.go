package memory

import (
	"context"
	"sync"
	"time"

	"trivia-quiz-service/internal/domain"
)

// ResultStore keeps submitted results in memory until their TTL passes.
type ResultStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu      sync.RWMutex
	results map[string]storedResult
}

type storedResult struct {
	result    domain.Result
	expiresAt time.Time
}

func NewResultStore(ttl time.Duration) *ResultStore {
	return NewResultStoreWithClock(ttl, time.Now)
}

// NewResultStoreWithClock is test-only for deterministic expiry.
func NewResultStoreWithClock(ttl time.Duration, clock func() time.Time) *ResultStore {
	return &ResultStore{
		ttl:     ttl,
		clock:   clock,
		results: make(map[string]storedResult),
	}
}

func (s *ResultStore) SaveResult(_ context.Context, result domain.Result) error {
	now := s.clock()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(now)
	s.results[result.ID] = storedResult{result: result, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *ResultStore) GetResult(_ context.Context, resultID string) (domain.Result, error) {
	now := s.clock()
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.results[resultID]
	if !ok || (s.ttl > 0 && !entry.expiresAt.After(now)) {
		return domain.Result{}, domain.ErrResultNotFound
	}
	return entry.result, nil
}

func (s *ResultStore) evictLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, entry := range s.results {
		if !entry.expiresAt.After(now) {
			delete(s.results, id)
		}
	}
}
