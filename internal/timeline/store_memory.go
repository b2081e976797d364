package timeline

import (
	"context"
	"fmt"
	"sync"

	"atlas/internal/domain"
	"atlas/pkg/platform/sentinel"
)

// InMemoryCacheStore keeps resolved timelines in process memory. It is the
// default store for single-instance deployments and tests.
type InMemoryCacheStore struct {
	mu        sync.RWMutex
	timelines map[string][]domain.TimelineEvent
}

// NewInMemoryCacheStore constructs an empty in-memory timeline cache.
func NewInMemoryCacheStore() *InMemoryCacheStore {
	return &InMemoryCacheStore{
		timelines: make(map[string][]domain.TimelineEvent),
	}
}

func (s *InMemoryCacheStore) Find(_ context.Context, key string) ([]domain.TimelineEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events, ok := s.timelines[key]
	if !ok {
		return nil, fmt.Errorf("timeline %q not cached: %w", key, sentinel.ErrNotFound)
	}
	// Copy so callers cannot mutate the cached slice.
	out := make([]domain.TimelineEvent, len(events))
	copy(out, events)
	return out, nil
}

func (s *InMemoryCacheStore) Save(_ context.Context, key string, events []domain.TimelineEvent) error {
	stored := make([]domain.TimelineEvent, len(events))
	copy(stored, events)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timelines[key] = stored
	return nil
}

func (s *InMemoryCacheStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timelines = make(map[string][]domain.TimelineEvent)
	return nil
}
