package timeline

import (
	"context"

	"atlas/internal/domain"
)

// Error Contract:
// All store methods follow this pattern:
// - Return ErrNotFound when no timeline is cached for the key
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures
//

// CacheStore persists resolved timelines keyed by "<body>/<feature>".
type CacheStore interface {
	Find(ctx context.Context, key string) ([]domain.TimelineEvent, error)
	Save(ctx context.Context, key string, events []domain.TimelineEvent) error
	Clear(ctx context.Context) error
}
