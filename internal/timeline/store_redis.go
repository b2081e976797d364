package timeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"atlas/internal/domain"
	"atlas/pkg/platform/sentinel"
)

var findDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "atlas_timeline_cache_find_duration_ms",
	Help:    "Latency of timeline cache lookups in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

const (
	// Redis key prefix for cached timelines
	timelineKeyPrefix = "atlas:timeline:"
)

// RedisCacheStore is a Redis-backed CacheStore for deployments where multiple
// instances share resolved timelines. Entries expire so that revised knowledge
// base content is eventually picked up.
type RedisCacheStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisCacheStoreOption configures a RedisCacheStore instance.
type RedisCacheStoreOption func(*RedisCacheStore)

// WithTTL overrides the default entry expiry.
func WithTTL(ttl time.Duration) RedisCacheStoreOption {
	return func(s *RedisCacheStore) {
		s.ttl = ttl
	}
}

// NewRedisCacheStore constructs a Redis-backed timeline cache.
func NewRedisCacheStore(client *redis.Client, opts ...RedisCacheStoreOption) *RedisCacheStore {
	s := &RedisCacheStore{
		client: client,
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *RedisCacheStore) Find(ctx context.Context, key string) ([]domain.TimelineEvent, error) {
	start := time.Now()
	defer func() {
		findDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	raw, err := s.client.Get(ctx, timelineKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("timeline %q not cached: %w", key, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("timeline cache get: %w", err)
	}
	var events []domain.TimelineEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("timeline cache decode: %w", err)
	}
	return events, nil
}

func (s *RedisCacheStore) Save(ctx context.Context, key string, events []domain.TimelineEvent) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("timeline cache encode: %w", err)
	}
	return s.client.Set(ctx, timelineKeyPrefix+key, raw, s.ttl).Err()
}

// Clear removes every cached timeline. SCAN is used instead of KEYS so a
// large cache does not block the server.
func (s *RedisCacheStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, timelineKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("timeline cache clear: %w", err)
		}
	}
	return iter.Err()
}

// Close is a no-op since the client lifecycle is managed externally.
func (s *RedisCacheStore) Close() {}
