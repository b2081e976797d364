package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for timeline resolution.
type Metrics struct {
	// Resolutions answered by each tier
	TierHits *prometheus.CounterVec

	// Cache lookup outcomes
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Knowledge base lookup latency
	KnowledgeLatency prometheus.Histogram
}

// New creates a Metrics instance with all timeline metrics registered.
func New() *Metrics {
	return &Metrics{
		TierHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_timeline_tier_hits_total",
			Help: "Timeline resolutions answered by each inference tier",
		}, []string{"tier"}), // tier: "override", "knowledge", "estimate"

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atlas_timeline_cache_hits_total",
			Help: "Timeline resolutions served from cache",
		}),

		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atlas_timeline_cache_misses_total",
			Help: "Timeline resolutions that missed the cache",
		}),

		KnowledgeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "atlas_timeline_knowledge_duration_seconds",
			Help:    "Duration of knowledge base lookups during resolution",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementTierHit records which tier produced a timeline.
func (m *Metrics) IncrementTierHit(tier string) {
	if m != nil {
		m.TierHits.WithLabelValues(tier).Inc()
	}
}

// IncrementCacheHit records a cache hit.
func (m *Metrics) IncrementCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

// IncrementCacheMiss records a cache miss.
func (m *Metrics) IncrementCacheMiss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}

// ObserveKnowledgeLatency records the duration of a knowledge base lookup.
func (m *Metrics) ObserveKnowledgeLatency(d time.Duration) {
	if m != nil {
		m.KnowledgeLatency.Observe(d.Seconds())
	}
}
