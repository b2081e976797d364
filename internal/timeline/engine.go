package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"atlas/internal/catalog"
	"atlas/internal/domain"
	"atlas/internal/knowledge"
	"atlas/internal/timeline/metrics"
	"atlas/pkg/platform/sentinel"
)

// KnowledgeBase is the engine's view of the knowledge client. Lookup returns
// ErrNotFound when no page matches the feature name.
type KnowledgeBase interface {
	Lookup(ctx context.Context, name string) (knowledge.Page, error)
}

// Engine resolves geological timelines through a three-tier cascade:
// curated overrides, knowledge base extraction, then the estimation model.
// Results are cached, and concurrent requests for the same feature share a
// single resolution.
type Engine struct {
	cache   CacheStore
	kb      KnowledgeBase
	group   singleflight.Group
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithKnowledgeBase enables the knowledge extraction tier. Without it the
// cascade goes straight from overrides to estimation.
func WithKnowledgeBase(kb KnowledgeBase) Option {
	return func(e *Engine) {
		e.kb = kb
	}
}

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithMetrics enables resolution metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine constructs a timeline engine backed by the given cache.
func NewEngine(cache CacheStore, opts ...Option) *Engine {
	e := &Engine{
		cache: cache,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Resolve returns the geological timeline for a named feature on a body.
// The body must exist in the catalog and the feature must be named; both are
// contract errors. Everything past validation degrades instead of failing:
// an unreachable knowledge base simply drops the cascade to estimation.
func (e *Engine) Resolve(ctx context.Context, body string, f domain.Feature) ([]domain.TimelineEvent, error) {
	b, ok := catalog.Lookup(body)
	if !ok {
		return nil, fmt.Errorf("unknown body %q: %w", body, sentinel.ErrInvalidArgument)
	}
	if strings.TrimSpace(f.Name) == "" {
		return nil, fmt.Errorf("feature has no name: %w", sentinel.ErrInvalidArgument)
	}

	key := b.Key() + "/" + f.Name
	if events, err := e.cache.Find(ctx, key); err == nil {
		e.metrics.IncrementCacheHit()
		return events, nil
	}
	e.metrics.IncrementCacheMiss()

	v, err, _ := e.group.Do(key, func() (interface{}, error) {
		// A concurrent flight may have populated the cache while this
		// caller was queued behind it.
		if events, err := e.cache.Find(ctx, key); err == nil {
			return events, nil
		}

		events := e.resolveTiers(ctx, b, f)
		if err := e.cache.Save(ctx, key, events); err != nil {
			e.log.Warn("timeline cache save failed", "key", key, "error", err)
		}
		return events, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.TimelineEvent), nil
}

// ClearCache discards every cached timeline.
func (e *Engine) ClearCache(ctx context.Context) error {
	return e.cache.Clear(ctx)
}

func (e *Engine) resolveTiers(ctx context.Context, b catalog.Body, f domain.Feature) []domain.TimelineEvent {
	if events, ok := overrides[b.Key()+"/"+strings.ToLower(f.Name)]; ok {
		e.metrics.IncrementTierHit("override")
		out := make([]domain.TimelineEvent, len(events))
		copy(out, events)
		return out
	}

	if e.kb != nil {
		if events, ok := e.fromKnowledge(ctx, b, f); ok {
			e.metrics.IncrementTierHit("knowledge")
			return events
		}
	}

	e.metrics.IncrementTierHit("estimate")
	return estimate(b, f)
}

// fromKnowledge builds a timeline from knowledge base evidence. It reports
// false only when the lookup itself fails; a found page always yields a
// timeline, with the estimation model filling in ages the page does not date.
func (e *Engine) fromKnowledge(ctx context.Context, b catalog.Body, f domain.Feature) ([]domain.TimelineEvent, bool) {
	start := time.Now()
	page, err := e.kb.Lookup(ctx, f.Name)
	e.metrics.ObserveKnowledgeLatency(time.Since(start))
	if err != nil {
		e.log.Info("knowledge base unavailable for feature, falling back to estimation",
			"body", b.Name, "feature", f.Name, "error", err)
		return nil, false
	}

	var formationEvent domain.TimelineEvent
	formation, evidence, dated := knowledge.FormationAge(page)
	if dated {
		formationEvent = domain.TimelineEvent{
			Phase: "Formation", Years: formation, Source: knowledgeSource(evidence), URL: page.URL,
			Description: fmt.Sprintf("%s formed about %s, per published evidence.", f.Name, humanYears(formation)),
		}
	} else {
		var conf Confidence
		formation, conf = formationEstimate(b, f)
		formationEvent = domain.TimelineEvent{
			Phase: "Formation", Years: formation, Source: modelSource(conf),
			Description: fmt.Sprintf("No dated formation evidence was published for %s; a modeled age applies.", f.Name),
		}
	}
	events := []domain.TimelineEvent{formationEvent}

	if activity, actEvidence, ok := knowledge.LastActivityAge(page); ok {
		events = append(events, domain.TimelineEvent{
			Phase: "Most recent major activity", Years: activity,
			Source: knowledgeSource(actEvidence), URL: page.URL,
			Description: fmt.Sprintf("The last recorded major activity dates to about %s.", humanYears(activity)),
		})
	} else if knowledge.MentionsVolcanism(page) {
		// The page discusses volcanism but gives no date. Synthesize the
		// midpoint between formation and the present rather than losing
		// the phase entirely.
		events = append(events, domain.TimelineEvent{
			Phase: "Most recent major activity", Years: formation / 2,
			Source: modelSource(ConfidenceLow),
			Description: "Volcanic activity is documented but undated; a midpoint estimate applies.",
		})
	}

	current := domain.TimelineEvent{
		Phase: "Current state", Years: 0, Source: knowledgeSource("intro extract"), URL: page.URL,
		Description: knowledge.IntroSummary(page),
	}
	if current.Description == "" {
		current.Description = fmt.Sprintf("%s is geologically quiet today.", f.Name)
	}
	events = append(events, current)

	sortTimeline(events)
	return events, true
}

func knowledgeSource(evidence string) string {
	return fmt.Sprintf("knowledge base (%s)", evidence)
}

// sortTimeline orders events oldest first, with ties kept in insertion order.
func sortTimeline(events []domain.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Years > events[j].Years
	})
}

// humanYears renders an absolute age for event descriptions.
func humanYears(years float64) string {
	switch {
	case years >= 1e9:
		return fmt.Sprintf("%.2g billion years ago", years/1e9)
	case years >= 1e6:
		return fmt.Sprintf("%.3g million years ago", years/1e6)
	case years >= 1e3:
		return fmt.Sprintf("%.3g thousand years ago", years/1e3)
	case years <= 0:
		return "the present day"
	}
	return fmt.Sprintf("%.0f years ago", years)
}
