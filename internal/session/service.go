// Package session is the caller-facing surface of the atlas core. A Session
// owns one body-load-and-inspect workflow: fetch the nomenclature archive,
// reconcile it with curated data, filter by area, and resolve timelines.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"atlas/internal/archive"
	"atlas/internal/catalog"
	"atlas/internal/domain"
	"atlas/internal/geo"
	"atlas/internal/reconcile"
	"atlas/pkg/platform/sentinel"
)

// ArchiveFetcher retrieves a raw archive blob from a URL.
type ArchiveFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TimelineResolver resolves geological timelines and owns their cache.
type TimelineResolver interface {
	Resolve(ctx context.Context, body string, f domain.Feature) ([]domain.TimelineEvent, error)
	ClearCache(ctx context.Context) error
}

// LoadResult reports a body load: the reconciled feature set plus the counts
// callers surface when explaining a degraded load.
type LoadResult struct {
	Features []domain.Feature
	Assets   []archive.Asset

	// ArchiveCount is the number of features parsed from the archive. Zero
	// with a non-empty Features slice means the load ran curated-only.
	ArchiveCount int
	CuratedCount int

	// SkippedRecords counts archive placemarks dropped as unusable.
	SkippedRecords int
}

// Session is one caller workflow with its own identity. Timeline resolutions
// are cached across loads within the session; a fresh comparison session
// starts by clearing that cache.
type Session struct {
	id       uuid.UUID
	fetcher  ArchiveFetcher
	timeline TimelineResolver
	log      *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *slog.Logger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

// NewSession constructs a session around an archive fetcher and a timeline
// resolver.
func NewSession(fetcher ArchiveFetcher, timeline TimelineResolver, opts ...SessionOption) *Session {
	s := &Session{
		id:       uuid.New(),
		fetcher:  fetcher,
		timeline: timeline,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// LoadFeatures fetches and parses the body's nomenclature archive, reconciles
// it with the curated catalog, and assigns regions. Archive failures degrade
// to a curated-only result; only an unknown body is an error.
func (s *Session) LoadFeatures(ctx context.Context, body string) (LoadResult, error) {
	b, ok := catalog.Lookup(body)
	if !ok {
		return LoadResult{}, fmt.Errorf("unknown body %q: %w", body, sentinel.ErrInvalidArgument)
	}

	curated := catalog.CuratedFeatures(body)
	result := LoadResult{CuratedCount: len(curated)}

	var archived []domain.Feature
	blob, err := s.fetcher.Fetch(ctx, b.ArchiveURL)
	if err != nil {
		s.log.Warn("archive fetch failed, continuing with curated data",
			"session", s.id, "body", b.Name, "error", err)
	} else {
		parsed, err := archive.Parse(blob)
		if err != nil {
			s.log.Warn("archive parse failed, continuing with curated data",
				"session", s.id, "body", b.Name, "error", err)
		} else {
			archived = parsed.Features
			result.Assets = parsed.Assets
			result.SkippedRecords = parsed.Skipped
		}
	}
	result.ArchiveCount = len(archived)

	result.Features = reconcile.Merge(archived, curated)
	reconcile.AssignRegions(result.Features, catalog.Regions(body))

	s.log.Info("features loaded",
		"session", s.id, "body", b.Name,
		"total", len(result.Features),
		"archive", result.ArchiveCount,
		"curated", result.CuratedCount,
		"skipped", result.SkippedRecords)
	return result, nil
}

// FilterByArea returns the features inside the bounding box, preserving
// load order.
func (s *Session) FilterByArea(features []domain.Feature, box domain.BoundingBox) []domain.Feature {
	return geo.FilterByBounds(features, box)
}

// GroupFeatures organizes features into parent/satellite hierarchies.
func (s *Session) GroupFeatures(features []domain.Feature) []reconcile.Group {
	return reconcile.GroupSatellites(features)
}

// ResolveTimeline resolves the geological timeline for one feature.
func (s *Session) ResolveTimeline(ctx context.Context, body string, f domain.Feature) ([]domain.TimelineEvent, error) {
	return s.timeline.Resolve(ctx, body, f)
}

// ClearTimelineCache discards cached timelines, typically at the start of a
// fresh comparison session.
func (s *Session) ClearTimelineCache(ctx context.Context) error {
	return s.timeline.ClearCache(ctx)
}
