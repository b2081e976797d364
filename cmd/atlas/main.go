package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"atlas/internal/archive"
	"atlas/internal/domain"
	"atlas/internal/knowledge"
	"atlas/internal/platform/config"
	"atlas/internal/platform/logger"
	platformredis "atlas/internal/platform/redis"
	"atlas/internal/session"
	"atlas/internal/timeline"
	timelinemetrics "atlas/internal/timeline/metrics"
)

// main wires high-level dependencies and drives one load-and-resolve pass.
// Business logic lives in the internal packages.
func main() {
	_ = godotenv.Load(".env")

	body := flag.String("body", "Moon", "celestial body to load")
	feature := flag.String("feature", "", "feature name to resolve a timeline for")
	flag.Parse()

	cfg := config.FromEnv()
	log := logger.Setup()

	cache := timeline.CacheStore(timeline.NewInMemoryCacheStore())
	rdb, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable, using in-memory timeline cache", "error", err)
	} else if rdb != nil {
		defer rdb.Close()
		cache = timeline.NewRedisCacheStore(rdb.Client)
		log.Info("timeline cache backed by redis")
	}

	engine := timeline.NewEngine(cache,
		timeline.WithKnowledgeBase(knowledge.NewClient(cfg.KnowledgeBaseURL,
			knowledge.WithTimeout(cfg.KnowledgeTimeout))),
		timeline.WithLogger(log),
		timeline.WithMetrics(timelinemetrics.New()),
	)
	sess := session.NewSession(archive.NewFetcher(cfg.ArchiveTimeout), engine,
		session.WithLogger(log))

	ctx := context.Background()
	result, err := sess.LoadFeatures(ctx, *body)
	if err != nil {
		log.Error("load failed", "body", *body, "error", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d features (%d archive, %d curated, %d skipped)\n",
		*body, len(result.Features), result.ArchiveCount, result.CuratedCount,
		result.SkippedRecords)

	if *feature == "" {
		return
	}

	target, ok := findFeature(result.Features, *feature)
	if !ok {
		// Resolution still works for features outside the loaded set.
		target = domain.Feature{Name: *feature}
	}
	events, err := sess.ResolveTimeline(ctx, *body, target)
	if err != nil {
		log.Error("timeline resolution failed", "feature", *feature, "error", err)
		os.Exit(1)
	}

	fmt.Printf("\nGeological timeline for %s:\n", target.Name)
	for _, ev := range events {
		fmt.Printf("  %-32s %18s  [%s]\n", ev.Phase, formatYears(ev.Years), ev.Source)
	}
}

func findFeature(features []domain.Feature, name string) (domain.Feature, bool) {
	for _, f := range features {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return domain.Feature{}, false
}

func formatYears(years float64) string {
	switch {
	case years >= 1e9:
		return fmt.Sprintf("%.2f Ga", years/1e9)
	case years >= 1e6:
		return fmt.Sprintf("%.1f Ma", years/1e6)
	case years >= 1e3:
		return fmt.Sprintf("%.1f ka", years/1e3)
	case years == 0:
		return "present"
	}
	return fmt.Sprintf("%.0f a", years)
}
