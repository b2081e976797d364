// Package reconcile merges archive-derived features with the curated catalog
// into one canonical, deterministically ordered feature set, and classifies
// each feature's containing region.
package reconcile

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"atlas/internal/domain"
	"atlas/internal/geo"
)

// Merge combines archive and curated features. Archive entries win by exact
// case-sensitive name; a curated feature survives only when no archive
// feature shares its name. The result is a new, independently owned list
// sorted with locale-aware collation for stable presentation.
//
// Either input may be empty: curated-only is the designed degraded mode when
// the archive is unavailable, not an error path.
func Merge(archive, curated []domain.Feature) []domain.Feature {
	out := make([]domain.Feature, 0, len(archive)+len(curated))
	seen := make(map[string]struct{}, len(archive))

	for _, f := range archive {
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		out = append(out, f)
	}
	for _, f := range curated {
		if _, taken := seen[f.Name]; taken {
			continue
		}
		seen[f.Name] = struct{}{}
		out = append(out, f)
	}

	// Collators are not safe for concurrent use, so build one per call.
	c := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// AssignRegions sets WithinRegion for every feature that lacks one, to the
// first region in catalog order whose bounding box contains the feature's
// point. First-match is deliberate: catalog ordering is the tie-break for
// overlapping regions. Features already carrying an assignment, including
// explicit curated values, are left untouched, and a feature inside no
// region keeps WithinRegion unset.
func AssignRegions(features []domain.Feature, regions []domain.Region) {
	for i := range features {
		if features[i].WithinRegion != "" {
			continue
		}
		for _, r := range regions {
			if geo.PointInBounds(features[i].Latitude, features[i].Longitude, r.Bounds) {
				features[i].WithinRegion = r.Name
				break
			}
		}
	}
}
