package reconcile

import (
	"sort"
	"strings"

	"atlas/internal/domain"
)

// Group is one parent feature with its satellite features attached.
type Group struct {
	Parent     domain.Feature
	Satellites []domain.Feature
}

// GroupSatellites arranges features hierarchically. A feature named
// "<parent name> <S>" where S is one or two uppercase letters is a satellite
// of the feature named "<parent name>", provided that parent exists in the
// set. A suffix-shaped name with no matching parent stays a top-level
// feature, and a feature is never its own satellite.
//
// Satellites sort by suffix, shorter first and then lexicographically, so
// "A" < "B" < "AA" < "AB". Parents keep their input order.
func GroupSatellites(features []domain.Feature) []Group {
	names := make(map[string]struct{}, len(features))
	for _, f := range features {
		names[f.Name] = struct{}{}
	}

	type satellite struct {
		feature domain.Feature
		suffix  string
	}
	children := make(map[string][]satellite)
	orphanage := make(map[string]bool, len(features))

	for _, f := range features {
		parent, suffix, ok := splitSatelliteName(f.Name)
		if !ok {
			continue
		}
		// The suffix is non-empty, so parent can never equal f.Name and a
		// feature cannot become its own satellite.
		if _, exists := names[parent]; !exists {
			continue
		}
		children[parent] = append(children[parent], satellite{feature: f, suffix: suffix})
		orphanage[f.Name] = true
	}

	var groups []Group
	for _, f := range features {
		if orphanage[f.Name] {
			continue
		}
		g := Group{Parent: f}
		sats := children[f.Name]
		sort.SliceStable(sats, func(i, j int) bool {
			if len(sats[i].suffix) != len(sats[j].suffix) {
				return len(sats[i].suffix) < len(sats[j].suffix)
			}
			return sats[i].suffix < sats[j].suffix
		})
		for _, s := range sats {
			g.Satellites = append(g.Satellites, s.feature)
		}
		groups = append(groups, g)
	}
	return groups
}

// splitSatelliteName detaches a trailing 1-2 uppercase-letter token.
func splitSatelliteName(name string) (parent, suffix string, ok bool) {
	idx := strings.LastIndexByte(name, ' ')
	if idx <= 0 {
		return "", "", false
	}
	suffix = name[idx+1:]
	if len(suffix) < 1 || len(suffix) > 2 {
		return "", "", false
	}
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < 'A' || suffix[i] > 'Z' {
			return "", "", false
		}
	}
	return name[:idx], suffix, true
}
