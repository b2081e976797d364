// Package catalog holds the static per-body reference data the core consumes:
// body descriptors with chronology constants, curated feature lists, and the
// named regions used for containment classification. Everything here is
// read-only; callers receive copies.
package catalog

import (
	"strings"

	"atlas/internal/domain"
)

// Chronology carries the body-specific age constants (years before present)
// the estimation model buckets against.
type Chronology struct {
	// Formation is the age of the body itself.
	Formation float64
	// Ancient is the age assigned to the oldest surviving surfaces, e.g.
	// craters larger than 100 km.
	Ancient float64
	// Mature covers the main resurfacing era.
	Mature float64
	// Young covers late resurfacing and mid-size impacts.
	Young float64
	// Recent is the age for small, fresh features.
	Recent float64
	// Default is the fallback when nothing about a feature narrows the age.
	Default float64
}

// Body describes a celestial object acting as the namespace for features and
// regions.
type Body struct {
	// Name is the canonical display name, e.g. "Moon".
	Name       string
	RadiusKm   float64
	ArchiveURL string
	Chronology Chronology
}

// Key returns the lower-case identifier used in cache keys.
func (b Body) Key() string {
	return strings.ToLower(b.Name)
}

var bodies = []Body{
	{
		Name:       "Moon",
		RadiusKm:   1737.4,
		ArchiveURL: "https://planetarynames.wr.usgs.gov/nomenclature/MOON_nomenclature.kmz",
		Chronology: Chronology{
			Formation: 4.51e9,
			Ancient:   4.3e9,
			Mature:    3.8e9,
			Young:     3.2e9,
			Recent:    1.0e9,
			Default:   3.5e9,
		},
	},
	{
		Name:       "Mars",
		RadiusKm:   3389.5,
		ArchiveURL: "https://planetarynames.wr.usgs.gov/nomenclature/MARS_nomenclature.kmz",
		Chronology: Chronology{
			Formation: 4.5e9,
			Ancient:   4.0e9,
			Mature:    3.5e9,
			Young:     3.0e9,
			Recent:    5.0e8,
			Default:   3.5e9,
		},
	},
	{
		Name:       "Mercury",
		RadiusKm:   2439.7,
		ArchiveURL: "https://planetarynames.wr.usgs.gov/nomenclature/MERCURY_nomenclature.kmz",
		Chronology: Chronology{
			Formation: 4.5e9,
			Ancient:   4.1e9,
			Mature:    3.9e9,
			Young:     3.5e9,
			Recent:    1.0e9,
			Default:   3.8e9,
		},
	},
}

// Lookup resolves a body by name, case-insensitively, so caller-supplied
// identifiers like "MARS" resolve to the canonical descriptor.
func Lookup(name string) (Body, bool) {
	for _, b := range bodies {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Body{}, false
}

// Bodies returns the known body descriptors in catalog order.
func Bodies() []Body {
	out := make([]Body, len(bodies))
	copy(out, bodies)
	return out
}

// CuratedFeatures returns the hand-maintained feature list for a body, or an
// empty list for bodies without one. The result is an independent copy.
func CuratedFeatures(body string) []domain.Feature {
	src := curated[strings.ToLower(body)]
	out := make([]domain.Feature, len(src))
	copy(out, src)
	return out
}

// Regions returns the named regions for a body in catalog order. The order is
// meaningful: region assignment is first-match.
func Regions(body string) []domain.Region {
	src := regions[strings.ToLower(body)]
	out := make([]domain.Region, len(src))
	copy(out, src)
	return out
}
