package domain

// Source records which input produced a feature. The reconciler prioritizes
// archive data, so downstream logic can rely on the label when both inputs
// carried the same name.
type Source string

const (
	SourceArchive Source = "archive"
	SourceCurated Source = "curated"
)

// Feature is a named point of geological interest on a body's surface.
// Name is the reconciliation key and is immutable after creation. It is
// unique per body, not globally.
type Feature struct {
	Name string
	// Type is an open classification string (crater, mons, vallis, ...) used
	// to route timeline estimation.
	Type string
	// Latitude in [-90, 90]. Longitude may arrive in any range; consumers
	// normalize, storage does not.
	Latitude  float64
	Longitude float64
	// DiameterKm is nil when the diameter is unknown. Unknown is not zero.
	DiameterKm *float64
	// Origin and ApprovalDate are optional provenance strings; empty means
	// the source did not carry them.
	Origin       string
	ApprovalDate string
	Source       Source
	// WithinRegion names the containing Region. Set at most once; an explicit
	// curated value is authoritative and is never re-derived.
	WithinRegion string
}

// Diameter returns the diameter in kilometers and whether it is known.
func (f Feature) Diameter() (float64, bool) {
	if f.DiameterKm == nil {
		return 0, false
	}
	return *f.DiameterKm, true
}

// Km is a convenience for building optional diameters in static catalogs.
func Km(v float64) *float64 {
	return &v
}
