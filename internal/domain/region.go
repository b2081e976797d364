package domain

// BoundingBox is four degree bounds. West > East denotes a box crossing the
// antimeridian. Boxes are transient selection state, never persisted.
type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Wraps reports whether the box crosses the antimeridian.
func (b BoundingBox) Wraps() bool {
	return b.West > b.East
}

// Region is a large named geographic area with an axis-aligned bounding box,
// using the same antimeridian convention as BoundingBox. Regions are static
// per-body reference data; the core only reads them.
type Region struct {
	Name   string
	Bounds BoundingBox
}
