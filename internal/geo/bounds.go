package geo

import "atlas/internal/domain"

// PointInBounds reports whether a point lies inside a bounding box. Latitude
// is a closed-interval check. When the box crosses the antimeridian
// (west > east) longitude membership becomes the disjunction
// lon >= west OR lon <= east.
func PointInBounds(lat, lon float64, box domain.BoundingBox) bool {
	if lat < box.South || lat > box.North {
		return false
	}
	if box.Wraps() {
		return lon >= box.West || lon <= box.East
	}
	return lon >= box.West && lon <= box.East
}

// BoxesIntersect reports whether two boxes overlap, via the standard
// separating-axis check on the four bounds.
//
// Limitation: wrapped (antimeridian-crossing) boxes are not handled here and
// will under-report overlap near ±180°. Callers that work with wrapped boxes
// must split them into two non-wrapping halves first.
func BoxesIntersect(a, b domain.BoundingBox) bool {
	if a.East < b.West || b.East < a.West {
		return false
	}
	if a.North < b.South || b.North < a.South {
		return false
	}
	return true
}

// FilterByBounds returns the features whose positions lie inside the box,
// preserving input order.
func FilterByBounds(features []domain.Feature, box domain.BoundingBox) []domain.Feature {
	var out []domain.Feature
	for _, f := range features {
		if PointInBounds(f.Latitude, f.Longitude, box) {
			out = append(out, f)
		}
	}
	return out
}

// RegionsOverlapping returns the regions whose bounding boxes intersect the
// selection, preserving catalog order. The selection must not wrap; see
// BoxesIntersect.
func RegionsOverlapping(regions []domain.Region, box domain.BoundingBox) []domain.Region {
	var out []domain.Region
	for _, r := range regions {
		if BoxesIntersect(r.Bounds, box) {
			out = append(out, r)
		}
	}
	return out
}
