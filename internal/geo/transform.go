package geo

import "math"

// Coordinate transforms between (latitude, longitude) degrees and points on a
// sphere. Longitude is east-positive; both directions use the same sign
// convention so the pair round-trips. NaN inputs propagate NaN rather than
// erroring.

const degToRad = math.Pi / 180

// ToCartesian maps a latitude/longitude pair onto a sphere of the given
// radius. Z points along the rotation axis, X through (0, 0).
func ToCartesian(lat, lon, radius float64) (x, y, z float64) {
	latR := lat * degToRad
	lonR := lon * degToRad
	x = radius * math.Cos(latR) * math.Cos(lonR)
	y = radius * math.Cos(latR) * math.Sin(lonR)
	z = radius * math.Sin(latR)
	return x, y, z
}

// ToSpherical inverts ToCartesian for any point off the origin. The radius is
// recovered from the point itself, so the result is independent of the sphere
// the point was projected onto.
func ToSpherical(x, y, z float64) (lat, lon float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	lat = math.Asin(z/r) / degToRad
	lon = math.Atan2(y, x) / degToRad
	return lat, lon
}
