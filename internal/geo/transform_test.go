package geo

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-6

func TestRoundTrip(t *testing.T) {
	lats := []float64{-90, -89.999, -45.5, -11.36, 0, 18.65, 43.31, 89.999, 90}
	lons := []float64{-179.999, -133.8, -90, -11.36, 0, 31.4, 137.8, 179.999, 180}
	radii := []float64{0.001, 1, 1737.4, 3389.5}

	for _, r := range radii {
		for _, lat := range lats {
			for _, lon := range lons {
				name := fmt.Sprintf("r=%v lat=%v lon=%v", r, lat, lon)
				x, y, z := ToCartesian(lat, lon, r)
				gotLat, gotLon := ToSpherical(x, y, z)
				assert.InDelta(t, lat, gotLat, tolerance, name)
				// At the poles longitude is degenerate; elsewhere it must
				// round-trip, allowing for the ±180 seam.
				if math.Abs(lat) < 90 {
					dLon := math.Abs(gotLon - lon)
					if dLon > 180 {
						dLon = 360 - dLon
					}
					assert.InDelta(t, 0, dLon, tolerance, name)
				}
			}
		}
	}
}

func TestToCartesianRadius(t *testing.T) {
	x, y, z := ToCartesian(30, 60, 1737.4)
	r := math.Sqrt(x*x + y*y + z*z)
	assert.InDelta(t, 1737.4, r, 1e-9)
}

func TestNaNPropagates(t *testing.T) {
	x, y, z := ToCartesian(math.NaN(), 10, 1)
	assert.True(t, math.IsNaN(x))
	assert.True(t, math.IsNaN(z))

	lat, lon := ToSpherical(x, y, z)
	assert.True(t, math.IsNaN(lat))
	assert.True(t, math.IsNaN(lon))
}
