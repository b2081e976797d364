package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atlas/internal/domain"
)

// =============================================================================
// Point Membership
// =============================================================================

func TestPointInBounds(t *testing.T) {
	plain := domain.BoundingBox{North: 40, South: 10, West: -30, East: 20}

	t.Run("inside", func(t *testing.T) {
		assert.True(t, PointInBounds(25, 0, plain))
	})
	t.Run("on edges", func(t *testing.T) {
		assert.True(t, PointInBounds(40, 20, plain))
		assert.True(t, PointInBounds(10, -30, plain))
	})
	t.Run("latitude outside", func(t *testing.T) {
		assert.False(t, PointInBounds(41, 0, plain))
		assert.False(t, PointInBounds(9.99, 0, plain))
	})
	t.Run("longitude outside", func(t *testing.T) {
		assert.False(t, PointInBounds(25, 20.01, plain))
		assert.False(t, PointInBounds(25, -31, plain))
	})
}

func TestPointInBoundsAntimeridian(t *testing.T) {
	wrap := domain.BoundingBox{North: 60, South: -60, West: 170, East: -170}

	t.Run("west of seam", func(t *testing.T) {
		assert.True(t, PointInBounds(10, 179, wrap))
		assert.True(t, PointInBounds(10, 170, wrap))
	})
	t.Run("at the seam", func(t *testing.T) {
		assert.True(t, PointInBounds(10, 180, wrap))
		assert.True(t, PointInBounds(10, -180, wrap))
	})
	t.Run("east of seam", func(t *testing.T) {
		assert.True(t, PointInBounds(10, -175, wrap))
		assert.True(t, PointInBounds(10, -170, wrap))
	})
	t.Run("outside the wrapped span", func(t *testing.T) {
		assert.False(t, PointInBounds(10, 0, wrap))
		assert.False(t, PointInBounds(10, 169.9, wrap))
		assert.False(t, PointInBounds(10, -169.9, wrap))
	})
	t.Run("latitude still bounds", func(t *testing.T) {
		assert.False(t, PointInBounds(61, 179, wrap))
	})
}

// =============================================================================
// Box Intersection
// =============================================================================

func TestBoxesIntersect(t *testing.T) {
	a := domain.BoundingBox{North: 30, South: 0, West: 0, East: 30}

	t.Run("overlapping", func(t *testing.T) {
		b := domain.BoundingBox{North: 40, South: 20, West: 20, East: 50}
		assert.True(t, BoxesIntersect(a, b))
		assert.True(t, BoxesIntersect(b, a))
	})
	t.Run("touching edge counts", func(t *testing.T) {
		b := domain.BoundingBox{North: 30, South: 30, West: 30, East: 60}
		assert.True(t, BoxesIntersect(a, b))
	})
	t.Run("separated east-west", func(t *testing.T) {
		b := domain.BoundingBox{North: 30, South: 0, West: 31, East: 60}
		assert.False(t, BoxesIntersect(a, b))
	})
	t.Run("separated north-south", func(t *testing.T) {
		b := domain.BoundingBox{North: -5, South: -30, West: 0, East: 30}
		assert.False(t, BoxesIntersect(a, b))
	})
	t.Run("containment", func(t *testing.T) {
		b := domain.BoundingBox{North: 20, South: 10, West: 10, East: 20}
		assert.True(t, BoxesIntersect(a, b))
	})
}

// =============================================================================
// Feature Filtering
// =============================================================================

func TestFilterByBounds(t *testing.T) {
	features := []domain.Feature{
		{Name: "Tycho", Latitude: -43.31, Longitude: -11.36},
		{Name: "Copernicus", Latitude: 9.62, Longitude: -20.08},
		{Name: "Lick", Latitude: 12.4, Longitude: 52.7},
	}

	t.Run("stable order preserved", func(t *testing.T) {
		box := domain.BoundingBox{North: 90, South: -90, West: -180, East: 180}
		got := FilterByBounds(features, box)
		assert.Equal(t, features, got)
	})

	t.Run("restricts to box", func(t *testing.T) {
		box := domain.BoundingBox{North: 20, South: 0, West: -30, East: 60}
		got := FilterByBounds(features, box)
		assert.Len(t, got, 2)
		assert.Equal(t, "Copernicus", got[0].Name)
		assert.Equal(t, "Lick", got[1].Name)
	})

	t.Run("empty result", func(t *testing.T) {
		box := domain.BoundingBox{North: -80, South: -90, West: 0, East: 10}
		assert.Empty(t, FilterByBounds(features, box))
	})
}

func TestRegionsOverlapping(t *testing.T) {
	regions := []domain.Region{
		{Name: "Mare Imbrium", Bounds: domain.BoundingBox{North: 45, South: 20, West: -40, East: 0}},
		{Name: "Mare Tranquillitatis", Bounds: domain.BoundingBox{North: 20, South: 0, West: 15, East: 45}},
	}
	sel := domain.BoundingBox{North: 25, South: 15, West: -10, East: 20}

	got := RegionsOverlapping(regions, sel)
	assert.Len(t, got, 2)
	assert.Equal(t, "Mare Imbrium", got[0].Name)
}
