package reconcile

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"atlas/internal/domain"
)

type ReconcileSuite struct {
	suite.Suite
}

func TestReconcileSuite(t *testing.T) {
	suite.Run(t, new(ReconcileSuite))
}

// =============================================================================
// Merge
// =============================================================================

func (s *ReconcileSuite) TestMerge() {
	s.Run("archive wins by exact name", func() {
		archive := []domain.Feature{{Name: "Tycho", Source: domain.SourceArchive, Type: "Crater, craters"}}
		curated := []domain.Feature{{Name: "Tycho", Source: domain.SourceCurated, Type: "crater"}}

		got := Merge(archive, curated)
		s.Require().Len(got, 1)
		s.Equal(domain.SourceArchive, got[0].Source)
		s.Equal("Crater, craters", got[0].Type)
	})

	s.Run("name matching is case-sensitive", func() {
		archive := []domain.Feature{{Name: "tycho", Source: domain.SourceArchive}}
		curated := []domain.Feature{{Name: "Tycho", Source: domain.SourceCurated}}

		got := Merge(archive, curated)
		s.Len(got, 2)
	})

	s.Run("curated fills archive gaps", func() {
		archive := []domain.Feature{{Name: "Copernicus", Source: domain.SourceArchive}}
		curated := []domain.Feature{
			{Name: "Tycho", Source: domain.SourceCurated},
			{Name: "Copernicus", Source: domain.SourceCurated},
		}

		got := Merge(archive, curated)
		s.Require().Len(got, 2)
		s.Equal("Copernicus", got[0].Name)
		s.Equal(domain.SourceArchive, got[0].Source)
		s.Equal("Tycho", got[1].Name)
		s.Equal(domain.SourceCurated, got[1].Source)
	})

	s.Run("curated-only degraded mode", func() {
		curated := []domain.Feature{
			{Name: "Mare Imbrium", Source: domain.SourceCurated},
			{Name: "Copernicus", Source: domain.SourceCurated},
		}

		got := Merge(nil, curated)
		s.Require().Len(got, 2)
		s.Equal("Copernicus", got[0].Name)
	})

	s.Run("sorted by name", func() {
		archive := []domain.Feature{
			{Name: "Vallis Schroteri", Source: domain.SourceArchive},
			{Name: "Copernicus", Source: domain.SourceArchive},
			{Name: "Mare Imbrium", Source: domain.SourceArchive},
		}

		got := Merge(archive, nil)
		s.Equal("Copernicus", got[0].Name)
		s.Equal("Mare Imbrium", got[1].Name)
		s.Equal("Vallis Schroteri", got[2].Name)
	})

	s.Run("idempotent", func() {
		archive := []domain.Feature{
			{Name: "Tycho", Source: domain.SourceArchive},
			{Name: "Copernicus", Source: domain.SourceArchive},
		}
		curated := []domain.Feature{
			{Name: "Tycho", Source: domain.SourceCurated},
			{Name: "Mare Imbrium", Source: domain.SourceCurated},
		}

		first := Merge(archive, curated)
		second := Merge(archive, curated)
		s.Equal(first, second)
	})

	s.Run("result is independently owned", func() {
		archive := []domain.Feature{{Name: "Tycho", Source: domain.SourceArchive}}
		got := Merge(archive, nil)
		got[0].WithinRegion = "mutated"
		s.Empty(archive[0].WithinRegion)
	})
}

// =============================================================================
// Region Assignment
// =============================================================================

func (s *ReconcileSuite) TestAssignRegions() {
	regionA := domain.Region{Name: "A", Bounds: domain.BoundingBox{North: 50, South: 0, West: -50, East: 50}}
	regionB := domain.Region{Name: "B", Bounds: domain.BoundingBox{North: 50, South: 0, West: -50, East: 50}}

	s.Run("first match in catalog order wins", func() {
		features := []domain.Feature{{Name: "X", Latitude: 25, Longitude: 0}}
		AssignRegions(features, []domain.Region{regionA, regionB})
		s.Equal("A", features[0].WithinRegion)
	})

	s.Run("existing assignment never overwritten", func() {
		features := []domain.Feature{{Name: "X", Latitude: 25, Longitude: 0, WithinRegion: "Curated Answer"}}
		AssignRegions(features, []domain.Region{regionA})
		s.Equal("Curated Answer", features[0].WithinRegion)
	})

	s.Run("no containing region leaves it unset", func() {
		features := []domain.Feature{{Name: "X", Latitude: -60, Longitude: 0}}
		AssignRegions(features, []domain.Region{regionA, regionB})
		s.Empty(features[0].WithinRegion)
	})

	s.Run("wrapped region boxes contain across the seam", func() {
		wrap := domain.Region{Name: "Seam", Bounds: domain.BoundingBox{North: 30, South: -30, West: 170, East: -170}}
		features := []domain.Feature{{Name: "X", Latitude: 0, Longitude: 178}}
		AssignRegions(features, []domain.Region{wrap})
		s.Equal("Seam", features[0].WithinRegion)
	})
}

// =============================================================================
// Satellite Grouping
// =============================================================================

func (s *ReconcileSuite) TestGroupSatellites() {
	s.Run("suffix features attach to parent", func() {
		features := []domain.Feature{
			{Name: "Copernicus"},
			{Name: "Copernicus A"},
			{Name: "Copernicus AB"},
			{Name: "Copernicus B"},
			{Name: "Copernicus AA"},
			{Name: "Tycho"},
		}

		groups := GroupSatellites(features)
		s.Require().Len(groups, 2)

		s.Equal("Copernicus", groups[0].Parent.Name)
		var suffixes []string
		for _, sat := range groups[0].Satellites {
			suffixes = append(suffixes, sat.Name)
		}
		s.Equal([]string{"Copernicus A", "Copernicus B", "Copernicus AA", "Copernicus AB"}, suffixes)

		s.Equal("Tycho", groups[1].Parent.Name)
		s.Empty(groups[1].Satellites)
	})

	s.Run("orphan suffix stays top-level", func() {
		features := []domain.Feature{{Name: "Copernicus A"}, {Name: "Tycho"}}
		groups := GroupSatellites(features)
		s.Require().Len(groups, 2)
		s.Equal("Copernicus A", groups[0].Parent.Name)
	})

	s.Run("lowercase or long suffixes are not satellites", func() {
		features := []domain.Feature{
			{Name: "Copernicus"},
			{Name: "Copernicus a"},
			{Name: "Copernicus ABC"},
		}
		groups := GroupSatellites(features)
		s.Len(groups, 3)
	})

	s.Run("multi-word parents group", func() {
		features := []domain.Feature{
			{Name: "Mare Imbrium"},
			{Name: "Mare Imbrium A"},
		}
		groups := GroupSatellites(features)
		s.Require().Len(groups, 1)
		s.Require().Len(groups[0].Satellites, 1)
		s.Equal("Mare Imbrium A", groups[0].Satellites[0].Name)
	})
}
