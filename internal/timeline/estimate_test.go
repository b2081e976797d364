package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/catalog"
	"atlas/internal/domain"
)

func body(t *testing.T, name string) catalog.Body {
	t.Helper()
	b, ok := catalog.Lookup(name)
	require.True(t, ok)
	return b
}

// =============================================================================
// Crater Buckets
// =============================================================================

func TestEstimateCrater(t *testing.T) {
	mars := body(t, "Mars")

	t.Run("giant crater gets the ancient age", func(t *testing.T) {
		f := domain.Feature{Name: "Huygens", Type: "Crater, craters", DiameterKm: domain.Km(120)}
		events := estimate(mars, f)

		require.NotEmpty(t, events)
		assert.Equal(t, "Impact formation", events[0].Phase)
		assert.Equal(t, 4.0e9, events[0].Years)
		assert.Contains(t, events[0].Source, "high confidence")
	})

	t.Run("small crater is recent", func(t *testing.T) {
		f := domain.Feature{Name: "Zunil", Type: "Crater, craters", DiameterKm: domain.Km(2)}
		events := estimate(mars, f)
		assert.Equal(t, 5.0e8, events[0].Years)
	})

	t.Run("unknown diameter falls back to the default age", func(t *testing.T) {
		f := domain.Feature{Name: "Unnamed", Type: "Crater, craters"}
		events := estimate(mars, f)
		assert.Equal(t, 3.5e9, events[0].Years)
		assert.Contains(t, events[0].Source, "low confidence")
	})

	t.Run("old craters gain an erosion phase", func(t *testing.T) {
		f := domain.Feature{Name: "Huygens", Type: "Crater, craters", DiameterKm: domain.Km(450)}
		events := estimate(mars, f)

		phases := make([]string, 0, len(events))
		for _, ev := range events {
			phases = append(phases, ev.Phase)
		}
		assert.Contains(t, phases, "Erosion and infill")
	})

	t.Run("fresh craters do not", func(t *testing.T) {
		f := domain.Feature{Name: "Zunil", Type: "Crater, craters", DiameterKm: domain.Km(2)}
		for _, ev := range estimate(mars, f) {
			assert.NotEqual(t, "Erosion and infill", ev.Phase)
		}
	})
}

// =============================================================================
// Other Families
// =============================================================================

func TestEstimateFamilies(t *testing.T) {
	moon := body(t, "Moon")
	mars := body(t, "Mars")

	t.Run("large shield volcano", func(t *testing.T) {
		f := domain.Feature{Name: "Elysium Mons", Type: "Mons, montes", DiameterKm: domain.Km(400)}
		events := estimate(mars, f)

		require.Len(t, events, 4)
		assert.Equal(t, "Volcanic province formation", events[0].Phase)
		assert.Equal(t, mars.Chronology.Mature, events[0].Years)
		assert.Equal(t, "Late-stage activity", events[2].Phase)
		assert.Equal(t, mars.Chronology.Recent/2, events[2].Years)
	})

	t.Run("mare uses shared basin ages", func(t *testing.T) {
		f := domain.Feature{Name: "Mare Serenitatis", Type: "Mare, maria"}
		events := estimate(moon, f)

		require.Len(t, events, 4)
		assert.Equal(t, 3.9e9, events[0].Years)
		assert.Equal(t, "Lava flooding", events[1].Phase)
	})

	t.Run("channel has three phases plus current state", func(t *testing.T) {
		f := domain.Feature{Name: "Vallis Schroteri", Type: "Vallis, valles"}
		events := estimate(moon, f)
		require.Len(t, events, 4)
		assert.Equal(t, "Fluid-flow carving", events[1].Phase)
	})

	t.Run("unrecognized type still yields a timeline", func(t *testing.T) {
		f := domain.Feature{Name: "Reiner Gamma", Type: "Albedo feature"}
		events := estimate(moon, f)

		require.Len(t, events, 2)
		assert.Equal(t, moon.Chronology.Default, events[0].Years)
		assert.Contains(t, events[0].Source, "low confidence")
	})
}

func TestEstimateInvariants(t *testing.T) {
	moon := body(t, "Moon")
	features := []domain.Feature{
		{Name: "Tycho", Type: "Crater, craters", DiameterKm: domain.Km(85)},
		{Name: "Mons Huygens", Type: "Mons, montes", DiameterKm: domain.Km(42)},
		{Name: "Mare Crisium", Type: "Mare, maria"},
		{Name: "Vallis Alpes", Type: "Vallis, valles"},
		{Name: "Oceanus Procellarum", Type: "Oceanus, oceani"},
		{Name: "Planitia Descensus", Type: "Planitia, planitiae"},
		{Name: "Reiner Gamma", Type: "Albedo feature"},
	}

	for _, f := range features {
		t.Run(f.Name, func(t *testing.T) {
			events := estimate(moon, f)
			require.NotEmpty(t, events)

			last := events[len(events)-1]
			assert.Equal(t, "Current state", last.Phase)
			assert.Zero(t, last.Years)

			for i := 1; i < len(events); i++ {
				assert.GreaterOrEqual(t, events[i-1].Years, events[i].Years,
					"events must run oldest to newest")
			}
			for _, ev := range events {
				assert.GreaterOrEqual(t, ev.Years, 0.0)
				assert.NotEmpty(t, ev.Source)
				assert.NotEmpty(t, ev.Description)
			}
		})
	}
}
