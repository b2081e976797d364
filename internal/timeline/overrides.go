package timeline

import "atlas/internal/domain"

// Tier 1: hand-curated timelines for well-studied features. These reflect
// published absolute ages (sample-calibrated where available) and take
// precedence over every inferred result.

const curatedSource = "curated chronology"

var overrides = map[string][]domain.TimelineEvent{
	"moon/tycho": {
		{Phase: "Impact formation", Years: 1.08e8, Source: curatedSource,
			Description: "An asteroid impact excavated the 85 km crater, dated from Apollo 17 ejecta samples."},
		{Phase: "Ray system emplacement", Years: 1.08e8, Source: curatedSource,
			Description: "Bright ejecta rays spread more than 1,500 km across the nearside."},
		{Phase: "Central peak cooling", Years: 1.0e8, Source: curatedSource,
			Description: "Impact melt on the floor and central peak solidified."},
		{Phase: "Current state", Years: 0, Source: curatedSource,
			Description: "One of the youngest large lunar craters, with rays still prominent at full moon."},
	},
	"moon/mare imbrium": {
		{Phase: "Basin-forming impact", Years: 3.938e9, Source: curatedSource,
			Description: "A protoplanet-scale impactor excavated the 1,145 km Imbrium basin."},
		{Phase: "Main basalt flooding", Years: 3.7e9, Source: curatedSource,
			Description: "Voluminous basalts flooded the basin floor over hundreds of millions of years."},
		{Phase: "Late-stage flows", Years: 2.5e9, Source: curatedSource,
			Description: "The youngest lava flows, still visible as flow fronts, resurfaced the western mare."},
		{Phase: "Current state", Years: 0, Source: curatedSource,
			Description: "The mare surface is volcanically dead, accumulating only regolith."},
	},
	"mars/olympus mons": {
		{Phase: "Edifice construction begins", Years: 3.7e9, Source: curatedSource,
			Description: "Sustained plume volcanism over a stationary crust began stacking flows."},
		{Phase: "Main shield building", Years: 3.0e9, Source: curatedSource,
			Description: "Repeated effusive eruptions built the bulk of the 21 km high shield."},
		{Phase: "Youngest caldera collapse", Years: 1.4e8, Source: curatedSource,
			Description: "The most recent of the nested summit calderas formed."},
		{Phase: "Youngest flank flows", Years: 2.0e6, Source: curatedSource,
			Description: "Crater counts date the freshest flank lava flows to only a few million years."},
		{Phase: "Current state", Years: 0, Source: curatedSource,
			Description: "Dormant, and possibly not extinct, with the youngest volcanic surfaces on Mars."},
	},
}
