package timeline

import (
	"fmt"
	"strings"

	"atlas/internal/catalog"
	"atlas/internal/domain"
)

// The estimation model is deterministic, feature-type and body specific, and
// always succeeds. It is the terminal fallback of the inference cascade.

// Confidence qualifies how directly a feature's type and diameter mapped to
// an age. It is folded into the event source label for display.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

func modelSource(c Confidence) string {
	return fmt.Sprintf("geological model (%s confidence)", c)
}

type featureClass int

const (
	classUnknown featureClass = iota
	classCrater
	classVolcano
	classChannel
	classMare
	classPlain
)

// classify routes a free-form feature type string to an estimation family.
func classify(featureType string) featureClass {
	t := strings.ToLower(featureType)
	switch {
	case strings.Contains(t, "crater"):
		return classCrater
	case strings.Contains(t, "mons"), strings.Contains(t, "montes"),
		strings.Contains(t, "tholus"), strings.Contains(t, "patera"),
		strings.Contains(t, "volcan"):
		return classVolcano
	case strings.Contains(t, "vallis"), strings.Contains(t, "valles"),
		strings.Contains(t, "channel"), strings.Contains(t, "valley"):
		return classChannel
	case strings.Contains(t, "mare"), strings.Contains(t, "maria"),
		strings.Contains(t, "oceanus"), strings.Contains(t, "lacus"):
		return classMare
	case strings.Contains(t, "planitia"), strings.Contains(t, "planum"),
		strings.Contains(t, "plain"), strings.Contains(t, "plateau"):
		return classPlain
	}
	return classUnknown
}

// formationEstimate returns the modeled formation age for a feature. It backs
// both tier 3 and the tier-2 fallback when a knowledge-base page carries no
// usable formation evidence.
func formationEstimate(b catalog.Body, f domain.Feature) (float64, Confidence) {
	chron := b.Chronology
	d, known := f.Diameter()

	switch classify(f.Type) {
	case classCrater:
		if !known {
			return chron.Default, ConfidenceLow
		}
		switch {
		case d > 100:
			// Craters this large survive only from the earliest bombardment.
			return chron.Ancient, ConfidenceHigh
		case d >= 20:
			return chron.Mature, ConfidenceMedium
		case d >= 5:
			return chron.Young, ConfidenceMedium
		default:
			return chron.Recent, ConfidenceMedium
		}
	case classVolcano:
		form, _, _, conf := volcanoTriplet(chron, f)
		return form, conf
	case classChannel:
		return chron.Ancient, ConfidenceMedium
	case classMare:
		return mareBasinAge, ConfidenceHigh
	case classPlain:
		return chron.Mature, ConfidenceMedium
	}
	return chron.Default, ConfidenceLow
}

// Fixed mare narrative ages (years before present). The maria record one
// shared basin-flooding history, so these are body-independent constants.
const (
	mareBasinAge     = 3.9e9
	mareFloodAge     = 3.6e9
	mareCessationAge = 3.0e9
	erosionThreshold = 3.0e9
)

// volcanoTriplet buckets a volcanic edifice by diameter into formation,
// peak-activity, and late-activity ages.
func volcanoTriplet(chron catalog.Chronology, f domain.Feature) (formation, peak, late float64, conf Confidence) {
	d, known := f.Diameter()
	if !known {
		return chron.Mature, chron.Young, chron.Recent, ConfidenceLow
	}
	switch {
	case d >= 300:
		// Province-scale shields build for most of the body's history.
		return chron.Mature, chron.Young, chron.Recent / 2, ConfidenceHigh
	case d >= 100:
		return chron.Mature, chron.Young, chron.Recent, ConfidenceMedium
	default:
		return chron.Mature * 0.9, chron.Young * 0.8, chron.Recent * 1.5, ConfidenceMedium
	}
}

// estimate produces the full tier-3 timeline for a feature. At minimum it
// emits a formation event and a current-state event.
func estimate(b catalog.Body, f domain.Feature) []domain.TimelineEvent {
	chron := b.Chronology

	switch classify(f.Type) {
	case classCrater:
		return estimateCrater(b, f)

	case classVolcano:
		formation, peak, late, conf := volcanoTriplet(chron, f)
		src := modelSource(conf)
		return []domain.TimelineEvent{
			{Phase: "Volcanic province formation", Years: formation, Source: src,
				Description: fmt.Sprintf("Regional uplift and early effusive volcanism on %s established the province.", b.Name)},
			{Phase: "Main shield building", Years: peak, Source: src,
				Description: "Sustained eruptions built the bulk of the edifice."},
			{Phase: "Late-stage activity", Years: late, Source: src,
				Description: "Waning, episodic eruptions resurfaced flanks and summit."},
			currentState(f, src),
		}

	case classChannel:
		src := modelSource(ConfidenceMedium)
		return []domain.TimelineEvent{
			{Phase: "Tectonic initiation", Years: chron.Ancient, Source: src,
				Description: "Faulting and subsidence opened the initial depression."},
			{Phase: "Fluid-flow carving", Years: chron.Mature, Source: src,
				Description: "Sustained flow incised and widened the channel system."},
			{Phase: "Desiccation", Years: chron.Young, Source: src,
				Description: "Flow ceased and the channel floor dried and stabilized."},
			currentState(f, src),
		}

	case classMare:
		src := modelSource(ConfidenceHigh)
		return []domain.TimelineEvent{
			{Phase: "Basin-forming impact", Years: mareBasinAge, Source: src,
				Description: "A giant impact excavated the basin during heavy bombardment."},
			{Phase: "Lava flooding", Years: mareFloodAge, Source: src,
				Description: "Basaltic lavas flooded the basin floor in repeated flows."},
			{Phase: "Volcanic cessation", Years: mareCessationAge, Source: src,
				Description: "Eruptions waned and the surface solidified into the dark plain seen today."},
			currentState(f, src),
		}

	case classPlain:
		src := modelSource(ConfidenceMedium)
		return []domain.TimelineEvent{
			{Phase: "Surface formation", Years: chron.Mature, Source: src,
				Description: "Volcanic or sedimentary resurfacing laid down the plain."},
			{Phase: "Erosional modification", Years: chron.Young, Source: src,
				Description: "Impact gardening and aeolian processes reworked the surface."},
			currentState(f, src),
		}
	}

	src := modelSource(ConfidenceLow)
	return []domain.TimelineEvent{
		{Phase: "Formation", Years: chron.Default, Source: src,
			Description: fmt.Sprintf("Feature type %q has no dedicated model; a body-typical surface age applies.", f.Type)},
		currentState(f, src),
	}
}

func estimateCrater(b catalog.Body, f domain.Feature) []domain.TimelineEvent {
	age, conf := formationEstimate(b, f)
	src := modelSource(conf)

	events := []domain.TimelineEvent{
		{Phase: "Impact formation", Years: age, Source: src,
			Description: "A hypervelocity impact excavated the crater in seconds to minutes."},
		{Phase: "Wall and ejecta emplacement", Years: age, Source: src,
			Description: "Walls slumped into terraces and ejecta settled around the rim."},
	}
	if age > erosionThreshold {
		events = append(events, domain.TimelineEvent{
			Phase: "Erosion and infill", Years: age / 2, Source: modelSource(ConfidenceLow),
			Description: "Later impacts and mass wasting degraded the rim and partially filled the floor.",
		})
	}
	return append(events, currentState(f, src))
}

func currentState(f domain.Feature, source string) domain.TimelineEvent {
	return domain.TimelineEvent{
		Phase:       "Current state",
		Years:       0,
		Source:      source,
		Description: fmt.Sprintf("%s is geologically quiet today, modified only by micrometeorite gardening and thermal cycling.", f.Name),
	}
}
