package knowledge

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date extraction is heuristic by nature, so the patterns live in rule tables
// that can grow without touching the control flow around them.

// Rule names one text pattern. The pattern must capture the magnitude in
// group 1 and the unit word in group 2.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

var formationRules = []Rule{
	{Name: "formed-ago", Pattern: regexp.MustCompile(`(?i)formed[^.]{0,120}?(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+years\s+ago`)},
	{Name: "created-ago", Pattern: regexp.MustCompile(`(?i)(?:created|excavated|originated|emplaced)[^.]{0,120}?(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+years\s+ago`)},
	{Name: "impact-ago", Pattern: regexp.MustCompile(`(?i)impact[^.]{0,120}?(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+years\s+ago`)},
	{Name: "years-old", Pattern: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+years\s+old`)},
}

var activityRules = []Rule{
	{Name: "last-eruption-ago", Pattern: regexp.MustCompile(`(?i)last\s+erupt\w*[^.]{0,120}?(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+years\s+ago`)},
	{Name: "eruption-ago", Pattern: regexp.MustCompile(`(?i)erupt\w*[^.]{0,120}?(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+years\s+ago`)},
	{Name: "activity-ceased", Pattern: regexp.MustCompile(`(?i)(?:volcanism|volcanic\s+activity)[^.]{0,120}?(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+years\s+ago`)},
	{Name: "active-until", Pattern: regexp.MustCompile(`(?i)active\s+until[^.]{0,120}?(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+years\s+ago`)},
}

var ageExpr = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(billion|million|thousand|gyr|ga|myr|ma|kyr|ka)\b`)

var calendarYear = regexp.MustCompile(`(?i)\b(\d{1,4})\s*(BCE?|CE|AD)?\b`)

func unitFactor(unit string) float64 {
	switch strings.ToLower(unit) {
	case "billion", "ga", "gyr":
		return 1e9
	case "million", "ma", "myr":
		return 1e6
	case "thousand", "ka", "kyr":
		return 1e3
	}
	return 0
}

// parseAgeExpr reads a "<number> <unit>" phrase like "108 million years" or
// "3.85 Ga" into absolute years before present.
func parseAgeExpr(s string) (float64, bool) {
	m := ageExpr.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, ok := parseNumber(m[1])
	if !ok {
		return 0, false
	}
	factor := unitFactor(m[2])
	if factor == 0 {
		return 0, false
	}
	return n * factor, true
}

// parseCalendarYear turns "1350 BC" or "79 AD" style values into years before
// present. Plain years with no era marker are read as CE.
func parseCalendarYear(s string) (float64, bool) {
	m := calendarYear.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	year, ok := parseNumber(m[1])
	if !ok {
		return 0, false
	}
	now := float64(time.Now().Year())
	era := strings.ToUpper(m[2])
	if era == "BC" || era == "BCE" {
		return now + year, true
	}
	if year > now {
		return 0, false
	}
	return now - year, true
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormationAge derives the formation age from a page: an explicit infobox
// attribute first, then the text rule table. The evidence label tells callers
// which source answered.
func FormationAge(p Page) (years float64, evidence string, ok bool) {
	for _, key := range []string{"age", "formed", "formation_age"} {
		if raw, exists := p.Infobox[key]; exists {
			if y, ok := parseAgeExpr(raw); ok {
				return y, "infobox " + key, true
			}
		}
	}
	text := p.FullText
	if text == "" {
		text = p.Intro
	}
	for _, r := range formationRules {
		if m := r.Pattern.FindStringSubmatch(text); m != nil {
			n, nok := parseNumber(m[1])
			if !nok {
				continue
			}
			return n * unitFactor(m[2]), "text " + r.Name, true
		}
	}
	return 0, "", false
}

// LastActivityAge derives the most recent major activity. Infobox "last
// eruption" values win; otherwise every activity pattern match is collected,
// normalized to absolute years (matches may mix units, so comparison happens
// after normalization), and the smallest (most recent) wins.
func LastActivityAge(p Page) (years float64, evidence string, ok bool) {
	for _, key := range []string{"last_eruption", "last_activity"} {
		raw, exists := p.Infobox[key]
		if !exists {
			continue
		}
		if y, ok := parseAgeExpr(raw); ok {
			return y, "infobox " + key, true
		}
		if y, ok := parseCalendarYear(raw); ok {
			return y, "infobox " + key, true
		}
	}

	text := p.FullText
	if text == "" {
		text = p.Intro
	}
	best := 0.0
	bestRule := ""
	found := false
	for _, r := range activityRules {
		for _, m := range r.Pattern.FindAllStringSubmatch(text, -1) {
			n, nok := parseNumber(m[1])
			if !nok {
				continue
			}
			y := n * unitFactor(m[2])
			if !found || y < best {
				best = y
				bestRule = r.Name
				found = true
			}
		}
	}
	if !found {
		return 0, "", false
	}
	return best, "text " + bestRule, true
}

// MentionsVolcanism reports whether the page discusses volcanic processes at
// all, used to justify a synthesized activity estimate when no dated phrase
// matched.
func MentionsVolcanism(p Page) bool {
	text := strings.ToLower(p.FullText + " " + p.Intro)
	return strings.Contains(text, "volcan") ||
		strings.Contains(text, "erupt") ||
		strings.Contains(text, "lava")
}

// IntroSummary returns the page's first two sentences for current-state
// descriptions.
func IntroSummary(p Page) string {
	intro := strings.TrimSpace(p.Intro)
	if intro == "" {
		return ""
	}
	count := 0
	for i := 0; i < len(intro)-1; i++ {
		if intro[i] == '.' && (intro[i+1] == ' ' || intro[i+1] == '\n') {
			count++
			if count == 2 {
				return intro[:i+1]
			}
		}
	}
	return intro
}
