package knowledge

import (
	"regexp"
	"strings"
)

// Infobox parsing works on raw wikitext. It only needs the flat key/value
// pairs, so nested templates inside values are stripped rather than parsed.

var (
	refMarkup     = regexp.MustCompile(`(?s)<ref[^>]*?/>|<ref.*?</ref>`)
	commentMarkup = regexp.MustCompile(`(?s)<!--.*?-->`)
	linkMarkup    = regexp.MustCompile(`\[\[(?:[^|\]]*\|)?([^\]]*)\]\]`)
	tmplMarkup    = regexp.MustCompile(`\{\{[^{}]*\}\}`)
)

// ParseInfobox extracts the first "{{Infobox ...}}" block from wikitext and
// returns its parameters with lower-cased, underscore-normalized keys. An
// absent or unparseable infobox yields an empty map, never an error.
func ParseInfobox(wikitext string) map[string]string {
	attrs := make(map[string]string)

	start := strings.Index(wikitext, "{{Infobox")
	if start < 0 {
		start = strings.Index(wikitext, "{{infobox")
	}
	if start < 0 {
		return attrs
	}

	block := balancedBlock(wikitext[start:])
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		key, value, found := strings.Cut(line[1:], "=")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		key = strings.ReplaceAll(key, " ", "_")
		value = cleanValue(value)
		if key != "" && value != "" {
			attrs[key] = value
		}
	}
	return attrs
}

// balancedBlock returns the text up to the brace closing the opening "{{".
func balancedBlock(s string) string {
	depth := 0
	for i := 0; i < len(s)-1; i++ {
		switch {
		case s[i] == '{' && s[i+1] == '{':
			depth++
			i++
		case s[i] == '}' && s[i+1] == '}':
			depth--
			i++
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return s
}

func cleanValue(v string) string {
	v = commentMarkup.ReplaceAllString(v, "")
	v = refMarkup.ReplaceAllString(v, "")
	v = linkMarkup.ReplaceAllString(v, "$1")
	// Two passes remove one level of template nesting, enough in practice.
	v = tmplMarkup.ReplaceAllString(v, "")
	v = tmplMarkup.ReplaceAllString(v, "")
	return strings.TrimSpace(v)
}
