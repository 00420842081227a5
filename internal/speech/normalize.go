package speech

import (
	"regexp"
	"strings"
)

// Inclusive-language forms common in Spanish teaching material read
// terribly through a synthesizer ("ele arroba ese"). Normalize rewrites
// them to the plain masculine plural before synthesis. Display text is
// never touched.

var (
	atFormPattern = regexp.MustCompile(`(?i)\b(l@s|los/las|las/los|el/la|la/el|un@|uno/una|una/uno|una/un|niñ@s|tod@s|alumn@s)\b`)
	xFormPattern  = regexp.MustCompile(`(?i)\b([a-záéíóúñ]+)x(es|as|os)?\b`)
	eFormPattern  = regexp.MustCompile(`(?i)\b(todes|niñes|alumnes|compañeres)\b`)

	pairPatterns = []struct {
		re          *regexp.Regexp
		replacement string
	}{
		{regexp.MustCompile(`(?i)\b(él o ella|ella o él)\b`), "él"},
		{regexp.MustCompile(`(?i)\b(nosotros y nosotras|nosotras y nosotros)\b`), "nosotros"},
		{regexp.MustCompile(`(?i)\b(ellos y ellas|ellas y ellos)\b`), "ellos"},
	}

	spacePattern = regexp.MustCompile(`\s+`)
)

var atFormReplacements = map[string]string{
	"l@s":     "los",
	"los/las": "los",
	"las/los": "los",
	"el/la":   "el",
	"la/el":   "el",
	"un@":     "un",
	"uno/una": "un",
	"una/uno": "un",
	"una/un":  "un",
	"niñ@s":   "niños",
	"tod@s":   "todos",
	"alumn@s": "alumnos",
}

var eFormReplacements = map[string]string{
	"todes":      "todos",
	"niñes":      "niños",
	"alumnes":    "alumnos",
	"compañeres": "compañeros",
}

// Normalize rewrites gender-inclusive forms for synthesis and collapses
// whitespace runs.
func Normalize(text string) string {
	out := atFormPattern.ReplaceAllStringFunc(text, func(match string) string {
		if r, ok := atFormReplacements[strings.ToLower(match)]; ok {
			return r
		}
		return strings.ReplaceAll(match, "@", "o")
	})

	out = xFormPattern.ReplaceAllString(out, "${1}os")

	out = eFormPattern.ReplaceAllStringFunc(out, func(match string) string {
		if r, ok := eFormReplacements[strings.ToLower(match)]; ok {
			return r
		}
		return match
	})

	for _, p := range pairPatterns {
		out = p.re.ReplaceAllString(out, p.replacement)
	}

	return strings.TrimSpace(spacePattern.ReplaceAllString(out, " "))
}
