package terms

import (
	"strings"

	"course-terms/internal/domain"
)

// Term codes stored by the courses backend. Years stored next to them are
// already Persian.
var seasonCodes = map[string]string{
	"fall":   SeasonFall,
	"winter": SeasonWinter,
	"spring": SeasonSpring,
	"summer": SeasonSummer,
}

// SeasonForCode maps a backend term code ("fall") to its label. Unknown
// codes are returned unchanged.
func SeasonForCode(code string) string {
	if label, ok := seasonCodes[strings.ToLower(strings.TrimSpace(code))]; ok {
		return label
	}
	return code
}

// PeriodOf resolves the period of a course from both of its fields.
//
// A term like "Fall 2024" wins. Otherwise a backend code ("fall") paired
// with a Year is read as that season of that Persian year.
func PeriodOf(c domain.CourseRecord) Period {
	p := Normalize(c.Term)
	if p.State == YearKnown {
		return p
	}

	text, ok := c.Term.Value()
	if !ok {
		return p
	}
	label, isCode := seasonCodes[strings.ToLower(strings.TrimSpace(text))]
	year, hasYear := c.Year.Value()
	if isCode && hasYear {
		return newPeriod(label, year)
	}
	return p
}
