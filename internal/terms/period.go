// Package terms turns free-text course terms ("Fall 2024") into canonical
// Persian-calendar periods and groups courses by them, most recent first.
//
// Everything here is pure: no I/O, no shared mutable state, and no errors.
// Bad input degrades to the unknown period instead of failing.
package terms

import (
	"strconv"
	"strings"
	"unicode"

	"course-terms/internal/domain"
)

// UnknownLabel is the season, year and display label of the unknown period.
const UnknownLabel = "نامشخص"

// Canonical season labels.
const (
	SeasonFall   = "پاییز"
	SeasonWinter = "زمستان"
	SeasonSummer = "تابستان"
	SeasonSpring = "بهار"
)

// yearOffset approximates Gregorian -> Persian. It is off by one for dates
// before Nowruz and must stay a plain subtraction.
const yearOffset = 621

// maxYear bounds parsed years so year*10 cannot overflow.
const maxYear = 1_000_000_000

var seasonNames = map[string]string{
	"Fall":   SeasonFall,
	"Spring": SeasonSpring,
	"Summer": SeasonSummer,
	"Winter": SeasonWinter,
	"Autumn": SeasonFall,
}

// Fall is the most recent season of an academic year, Spring the oldest.
var seasonWeights = map[string]int{
	SeasonFall:   4,
	SeasonWinter: 3,
	SeasonSummer: 2,
	SeasonSpring: 1,
}

// YearState tells whether Period.Year holds a real value.
type YearState int

const (
	YearUnknown YearState = iota
	YearKnown
	// YearNaN marks a term whose year text did not parse.
	YearNaN
)

// Period is a canonical (season, year) pair ready for grouping and sorting.
type Period struct {
	Season       string
	Year         int
	State        YearState
	DisplayLabel string
	SortKey      int
}

// Unknown returns the period used for missing or invalid terms.
func Unknown() Period {
	return Period{
		Season:       UnknownLabel,
		State:        YearUnknown,
		DisplayLabel: UnknownLabel,
		SortKey:      0,
	}
}

// IsUnknown reports whether p is the unknown period.
func (p Period) IsUnknown() bool {
	return p.State == YearUnknown
}

// YearLabel renders the year the way DisplayLabel does.
func (p Period) YearLabel() string {
	switch p.State {
	case YearKnown:
		return strconv.Itoa(p.Year)
	case YearNaN:
		return "NaN"
	default:
		return UnknownLabel
	}
}

// LocalizedLabel is DisplayLabel with Persian digits.
func (p Period) LocalizedLabel() string {
	return LocalizeDigits(p.DisplayLabel)
}

// Normalize converts a raw term into its canonical period.
func Normalize(raw domain.RawTerm) Period {
	text, ok := raw.Value()
	if !ok {
		return Unknown()
	}
	return NormalizeString(text)
}

// NormalizeString converts a term label such as "Fall 2024" into a period.
//
// Unrecognized season words pass through as the season label. A year that
// does not parse yields a YearNaN period whose label ends in "NaN" and whose
// sort key is 0.
func NormalizeString(term string) Period {
	if term == "" {
		return Unknown()
	}

	seasonWord, yearWord := splitTerm(term)

	season, ok := seasonNames[seasonWord]
	if !ok {
		season = seasonWord
	}

	gregorian, ok := parseYear(yearWord)
	if !ok {
		return Period{
			Season:       season,
			State:        YearNaN,
			DisplayLabel: season + " NaN",
		}
	}

	return newPeriod(season, gregorian-yearOffset)
}

// SortKeyOf scores a (season, year) pair; higher is more recent.
func SortKeyOf(season string, year int) int {
	return year*10 + seasonWeights[season]
}

func newPeriod(season string, year int) Period {
	return Period{
		Season:       season,
		Year:         year,
		State:        YearKnown,
		DisplayLabel: season + " " + strconv.Itoa(year),
		SortKey:      SortKeyOf(season, year),
	}
}

// splitTerm splits on the first whitespace run.
func splitTerm(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

// parseYear reads an optional sign and the leading decimal digits of s,
// ignoring whatever follows ("2024-25" -> 2024).
func parseYear(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n >= maxYear || n <= -maxYear {
		return 0, false
	}
	return n, true
}
