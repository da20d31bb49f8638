package export

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"course-terms/internal/terms"
)

// Report is a grouping rendered for output: sections ordered most recent first.
type Report struct {
	Sections []Section
	Total    int
}

type Section struct {
	Label   string
	SortKey int
	Courses []Row
}

// Row is one course line of a section.
type Row struct {
	ID         int
	Code       string
	Title      string
	Instructor string
	Term       string
	Year       string
}

type Options struct {
	// PersianDigits renders section labels with Persian digits.
	PersianDigits bool
}

// BuildReport orders the groups by recency and flattens them into sections.
func BuildReport(g terms.Groups, opts Options) Report {
	keys := g.ByRecency()
	lookup := terms.FirstSortKey(g)

	r := Report{Sections: make([]Section, 0, len(keys))}
	for _, key := range keys {
		entries := g.Get(key)

		label := key
		if opts.PersianDigits {
			label = terms.LocalizeDigits(label)
		}

		sec := Section{
			Label:   norm.NFC.String(label),
			SortKey: lookup(key),
			Courses: make([]Row, 0, len(entries)),
		}
		for _, e := range entries {
			sec.Courses = append(sec.Courses, toRow(e))
		}
		r.Sections = append(r.Sections, sec)
		r.Total += len(entries)
	}
	return r
}

func toRow(e terms.Entry) Row {
	c := e.Course

	term, _ := c.Term.Value()
	year := ""
	if y, ok := c.Year.Value(); ok {
		year = strconv.Itoa(y)
	}

	return Row{
		ID:         c.ID,
		Code:       cleanText(c.Code),
		Title:      cleanText(c.Title),
		Instructor: cleanText(c.Instructor),
		Term:       cleanText(term),
		Year:       year,
	}
}

// cleanText NFC-normalizes s and folds newlines and runs of spaces into one space.
func cleanText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
