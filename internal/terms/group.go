package terms

import (
	"cmp"
	"slices"
	"strconv"

	"course-terms/internal/domain"
)

// DefaultYear is the year used in term/year keys when a course has none.
const DefaultYear = 1400

// Entry is a course together with the period it was grouped under.
type Entry struct {
	Course domain.CourseRecord
	Period Period
}

// Groups maps a label to its courses in encounter order. Keys remember
// the order they were first seen in, which keeps recency ties stable.
type Groups struct {
	keys    []string
	members map[string][]Entry
}

func (g *Groups) add(key string, e Entry) {
	if g.members == nil {
		g.members = make(map[string][]Entry)
	}
	if _, ok := g.members[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.members[key] = append(g.members[key], e)
}

// Keys returns the group keys in first-seen order.
func (g Groups) Keys() []string {
	return slices.Clone(g.keys)
}

// Get returns the entries stored under key.
func (g Groups) Get(key string) []Entry {
	return g.members[key]
}

// Len is the number of groups.
func (g Groups) Len() int {
	return len(g.keys)
}

// Total is the number of entries across all groups.
func (g Groups) Total() int {
	n := 0
	for _, es := range g.members {
		n += len(es)
	}
	return n
}

// Map returns a copy of the groups as a plain map.
func (g Groups) Map() map[string][]Entry {
	out := make(map[string][]Entry, len(g.members))
	for k, es := range g.members {
		out[k] = slices.Clone(es)
	}
	return out
}

// ByRecency returns the keys ordered from most to least recent.
func (g Groups) ByRecency() []string {
	return OrderByRecency(g.keys, FirstSortKey(g))
}

// GroupByPeriod groups courses under the display label of their normalized term.
func GroupByPeriod(courses []domain.CourseRecord) Groups {
	var g Groups
	for _, c := range courses {
		p := Normalize(c.Term)
		g.add(p.DisplayLabel, Entry{Course: c, Period: p})
	}
	return g
}

// GroupByTermYear groups courses under "<term> <year>" taken verbatim from
// the record, with UnknownLabel and DefaultYear standing in for missing
// values. A year of 0 counts as missing. Entry periods are resolved with
// the year shown in the key.
func GroupByTermYear(courses []domain.CourseRecord) Groups {
	var g Groups
	for _, c := range courses {
		term := UnknownLabel
		if c.Term.Present() {
			term, _ = c.Term.Value()
		}
		year := c.Year.OrDefault(0)
		if year == 0 {
			year = DefaultYear
		}

		key := term + " " + strconv.Itoa(year)

		// resolve with the year the key shows so key and sort key agree
		resolved := c
		resolved.Year = domain.Year(year)
		g.add(key, Entry{Course: c, Period: PeriodOf(resolved)})
	}
	return g
}

// FirstSortKey looks up the sort key of the first entry of a group, or 0
// for a missing or empty group.
func FirstSortKey(g Groups) func(key string) int {
	return func(key string) int {
		es := g.members[key]
		if len(es) == 0 {
			return 0
		}
		return es[0].Period.SortKey
	}
}

// OrderByRecency sorts keys by descending sort key. The sort is stable, so
// equal keys keep their input order.
func OrderByRecency(keys []string, sortKey func(key string) int) []string {
	scores := make(map[string]int, len(keys))
	for _, k := range keys {
		scores[k] = sortKey(k)
	}

	out := slices.Clone(keys)
	if out == nil {
		out = []string{}
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return out
}

// FilterByMinimumYear keeps courses whose Year is at least minYear. Courses
// without a year count as year 0.
func FilterByMinimumYear(courses []domain.CourseRecord, minYear int) []domain.CourseRecord {
	out := make([]domain.CourseRecord, 0, len(courses))
	for _, c := range courses {
		if c.Year.OrDefault(0) >= minYear {
			out = append(out, c)
		}
	}
	return out
}
