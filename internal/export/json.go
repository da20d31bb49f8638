package export

import (
	"encoding/json"
	"io"
)

type jsonReport struct {
	Total   int           `json:"total"`
	Periods []jsonSection `json:"periods"`
}

type jsonSection struct {
	Label   string    `json:"label"`
	SortKey int       `json:"sortKey"`
	Courses []jsonRow `json:"courses"`
}

type jsonRow struct {
	ID         int    `json:"id"`
	Code       string `json:"code,omitempty"`
	Title      string `json:"title,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Term       string `json:"term,omitempty"`
	Year       string `json:"year,omitempty"`
}

func WriteJSON(w io.Writer, r Report) error {
	out := jsonReport{Total: r.Total, Periods: make([]jsonSection, 0, len(r.Sections))}
	for _, s := range r.Sections {
		js := jsonSection{Label: s.Label, SortKey: s.SortKey, Courses: make([]jsonRow, 0, len(s.Courses))}
		for _, c := range s.Courses {
			js.Courses = append(js.Courses, jsonRow(c))
		}
		out.Periods = append(out.Periods, js)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
