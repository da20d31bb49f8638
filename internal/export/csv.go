package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Keep header order EXACT.
var reportHeader = []string{
	"PERIOD",
	"SORT_KEY",
	"COURSE_ID",
	"COURSE_CODE",
	"COURSE_TITLE",
	"INSTRUCTOR",
	"TERM",
	"YEAR",
}

// WriteCSV writes one row per course, sections in report order.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(reportHeader); err != nil {
		return err
	}

	for _, s := range r.Sections {
		sortKey := strconv.Itoa(s.SortKey)
		for _, c := range s.Courses {
			row := []string{
				s.Label,            // PERIOD
				sortKey,            // SORT_KEY
				strconv.Itoa(c.ID), // COURSE_ID
				c.Code,             // COURSE_CODE
				c.Title,            // COURSE_TITLE
				c.Instructor,       // INSTRUCTOR
				c.Term,             // TERM
				c.Year,             // YEAR
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
