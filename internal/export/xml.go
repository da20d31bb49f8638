package export

import (
	"encoding/xml"
	"fmt"
	"io"
)

/*
<Term_Report total="3">
  <Period label="پاییز 1403" sort_key="14034" count="2">
    <Course id="1">
      <code>CS-101</code>
      <title>Algorithms</title>
      <term>Fall 2024</term>
      <year>1403</year>
    </Course>
  </Period>
</Term_Report>
*/

type xmlReport struct {
	XMLName xml.Name    `xml:"Term_Report"`
	Total   int         `xml:"total,attr"`
	Periods []xmlPeriod `xml:"Period"`
}

type xmlPeriod struct {
	Label   string      `xml:"label,attr"`
	SortKey int         `xml:"sort_key,attr"`
	Count   int         `xml:"count,attr"`
	Courses []xmlCourse `xml:"Course"`
}

type xmlCourse struct {
	ID         int    `xml:"id,attr"`
	Code       string `xml:"code,omitempty"`
	Title      string `xml:"title,omitempty"`
	Instructor string `xml:"instructor,omitempty"`
	Term       string `xml:"term,omitempty"`
	Year       string `xml:"year,omitempty"`
}

func WriteXML(w io.Writer, r Report) error {
	out := xmlReport{
		Total:   r.Total,
		Periods: make([]xmlPeriod, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		p := xmlPeriod{Label: s.Label, SortKey: s.SortKey, Count: len(s.Courses)}
		for _, c := range s.Courses {
			p.Courses = append(p.Courses, xmlCourse(c))
		}
		out.Periods = append(out.Periods, p)
	}

	b, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal xml: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}
