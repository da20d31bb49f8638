package domain

// CourseRecord is the minimal view of a course used for term grouping.
// Only Term and Year are read by the normalizer; the rest is carried through
// untouched so exporters can print something useful.
type CourseRecord struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Instructor  string `json:"instructor,omitempty"`

	Term RawTerm `json:"term"`
	Year RawYear `json:"year"`
}
