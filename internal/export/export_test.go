package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-terms/internal/domain"
	"course-terms/internal/terms"
)

func sampleGroups() terms.Groups {
	return terms.GroupByPeriod([]domain.CourseRecord{
		{ID: 1, Code: "CS-201", Title: "Databases", Term: domain.Term("Spring 2023"), Year: domain.Year(1402)},
		{ID: 2, Code: "CS-101", Title: "Algorithms\n  and Data", Term: domain.Term("Fall 2024"), Year: domain.Year(1403)},
		{ID: 3, Code: "CS-301", Title: "Networks"},
		{ID: 4, Code: "CS-102", Title: "Compilers", Instructor: "Dr. Ahmadi", Term: domain.Term("Autumn 2024")},
	})
}

func TestBuildReport(t *testing.T) {
	r := BuildReport(sampleGroups(), Options{})

	require.Len(t, r.Sections, 3)
	assert.Equal(t, 4, r.Total)

	assert.Equal(t, "پاییز 1403", r.Sections[0].Label)
	assert.Equal(t, 14034, r.Sections[0].SortKey)
	require.Len(t, r.Sections[0].Courses, 2)
	assert.Equal(t, 2, r.Sections[0].Courses[0].ID)
	assert.Equal(t, "Algorithms and Data", r.Sections[0].Courses[0].Title)
	assert.Equal(t, "1403", r.Sections[0].Courses[0].Year)
	assert.Equal(t, "", r.Sections[0].Courses[1].Year)

	assert.Equal(t, "بهار 1402", r.Sections[1].Label)
	assert.Equal(t, terms.UnknownLabel, r.Sections[2].Label)
	assert.Equal(t, 0, r.Sections[2].SortKey)
}

func TestBuildReportPersianDigits(t *testing.T) {
	r := BuildReport(sampleGroups(), Options{PersianDigits: true})
	assert.Equal(t, "پاییز ۱۴۰۳", r.Sections[0].Label)
	assert.Equal(t, 14034, r.Sections[0].SortKey)
}

func TestBuildReportKeepsGroupKeys(t *testing.T) {
	g := terms.GroupByTermYear([]domain.CourseRecord{
		{ID: 1, Term: domain.Term("Fall  2024"), Year: domain.Year(1403)},
		{ID: 2, Term: domain.Term("Fall 2024"), Year: domain.Year(1403)},
	})
	r := BuildReport(g, Options{})
	require.Len(t, r.Sections, 2)
	assert.Equal(t, "Fall  2024 1403", r.Sections[0].Label)
	assert.Equal(t, "Fall 2024 1403", r.Sections[1].Label)

	nan := BuildReport(terms.GroupByPeriod([]domain.CourseRecord{{ID: 3, Term: domain.Term("  Fall")}}), Options{})
	require.Len(t, nan.Sections, 1)
	assert.Equal(t, " NaN", nan.Sections[0].Label)
	assert.Equal(t, "Fall", nan.Sections[0].Courses[0].Term)
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(terms.GroupByPeriod(nil), Options{})
	assert.Empty(t, r.Sections)
	assert.Equal(t, 0, r.Total)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, r))
	assert.Equal(t, strings.Join(reportHeader, ",")+"\r\n", buf.String())
}

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  plain  ", "plain"},
		{"line\r\nbreak", "line break"},
		{"école", "école"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := cleanText(tc.input); got != tc.expected {
			t.Errorf("cleanText(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, BuildReport(sampleGroups(), Options{})))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "PERIOD,SORT_KEY,COURSE_ID,COURSE_CODE,COURSE_TITLE,INSTRUCTOR,TERM,YEAR", lines[0])
	assert.Equal(t, "پاییز 1403,14034,2,CS-101,Algorithms and Data,,Fall 2024,1403", lines[1])
	assert.Equal(t, "پاییز 1403,14034,4,CS-102,Compilers,Dr. Ahmadi,Autumn 2024,", lines[2])
	assert.Equal(t, "بهار 1402,14021,1,CS-201,Databases,,Spring 2023,1402", lines[3])
	assert.Equal(t, terms.UnknownLabel+",0,3,CS-301,Networks,,,", lines[4])
}

func TestWriteXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, BuildReport(sampleGroups(), Options{})))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<Term_Report total="4">`)
	assert.Contains(t, out, `<Period label="پاییز 1403" sort_key="14034" count="2">`)
	assert.Contains(t, out, `<Course id="4">`)
	assert.Contains(t, out, `<instructor>Dr. Ahmadi</instructor>`)
	assert.Less(t, strings.Index(out, "پاییز 1403"), strings.Index(out, "بهار 1402"))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, BuildReport(sampleGroups(), Options{})))

	var got struct {
		Total   int `json:"total"`
		Periods []struct {
			Label   string `json:"label"`
			SortKey int    `json:"sortKey"`
			Courses []struct {
				ID int `json:"id"`
			} `json:"courses"`
		} `json:"periods"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 4, got.Total)
	require.Len(t, got.Periods, 3)
	assert.Equal(t, "پاییز 1403", got.Periods[0].Label)
	assert.Equal(t, 14034, got.Periods[0].SortKey)
	assert.Len(t, got.Periods[0].Courses, 2)
	assert.Equal(t, terms.UnknownLabel, got.Periods[2].Label)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := BuildReport(sampleGroups(), Options{})

	for _, format := range []string{"csv", "xml", "json"} {
		path := filepath.Join(dir, "report."+format)
		require.NoError(t, WriteFile(path, format, r))

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "14034")
	}

	assert.ErrorContains(t, WriteFile(filepath.Join(dir, "report.pdf"), "pdf", r), `unknown format "pdf"`)
}
