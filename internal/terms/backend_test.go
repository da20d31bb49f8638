package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"course-terms/internal/domain"
)

func TestSeasonForCode(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"fall", SeasonFall},
		{"FALL", SeasonFall},
		{" winter ", SeasonWinter},
		{"spring", SeasonSpring},
		{"summer", SeasonSummer},
		{"autumn", "autumn"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := SeasonForCode(tc.input); got != tc.expected {
			t.Errorf("SeasonForCode(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestPeriodOf(t *testing.T) {
	t.Run("full term wins over year field", func(t *testing.T) {
		p := PeriodOf(domain.CourseRecord{Term: domain.Term("Fall 2024"), Year: domain.Year(1390)})
		assert.Equal(t, "پاییز 1403", p.DisplayLabel)
		assert.Equal(t, 14034, p.SortKey)
	})

	t.Run("backend code with persian year", func(t *testing.T) {
		p := PeriodOf(domain.CourseRecord{Term: domain.Term("winter"), Year: domain.Year(1403)})
		assert.Equal(t, SeasonWinter, p.Season)
		assert.Equal(t, 1403, p.Year)
		assert.Equal(t, "زمستان 1403", p.DisplayLabel)
		assert.Equal(t, 14033, p.SortKey)
	})

	t.Run("backend code without year", func(t *testing.T) {
		p := PeriodOf(domain.CourseRecord{Term: domain.Term("winter")})
		assert.Equal(t, YearNaN, p.State)
		assert.Equal(t, 0, p.SortKey)
	})

	t.Run("missing term", func(t *testing.T) {
		p := PeriodOf(domain.CourseRecord{Year: domain.Year(1403)})
		assert.True(t, p.IsUnknown())
	})
}
