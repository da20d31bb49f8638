package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"course-terms/internal/concurrency"
	"course-terms/internal/domain"
)

// ErrNoSources is returned by LoadAll when there is nothing to load.
var ErrNoSources = errors.New("providers: no course sources configured")

// CourseSource yields course records from somewhere (API, snapshot file).
type CourseSource interface {
	Name() string
	ListCourses(ctx context.Context) ([]domain.CourseRecord, error)
}

// Result is the outcome of one source. Courses may be partial when Err is set.
type Result struct {
	Name    string
	Courses []domain.CourseRecord
	Err     error
}

// LoadAll lists every source concurrently. Results come back in source
// order; a failing source does not stop the others.
func LoadAll(ctx context.Context, log *zap.Logger, sources []CourseSource, opts concurrency.ParallelOptions) ([]Result, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	results, _ := concurrency.ProcessParallel(ctx, sources, opts, func(ctx context.Context, _ int, s CourseSource) (Result, error) {
		courses, err := s.ListCourses(ctx)
		if err != nil {
			log.Warn("course source failed",
				zap.String("source", s.Name()),
				zap.Int("courses", len(courses)),
				zap.Error(err))
		} else {
			log.Info("course source loaded",
				zap.String("source", s.Name()),
				zap.Int("courses", len(courses)))
		}
		return Result{Name: s.Name(), Courses: courses, Err: err}, err
	})

	// a canceled context leaves unprocessed slots zeroed
	for i := range results {
		if results[i].Name == "" {
			results[i] = Result{Name: sources[i].Name(), Err: ctx.Err()}
		}
	}
	return results, nil
}

// Merge concatenates the courses of all results in order.
func Merge(results []Result) []domain.CourseRecord {
	n := 0
	for _, r := range results {
		n += len(r.Courses)
	}
	out := make([]domain.CourseRecord, 0, n)
	for _, r := range results {
		out = append(out, r.Courses...)
	}
	return out
}

// Page is the paginated list envelope of the courses API.
type Page struct {
	Count    int                   `json:"count"`
	Next     string                `json:"next"`
	Previous string                `json:"previous"`
	Results  []domain.CourseRecord `json:"results"`
}

// DecodeCourses accepts either a bare JSON array of courses or a Page.
func DecodeCourses(data []byte) (Page, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var courses []domain.CourseRecord
		if err := json.Unmarshal(data, &courses); err != nil {
			return Page{}, fmt.Errorf("providers: decode course list: %w", err)
		}
		return Page{Count: len(courses), Results: courses}, nil
	}

	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return Page{}, fmt.Errorf("providers: decode course page: %w", err)
	}
	return p, nil
}
