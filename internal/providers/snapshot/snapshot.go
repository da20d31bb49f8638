// Package snapshot reads course lists saved to disk, plain or
// brotli-compressed (*.br).
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"

	"course-terms/internal/domain"
	"course-terms/internal/providers"
)

// Source is a course snapshot file.
type Source struct {
	Path string
}

func (s Source) Name() string { return filepath.Base(s.Path) }

func (s Source) ListCourses(ctx context.Context) ([]domain.CourseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(s.Path), ".br") {
		r = brotli.NewReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", s.Path, err)
	}

	page, err := providers.DecodeCourses(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %s: %w", s.Path, err)
	}
	return page.Results, nil
}

// Write stores courses as a JSON array, brotli-compressed when path ends in .br.
func Write(path string, courses []domain.CourseRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create: %w", err)
	}

	var w io.WriteCloser = nopCloser{f}
	if strings.EqualFold(filepath.Ext(path), ".br") {
		w = brotli.NewWriterLevel(f, brotli.DefaultCompression)
	}

	if err := writeJSON(w, courses); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: flush %s: %w", path, err)
	}
	return f.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func writeJSON(w io.Writer, courses []domain.CourseRecord) error {
	if courses == nil {
		courses = []domain.CourseRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(courses)
}
