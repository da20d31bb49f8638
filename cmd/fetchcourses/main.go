package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"course-terms/internal/config"
	"course-terms/internal/logger"
	"course-terms/internal/providers/bargeh"
	"course-terms/internal/providers/snapshot"
	"course-terms/internal/terms"
)

func main() {
	var (
		outPath  = flag.String("out", "courses.json.br", "snapshot path (.json, or .json.br for brotli)")
		pageSize = flag.Int("page-size", 0, "courses per page (default $COURSES_PAGE_SIZE)")
		maxPages = flag.Int("max-pages", 0, "max pages to fetch (0 = all)")
		minYear  = flag.Int("min-year", 0, "only keep courses from this Persian year on (0 = keep all)")
	)
	flag.Parse()

	cfg := config.Load()
	if *pageSize > 0 {
		cfg.CoursesPageSize = *pageSize
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	start := time.Now()
	n, err := run(ctx, log, cfg, *outPath, *maxPages, *minYear)
	log.Info("execution finished",
		zap.Int("courses", n),
		zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		log.Fatal("fetch courses failed", zap.Error(err))
	}
}

// run fetches the course list and stores it as a snapshot. It returns the
// number of courses written.
func run(ctx context.Context, log *zap.Logger, cfg config.Config, outPath string, maxPages, minYear int) (int, error) {
	if cfg.CoursesAPIURL == "" {
		return 0, fmt.Errorf("missing env: COURSES_API_URL")
	}

	client := bargeh.New(cfg.CoursesAPIURL, cfg.CoursesAPIToken, log)
	courses, err := client.ListCourses(ctx, cfg.CoursesPageSize, maxPages)
	if err != nil {
		return 0, err
	}
	if minYear > 0 {
		courses = terms.FilterByMinimumYear(courses, minYear)
	}

	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}
	if err := snapshot.Write(outPath, courses); err != nil {
		return 0, err
	}

	log.Info("wrote course snapshot",
		zap.String("path", outPath),
		zap.Int("courses", len(courses)))
	return len(courses), nil
}
