package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"course-terms/internal/concurrency"
	"course-terms/internal/config"
	"course-terms/internal/domain"
	"course-terms/internal/export"
	"course-terms/internal/logger"
	"course-terms/internal/providers"
	"course-terms/internal/providers/bargeh"
	"course-terms/internal/providers/snapshot"
	"course-terms/internal/sftpclient"
	"course-terms/internal/terms"
)

type options struct {
	outPath   string
	snapshots []string
	useAPI    bool
	maxPages  int
	upload    bool
}

// stringList is a repeatable, comma separated flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, splitCSV(v)...)
	return nil
}

func main() {
	var snapshots stringList
	var (
		outPath  = flag.String("out", "TERM-REPORT.csv", "output report path")
		format   = flag.String("format", "", "report format: csv, xml or json (default $REPORT_FORMAT)")
		grouping = flag.String("grouping", "", "period or termyear (default $REPORT_GROUPING)")
		minYear  = flag.Int("min-year", -1, "drop courses whose year is below this Persian year, 0 = keep all (default $COURSES_MIN_YEAR)")
		useAPI   = flag.Bool("api", false, "load courses from $COURSES_API_URL")
		maxPages = flag.Int("max-pages", 0, "max API pages to fetch (0 = all)")
		digits   = flag.Bool("persian-digits", false, "render period labels with Persian digits")
		upload   = flag.Bool("sftp", false, "upload the generated report via SFTP")
	)
	flag.Var(&snapshots, "snapshot", "course snapshot file (.json or .json.br), repeatable")
	flag.Parse()

	cfg := config.Load()
	if *format != "" {
		cfg.Format = strings.ToLower(*format)
	}
	if *grouping != "" {
		cfg.Grouping = strings.ToLower(*grouping)
	}
	if *minYear >= 0 {
		cfg.MinYear = *minYear
	}
	if *digits {
		cfg.PersianDigits = true
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
	err = run(ctx, log, cfg, options{
		outPath:   *outPath,
		snapshots: snapshots,
		useAPI:    *useAPI,
		maxPages:  *maxPages,
		upload:    *upload,
	})
	log.Info("execution finished", zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		log.Fatal("term report failed", zap.Error(err))
	}
}

func run(ctx context.Context, log *zap.Logger, cfg config.Config, opts options) error {
	sources, err := buildSources(cfg, opts, log)
	if err != nil {
		return err
	}

	results, err := providers.LoadAll(ctx, log, sources, concurrency.DefaultOptions())
	if err != nil {
		return err
	}
	if allFailed(results) {
		return fmt.Errorf("every course source failed: %w", errors.Join(resultErrors(results)...))
	}

	all := providers.Merge(results)
	kept := terms.FilterByMinimumYear(all, cfg.MinYear)
	groups := groupCourses(cfg.Grouping, kept)
	report := export.BuildReport(groups, export.Options{PersianDigits: cfg.PersianDigits})

	if dir := filepath.Dir(opts.outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := export.WriteFile(opts.outPath, cfg.Format, report); err != nil {
		return err
	}

	log.Info("wrote term report",
		zap.String("path", opts.outPath),
		zap.String("format", cfg.Format),
		zap.String("grouping", cfg.Grouping),
		zap.Int("sources", len(results)),
		zap.Int("merged", len(all)),
		zap.Int("kept", len(kept)),
		zap.Int("periods", len(report.Sections)),
		zap.Strings("order", sectionLabels(report)))

	if !opts.upload {
		return nil
	}

	upCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		KnownHostsPath:        cfg.SFTPKnownHosts,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
	}
	remoteName := filepath.Base(opts.outPath)

	upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer upCancel()

	if err := sftpclient.UploadFile(upCtx, upCfg, opts.outPath, remoteName); err != nil {
		return err
	}
	log.Info("uploaded term report",
		zap.String("host", upCfg.Host),
		zap.Int("port", upCfg.Port),
		zap.String("remote", upCfg.RemoteDir+"/"+remoteName))
	return nil
}

func buildSources(cfg config.Config, opts options, log *zap.Logger) ([]providers.CourseSource, error) {
	var sources []providers.CourseSource
	for _, p := range opts.snapshots {
		sources = append(sources, snapshot.Source{Path: p})
	}
	if opts.useAPI {
		if cfg.CoursesAPIURL == "" {
			return nil, fmt.Errorf("missing env: COURSES_API_URL")
		}
		sources = append(sources, bargeh.Provider{
			C:        bargeh.New(cfg.CoursesAPIURL, cfg.CoursesAPIToken, log),
			PageSize: cfg.CoursesPageSize,
			MaxPages: opts.maxPages,
		})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: pass -snapshot and/or -api", providers.ErrNoSources)
	}
	return sources, nil
}

func groupCourses(grouping string, courses []domain.CourseRecord) terms.Groups {
	if grouping == "termyear" {
		return terms.GroupByTermYear(courses)
	}
	return terms.GroupByPeriod(courses)
}

func allFailed(results []providers.Result) bool {
	for _, r := range results {
		if r.Err == nil || len(r.Courses) > 0 {
			return false
		}
	}
	return true
}

func resultErrors(results []providers.Result) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}
	return errs
}

func sectionLabels(r export.Report) []string {
	out := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		out = append(out, s.Label)
	}
	return out
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
