package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"integon/meridian/pkg/config"
	"integon/meridian/pkg/msl"
	"integon/meridian/pkg/msl/ast"
	mslErrors "integon/meridian/pkg/msl/errors"
	"integon/meridian/pkg/msl/parser"
	"integon/meridian/pkg/msl/validator"
	"integon/meridian/pkg/registry"
	"integon/meridian/pkg/telemetry/metrics"
)

// ServiceConfig configures a watch service.
type ServiceConfig struct {
	// Watch is the watch section of the toolkit configuration.
	Watch config.WatchConfig

	// Parse is the grammar policy applied to every reparse.
	Parse config.ParseConfig

	// Logger receives service log output. Defaults to slog.Default().
	Logger *slog.Logger

	// Store, when non-nil, records every parse attempt.
	Store *registry.Store

	// Registry receives the service's Prometheus metrics. A fresh registry
	// is created when nil.
	Registry *prometheus.Registry
}

// Service reparses sequence configuration files as they change. The last
// good program per file is retained across failed reparses.
type Service struct {
	cfg    config.WatchConfig
	parse  config.ParseConfig
	logger *slog.Logger
	store  *registry.Store

	parseMetrics *metrics.ParseMetrics
	watchMetrics *metrics.WatchMetrics

	watcher *FileWatcher
	cron    *cron.Cron

	mu       sync.RWMutex
	programs map[string]*ast.Program
}

// NewService creates a watch service. Run starts it.
func NewService(cfg ServiceConfig) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "watch")

	promRegistry := cfg.Registry
	if promRegistry == nil {
		promRegistry = prometheus.NewRegistry()
	}

	watcher, err := NewFileWatcher(&FileWatcherConfig{
		Path:             cfg.Watch.Path,
		DebounceInterval: cfg.Watch.DebounceInterval,
		Extensions:       cfg.Watch.Extensions,
		SkipHidden:       true,
	}, logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:          cfg.Watch,
		parse:        cfg.Parse,
		logger:       logger,
		store:        cfg.Store,
		parseMetrics: metrics.NewParseMetrics(promRegistry),
		watchMetrics: metrics.NewWatchMetrics(promRegistry),
		watcher:      watcher,
		cron:         cron.New(),
		programs:     make(map[string]*ast.Program),
	}, nil
}

// Run performs an initial scan, schedules periodic rescans, and blocks
// watching for file changes until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.rescan(ctx, "initial"); err != nil {
		return fmt.Errorf("initial scan failed: %w", err)
	}

	if s.cfg.RescanSchedule != "" {
		_, err := s.cron.AddFunc(s.cfg.RescanSchedule, func() {
			if err := s.rescan(ctx, "rescan"); err != nil {
				s.logger.Error("scheduled rescan failed", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("invalid rescan schedule %q: %w", s.cfg.RescanSchedule, err)
		}
		s.cron.Start()
		defer s.cron.Stop()
	}

	return s.watcher.Watch(ctx, func(path string) {
		s.reload(ctx, path, "event")
	})
}

// Stop stops the watcher and the rescan scheduler.
func (s *Service) Stop() error {
	s.cron.Stop()
	return s.watcher.Stop()
}

// Program returns the last successfully parsed program for a file, or nil.
func (s *Service) Program(path string) *ast.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.programs[path]
}

// Files returns the paths with a retained program, sorted.
func (s *Service) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]string, 0, len(s.programs))
	for path := range s.programs {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

// rescan walks the watched path and reloads every matching file.
func (s *Service) rescan(ctx context.Context, trigger string) error {
	info, err := os.Stat(s.cfg.Path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		s.reload(ctx, s.cfg.Path, trigger)
		return nil
	}

	return filepath.Walk(s.cfg.Path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != s.cfg.Path {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.matchesExtension(path) || strings.HasPrefix(filepath.Base(path), ".") {
			return nil
		}
		s.reload(ctx, path, trigger)
		return nil
	})
}

func (s *Service) matchesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range s.cfg.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// reload parses one file and records the outcome. A parse failure leaves the
// previously retained program in place.
func (s *Service) reload(ctx context.Context, path string, trigger string) {
	reloadID := uuid.New().String()
	start := time.Now()

	program, err := s.parseFile(path)
	duration := time.Since(start)

	s.watchMetrics.RecordReload(trigger)

	rec := &registry.ParseRecord{
		File:     path,
		ReloadID: reloadID,
	}

	if err != nil {
		errorType := string(mslErrors.TypeOf(err))
		if errorType == "" {
			errorType = "unknown"
		}

		s.parseMetrics.RecordParse("failure", duration)
		s.parseMetrics.RecordError(errorType)

		s.logger.Error("reparse failed",
			"file", path,
			"reload_id", reloadID,
			"trigger", trigger,
			"error_type", errorType,
			"error", err,
		)

		rec.ErrorType = errorType
		rec.ErrorMessage = err.Error()
	} else {
		s.parseMetrics.RecordParse("success", duration)
		s.parseMetrics.RecordMediators(program.MediatorCount())

		s.mu.Lock()
		s.programs[path] = program
		count := len(s.programs)
		s.mu.Unlock()
		s.watchMetrics.SetWatchedFiles(count)

		s.logger.Info("sequence reloaded",
			"file", path,
			"reload_id", reloadID,
			"trigger", trigger,
			"sequences", len(program.Sequences()),
			"mediators", program.MediatorCount(),
			"duration_ms", duration.Milliseconds(),
		)

		rec.OK = true
		rec.Sequences = len(program.Sequences())
		rec.Mediators = program.MediatorCount()
	}

	if s.store != nil {
		if err := s.store.Record(ctx, rec); err != nil {
			s.logger.Error("failed to record parse outcome",
				"file", path,
				"reload_id", reloadID,
				"error", err,
			)
		}
	}
}

// parseFile runs the configured parser and validator over one file.
func (s *Service) parseFile(path string) (*ast.Program, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &mslErrors.Error{
			Type:     mslErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("failed to access file: %v", err),
			Location: ast.Location{File: path},
			Err:      err,
		}
	}
	if info.Size() > msl.MaxFileSize {
		return nil, &mslErrors.Error{
			Type:     mslErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("file size %d exceeds maximum %d bytes", info.Size(), msl.MaxFileSize),
			Location: ast.Location{File: path},
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &mslErrors.Error{
			Type:     mslErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("failed to open file: %v", err),
			Location: ast.Location{File: path},
			Err:      err,
		}
	}
	defer f.Close()

	program, err := parser.NewParser().
		WithRequireSequence(s.parse.RequireSequence).
		WithStrictAttributes(s.parse.StrictAttributes).
		WithSourceName(path).
		Parse(f)
	if err != nil {
		return nil, err
	}

	v := validator.NewValidator().WithStrictMode(s.parse.StrictValidation)
	if err := v.Validate(program); err != nil {
		return nil, err
	}

	return program, nil
}
