// Package scheduler runs ingestion passes on a fixed interval
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"weatherstats.app/internal/core/observation"
	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

const defaultIntervalMinutes = 60

// IngestRunner runs one ingestion pass over the configured cities
type IngestRunner interface {
	IngestConfigured(ctx context.Context) observation.IngestReport
}

// CacheInvalidator drops cached report results after new data lands
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// IngestScheduler periodically ingests weather for the configured cities
type IngestScheduler struct {
	scheduler   *gocron.Scheduler
	runner      IngestRunner
	invalidator CacheInvalidator
	logger      ports.Logger
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	runs   int
}

// Options configures an IngestScheduler. Invalidator is optional.
type Options struct {
	Runner      IngestRunner
	Invalidator CacheInvalidator
	Logger      ports.Logger
	Interval    time.Duration
}

func New(opts Options) (*IngestScheduler, error) {
	if opts.Runner == nil {
		return nil, errors.NewValidationError("ingest runner is required")
	}
	if opts.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	s := gocron.NewScheduler(time.UTC)
	// a slow pass is never overlapped by the next tick
	s.SingletonModeAll()

	return &IngestScheduler{
		scheduler:   s,
		runner:      opts.Runner,
		invalidator: opts.Invalidator,
		logger:      opts.Logger,
		interval:    opts.Interval,
	}, nil
}

// Start schedules the job and runs the first pass immediately.
// Passes receive a context derived from ctx that Stop cancels.
func (s *IngestScheduler) Start(ctx context.Context) error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = defaultIntervalMinutes
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	if _, err := s.scheduler.Every(minutes).Minutes().Do(s.run, runCtx); err != nil {
		cancel()
		return fmt.Errorf("schedule ingestion: %w", err)
	}

	s.logger.Info("Ingestion scheduler started", ports.F("interval_minutes", minutes))
	s.scheduler.StartAsync()
	return nil
}

// Stop cancels an in-flight pass and stops future ones
func (s *IngestScheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.scheduler.Stop()
	s.logger.Info("Ingestion scheduler stopped")
}

// Runs returns how many passes have completed
func (s *IngestScheduler) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

func (s *IngestScheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	report := s.runner.IngestConfigured(ctx)
	if s.invalidator != nil && report.Succeeded > 0 {
		s.invalidator.InvalidateCache(ctx)
	}

	s.mu.Lock()
	s.runs++
	s.mu.Unlock()

	if report.Failed > 0 {
		s.logger.Warn("Scheduled ingestion finished with failures",
			ports.F("succeeded", report.Succeeded),
			ports.F("failed_cities", report.FailedCities))
		return
	}
	s.logger.Info("Scheduled ingestion finished", ports.F("succeeded", report.Succeeded))
}
