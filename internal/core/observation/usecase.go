package observation

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
	"weatherstats.app/pkg/validation"
)

const defaultWorkers = 5

type UseCase struct {
	provider   ports.WeatherProvider
	repository ports.ObservationRepository
	config     ports.ConfigProvider
	logger     ports.Logger
	metrics    ports.MetricsRecorder
	clock      clockwork.Clock

	lastRun atomic.Pointer[ports.IngestRunStatus]
}

type UseCaseDependencies struct {
	Provider   ports.WeatherProvider
	Repository ports.ObservationRepository
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsRecorder
	// Clock defaults to the real clock
	Clock clockwork.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Repository == nil {
		return nil, errors.NewValidationError("observation repository is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &UseCase{
		provider:   deps.Provider,
		repository: deps.Repository,
		config:     deps.Config,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		clock:      deps.Clock,
	}, nil
}

// EnsureSchema creates the observations table when it does not exist yet
func (uc *UseCase) EnsureSchema(ctx context.Context) error {
	if err := uc.repository.Migrate(ctx); err != nil {
		return fmt.Errorf("ensure observation schema: %w", err)
	}
	return nil
}

// IngestCity fetches the current conditions for one city and stores them
func (uc *UseCase) IngestCity(ctx context.Context, city string) error {
	start := uc.clock.Now()
	outcome, err := uc.ingestCity(ctx, city)
	uc.metrics.RecordCityIngest(outcome, uc.clock.Since(start))

	if err != nil {
		uc.logger.Error("Failed to ingest weather for city",
			ports.F("city", city),
			ports.F("outcome", outcome),
			ports.F("error", err))
		return err
	}
	return nil
}

func (uc *UseCase) ingestCity(ctx context.Context, city string) (string, error) {
	if !validation.IsNotEmpty(city) {
		return ports.OutcomeInvalid, errors.NewValidationError("city cannot be empty")
	}

	data, err := uc.provider.FetchObservation(ctx, city)
	if err != nil {
		return ports.OutcomeFetchFailed, fmt.Errorf("fetch weather for city %s: %w", city, err)
	}
	if data == nil {
		return ports.OutcomeFetchFailed, errors.NewExternalAPIError(fmt.Sprintf("no weather data for city %s", city), nil)
	}

	obs := fromPorts(data)
	if err := obs.Validate(); err != nil {
		return ports.OutcomeInvalid, fmt.Errorf("invalid weather data for city %s: %w", city, err)
	}

	record := obs.toPorts()
	if err := uc.repository.Save(ctx, record); err != nil {
		return ports.OutcomePersistFailed, fmt.Errorf("save weather for city %s: %w", city, err)
	}

	uc.logger.Debug("Weather observation stored",
		ports.F("city", city),
		ports.F("id", record.ID),
		ports.F("temperature", record.Temperature))
	return ports.OutcomeStored, nil
}

// IngestAll runs IngestCity for every city on a bounded worker pool.
// A failing city never stops the others. The call returns when every
// dispatched task has finished.
func (uc *UseCase) IngestAll(ctx context.Context, cities []string) IngestReport {
	cfg := uc.config.GetIngestConfig()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	cities = validation.NormalizeCities(cities)
	report := IngestReport{Total: len(cities), FailedCities: []string{}}
	start := uc.clock.Now()

	uc.logger.Info("Starting weather ingestion",
		ports.F("cities", len(cities)),
		ports.F("workers", workers))

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(workers)

	record := func(city string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report.Failed++
			report.FailedCities = append(report.FailedCities, city)
			return
		}
		report.Succeeded++
	}

	for i, city := range cities {
		if ctx.Err() != nil {
			uc.logger.Warn("Ingestion cancelled before all cities were dispatched",
				ports.F("dispatched", i),
				ports.F("error", ctx.Err()))
			for _, skipped := range cities[i:] {
				record(skipped, ctx.Err())
			}
			break
		}

		city := city
		g.Go(func() error {
			record(city, uc.IngestCity(ctx, city))
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(report.FailedCities)
	report.Duration = uc.clock.Since(start)
	uc.metrics.RecordIngestRun(report.Succeeded, report.Failed, report.Duration)
	uc.lastRun.Store(&ports.IngestRunStatus{
		Total:      report.Total,
		Succeeded:  report.Succeeded,
		Failed:     report.Failed,
		FinishedAt: uc.clock.Now(),
	})

	uc.logger.Info("Weather ingestion finished",
		ports.F("succeeded", report.Succeeded),
		ports.F("failed", report.Failed),
		ports.F("duration", report.Duration.String()))
	return report
}

// LastIngestRun returns the summary of the most recent IngestAll call
func (uc *UseCase) LastIngestRun() (ports.IngestRunStatus, bool) {
	run := uc.lastRun.Load()
	if run == nil {
		return ports.IngestRunStatus{}, false
	}
	return *run, true
}

// IngestConfigured runs IngestAll over the configured city list
func (uc *UseCase) IngestConfigured(ctx context.Context) IngestReport {
	return uc.IngestAll(ctx, uc.config.GetIngestConfig().Cities)
}
