package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

type UseCase struct {
	repository ports.ObservationRepository
	cache      ports.ReportCache
	config     ports.ConfigProvider
	logger     ports.Logger
	metrics    ports.MetricsRecorder
	clock      clockwork.Clock
}

type UseCaseDependencies struct {
	Repository ports.ObservationRepository
	// Cache is optional and only consulted when the report cache is enabled
	Cache   ports.ReportCache
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsRecorder
	Clock   clockwork.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
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
		repository: deps.Repository,
		cache:      deps.Cache,
		config:     deps.Config,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		clock:      deps.Clock,
	}, nil
}

// Window resolves a date filter against the current time in the report location
func (uc *UseCase) Window(filter DateFilter, selectedHour string) (Window, error) {
	now := uc.clock.Now()
	if loc := uc.config.GetReportConfig().Location; loc != nil {
		now = now.In(loc)
	}
	return filter.Range(now, selectedHour)
}

// Run translates the query's data type into exactly one aggregate query
func (uc *UseCase) Run(ctx context.Context, q Query) (*Result, error) {
	if q.DateFilter == "" {
		q.DateFilter = DefaultDateFilter
	}
	if q.TempExtreme == "" {
		q.TempExtreme = DefaultTempExtreme
	}

	switch q.DataType {
	case Countries:
		return uc.CountriesStats(ctx, q.DateFilter, q.SelectedHour)
	case Cities:
		return uc.CitiesStats(ctx, q.DateFilter, q.SelectedHour)
	case Extremes:
		return uc.TemperatureExtreme(ctx, q.DateFilter, q.SelectedHour, q.TempExtreme)
	case Rain:
		return uc.RainHours(ctx, q.DateFilter, q.SelectedHour)
	default:
		uc.logger.Error("Invalid data type specified", ports.F("data_type", string(q.DataType)))
		return nil, errors.NewValidationError(fmt.Sprintf("invalid data type %q", string(q.DataType)))
	}
}

// CountriesStats returns max, min and standard deviation of temperature per country
func (uc *UseCase) CountriesStats(ctx context.Context, filter DateFilter, selectedHour string) (*Result, error) {
	return uc.groupStats(ctx, Countries, ports.GroupByCountry, filter, selectedHour)
}

// CitiesStats returns max, min and standard deviation of temperature per city
func (uc *UseCase) CitiesStats(ctx context.Context, filter DateFilter, selectedHour string) (*Result, error) {
	return uc.groupStats(ctx, Cities, ports.GroupByCity, filter, selectedHour)
}

func (uc *UseCase) groupStats(ctx context.Context, dataType DataType, groupBy ports.GroupBy, filter DateFilter, selectedHour string) (*Result, error) {
	return uc.cached(ctx, dataType, filter, selectedHour, "", func(w Window) (*Result, error) {
		rows, err := uc.repository.GroupStats(ctx, groupBy, w.Start, w.End)
		if err != nil {
			return nil, fmt.Errorf("%s stats for %s: %w", groupBy, filter, err)
		}

		groups := make([]GroupStats, 0, len(rows))
		for _, row := range rows {
			groups = append(groups, GroupStats{
				Key:               row.Key,
				MaxTemperature:    row.MaxTemp,
				MinTemperature:    row.MinTemp,
				StdDevTemperature: row.StdDevTemp,
				Samples:           row.Samples,
			})
		}
		return &Result{Groups: groups}, nil
	})
}

// TemperatureExtreme returns the city with the highest or lowest temperature in the window
func (uc *UseCase) TemperatureExtreme(ctx context.Context, filter DateFilter, selectedHour string, extreme TempExtreme) (*Result, error) {
	if extreme == "" {
		extreme = DefaultTempExtreme
	}
	if extreme != Max && extreme != Min {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown temperature extreme %q", string(extreme)))
	}

	return uc.cached(ctx, Extremes, filter, selectedHour, extreme, func(w Window) (*Result, error) {
		row, err := uc.repository.TemperatureExtreme(ctx, ports.Extreme(extreme), w.Start, w.End)
		if err != nil {
			return nil, fmt.Errorf("%s temperature for %s: %w", extreme, filter, err)
		}

		result := &Result{}
		if row != nil {
			result.Extreme = &Extreme{City: row.City, Temperature: row.Temperature, Kind: extreme}
		}
		return result, nil
	})
}

// RainHours counts the observations with rain in the window
func (uc *UseCase) RainHours(ctx context.Context, filter DateFilter, selectedHour string) (*Result, error) {
	return uc.cached(ctx, Rain, filter, selectedHour, "", func(w Window) (*Result, error) {
		count, err := uc.repository.CountRainHours(ctx, w.Start, w.End)
		if err != nil {
			return nil, fmt.Errorf("rain hours for %s: %w", filter, err)
		}
		return &Result{RainHours: count}, nil
	})
}

// InvalidateCache drops cached results, called after new observations are stored
func (uc *UseCase) InvalidateCache(ctx context.Context) {
	if !uc.cacheEnabled() {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate report cache", ports.F("error", err))
	}
}

func (uc *UseCase) cacheEnabled() bool {
	return uc.cache != nil && uc.config.GetReportConfig().CacheEnabled
}

func (uc *UseCase) cached(ctx context.Context, dataType DataType, filter DateFilter, selectedHour string, extreme TempExtreme, query func(Window) (*Result, error)) (*Result, error) {
	window, err := uc.Window(filter, selectedHour)
	if err != nil {
		return nil, err
	}

	key := cacheKey(dataType, filter, extreme, window)
	if uc.cacheEnabled() {
		var hit Result
		if err := uc.cache.Get(ctx, key, &hit); err == nil {
			uc.metrics.RecordReportCache(true)
			uc.logger.Debug("Report served from cache", ports.F("key", key))
			return &hit, nil
		}
		uc.metrics.RecordReportCache(false)
	}

	start := uc.clock.Now()
	result, err := query(window)
	uc.metrics.RecordReportQuery(string(dataType), uc.clock.Since(start), err)
	if err != nil {
		uc.logger.Error("Report query failed",
			ports.F("data_type", string(dataType)),
			ports.F("date_filter", string(filter)),
			ports.F("error", err))
		return nil, err
	}

	result.DataType = dataType
	result.DateFilter = filter
	result.Window = window

	if uc.cacheEnabled() {
		if err := uc.cache.Set(ctx, key, result, uc.config.GetReportConfig().CacheTTL); err != nil {
			uc.logger.Warn("Failed to cache report", ports.F("key", key), ports.F("error", err))
		}
	}
	return result, nil
}

func cacheKey(dataType DataType, filter DateFilter, extreme TempExtreme, w Window) string {
	return fmt.Sprintf("report:%s:%s:%s:%s:%s", dataType, filter, extreme,
		w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
