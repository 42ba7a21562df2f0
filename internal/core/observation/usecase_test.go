package observation

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weatherstats.app/internal/mocks"
	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

type testDeps struct {
	provider   *mocks.WeatherProvider
	repository *mocks.ObservationRepository
	config     *mocks.ConfigProvider
	logger     *mocks.Logger
	metrics    *mocks.MetricsRecorder
}

func newTestUseCase(t *testing.T, workers int) (*UseCase, testDeps) {
	deps := testDeps{
		provider:   mocks.NewWeatherProvider(t),
		repository: mocks.NewObservationRepository(t),
		config:     mocks.NewConfigProvider(t),
		logger:     mocks.NewLogger(t),
		metrics:    mocks.NewMetricsRecorder(t),
	}
	allowLogging(deps.logger)
	deps.config.EXPECT().GetIngestConfig().Return(ports.IngestConfig{
		Cities:  []string{"Kyiv", "Lviv"},
		Workers: workers,
	}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Provider:   deps.provider,
		Repository: deps.repository,
		Config:     deps.config,
		Logger:     deps.logger,
		Metrics:    deps.metrics,
		Clock:      clockwork.NewFakeClock(),
	})
	require.NoError(t, err)
	return uc, deps
}

// Logger methods are variadic, so each arity needs its own expectation.
func allowLogging(l *mocks.Logger) {
	for n := 0; n <= 4; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

func observationFor(city string) *ports.ObservationData {
	return &ports.ObservationData{
		Country:     "UA",
		City:        city,
		Temperature: 18.2,
		Description: "clear sky",
		ObservedAt:  time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestUseCase_IngestAll_Success(t *testing.T) {
	uc, deps := newTestUseCase(t, 5)

	for _, city := range []string{"Kyiv", "Lviv", "Odesa"} {
		deps.provider.EXPECT().FetchObservation(mock.Anything, city).Return(observationFor(city), nil).Once()
	}
	var nextID uint32
	deps.repository.EXPECT().Save(mock.Anything, mock.AnythingOfType("*ports.ObservationData")).
		RunAndReturn(func(_ context.Context, obs *ports.ObservationData) error {
			obs.ID = uint(atomic.AddUint32(&nextID, 1))
			return nil
		}).Times(3)
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeStored, mock.Anything).Times(3)
	deps.metrics.EXPECT().RecordIngestRun(3, 0, mock.Anything).Once()

	report := uc.IngestAll(context.Background(), []string{"Kyiv", " Lviv ", "", "kyiv", "Odesa"})

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.FailedCities)
}

func TestUseCase_IngestAll_IsolatesFailures(t *testing.T) {
	uc, deps := newTestUseCase(t, 2)

	invalid := observationFor("Lviv")
	invalid.Description = ""

	deps.provider.EXPECT().FetchObservation(mock.Anything, "Kyiv").Return(observationFor("Kyiv"), nil)
	deps.provider.EXPECT().FetchObservation(mock.Anything, "Lviv").Return(invalid, nil)
	deps.provider.EXPECT().FetchObservation(mock.Anything, "Atlantis").
		Return(nil, errors.NewExternalAPIError("OpenWeatherMap returned status 404", nil))
	deps.provider.EXPECT().FetchObservation(mock.Anything, "Odesa").Return(observationFor("Odesa"), nil)

	deps.repository.EXPECT().Save(mock.Anything, mock.MatchedBy(func(o *ports.ObservationData) bool {
		return o.City == "Kyiv"
	})).Return(nil)
	deps.repository.EXPECT().Save(mock.Anything, mock.MatchedBy(func(o *ports.ObservationData) bool {
		return o.City == "Odesa"
	})).Return(errors.NewDatabaseError("insert failed", fmt.Errorf("disk full")))

	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeStored, mock.Anything).Once()
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeInvalid, mock.Anything).Once()
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeFetchFailed, mock.Anything).Once()
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomePersistFailed, mock.Anything).Once()
	deps.metrics.EXPECT().RecordIngestRun(1, 3, mock.Anything).Once()

	report := uc.IngestAll(context.Background(), []string{"Kyiv", "Lviv", "Atlantis", "Odesa"})

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 3, report.Failed)
	assert.Equal(t, []string{"Atlantis", "Lviv", "Odesa"}, report.FailedCities)
}

func TestUseCase_IngestAll_MalformedResponseIsNotStored(t *testing.T) {
	uc, deps := newTestUseCase(t, 2)

	epoch := observationFor("London")
	epoch.Country = "GB"
	epoch.Temperature = 0
	epoch.ObservedAt = time.Unix(0, 0).UTC()

	deps.provider.EXPECT().FetchObservation(mock.Anything, "London").Return(epoch, nil)
	deps.provider.EXPECT().FetchObservation(mock.Anything, "Paris").
		Return(nil, errors.NewExternalAPIError("malformed OpenWeatherMap response for Paris: missing dt, main.temp", nil))
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeInvalid, mock.Anything).Once()
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeFetchFailed, mock.Anything).Once()
	deps.metrics.EXPECT().RecordIngestRun(0, 2, mock.Anything).Once()

	report := uc.IngestAll(context.Background(), []string{"London", "Paris"})

	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, []string{"London", "Paris"}, report.FailedCities)
	deps.repository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUseCase_LastIngestRun(t *testing.T) {
	uc, deps := newTestUseCase(t, 2)

	_, ok := uc.LastIngestRun()
	assert.False(t, ok)

	deps.provider.EXPECT().FetchObservation(mock.Anything, "Kyiv").Return(observationFor("Kyiv"), nil)
	deps.provider.EXPECT().FetchObservation(mock.Anything, "Atlantis").
		Return(nil, errors.NewExternalAPIError("OpenWeatherMap returned status 404", nil))
	deps.repository.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	deps.metrics.EXPECT().RecordCityIngest(mock.Anything, mock.Anything).Times(2)
	deps.metrics.EXPECT().RecordIngestRun(1, 1, mock.Anything).Once()

	uc.IngestAll(context.Background(), []string{"Kyiv", "Atlantis"})

	run, ok := uc.LastIngestRun()
	require.True(t, ok)
	assert.Equal(t, 2, run.Total)
	assert.Equal(t, 1, run.Succeeded)
	assert.Equal(t, 1, run.Failed)
	assert.False(t, run.FinishedAt.IsZero())
}

func TestUseCase_IngestAll_RespectsWorkerLimit(t *testing.T) {
	const workers = 2
	uc, deps := newTestUseCase(t, workers)

	var (
		active    int32
		maxActive int32
		mu        sync.Mutex
	)
	deps.provider.EXPECT().FetchObservation(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, city string) (*ports.ObservationData, error) {
			n := atomic.AddInt32(&active, 1)
			mu.Lock()
			if n > maxActive {
				maxActive = n
			}
			mu.Unlock()
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&active, -1)
			return observationFor(city), nil
		})
	deps.repository.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeStored, mock.Anything)
	deps.metrics.EXPECT().RecordIngestRun(6, 0, mock.Anything).Once()

	report := uc.IngestAll(context.Background(), []string{"A", "B", "C", "D", "E", "F"})

	assert.Equal(t, 6, report.Succeeded)
	assert.LessOrEqual(t, maxActive, int32(workers))
	assert.Equal(t, int32(0), atomic.LoadInt32(&active))
}

func TestUseCase_IngestAll_CancelledContext(t *testing.T) {
	uc, deps := newTestUseCase(t, 5)
	deps.metrics.EXPECT().RecordIngestRun(0, 2, mock.Anything).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := uc.IngestAll(ctx, []string{"Kyiv", "Lviv"})

	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, []string{"Kyiv", "Lviv"}, report.FailedCities)
	deps.provider.AssertNotCalled(t, "FetchObservation", mock.Anything, mock.Anything)
}

func TestUseCase_IngestConfigured(t *testing.T) {
	uc, deps := newTestUseCase(t, 5)

	deps.provider.EXPECT().FetchObservation(mock.Anything, "Kyiv").Return(observationFor("Kyiv"), nil)
	deps.provider.EXPECT().FetchObservation(mock.Anything, "Lviv").Return(observationFor("Lviv"), nil)
	deps.repository.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeStored, mock.Anything).Times(2)
	deps.metrics.EXPECT().RecordIngestRun(2, 0, mock.Anything).Once()

	report := uc.IngestConfigured(context.Background())

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Succeeded)
}

func TestUseCase_IngestCity_EmptyCity(t *testing.T) {
	uc, deps := newTestUseCase(t, 5)
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeInvalid, mock.Anything).Once()

	err := uc.IngestCity(context.Background(), "   ")

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_IngestCity_NormalizesTimestampToUTC(t *testing.T) {
	uc, deps := newTestUseCase(t, 5)

	kyiv := time.FixedZone("EEST", 3*60*60)
	data := observationFor("Kyiv")
	data.ObservedAt = time.Date(2024, 5, 10, 15, 0, 0, 0, kyiv)

	deps.provider.EXPECT().FetchObservation(mock.Anything, "Kyiv").Return(data, nil)
	deps.repository.EXPECT().Save(mock.Anything, mock.MatchedBy(func(o *ports.ObservationData) bool {
		return o.ObservedAt.Location() == time.UTC && o.ObservedAt.Hour() == 12
	})).Return(nil)
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeStored, mock.Anything).Once()

	require.NoError(t, uc.IngestCity(context.Background(), "Kyiv"))
}

func TestUseCase_IngestCity_ProviderReturnsNothing(t *testing.T) {
	uc, deps := newTestUseCase(t, 5)
	deps.provider.EXPECT().FetchObservation(mock.Anything, "Kyiv").Return(nil, nil)
	deps.metrics.EXPECT().RecordCityIngest(ports.OutcomeFetchFailed, mock.Anything).Once()

	err := uc.IngestCity(context.Background(), "Kyiv")

	assert.True(t, errors.IsExternalAPIError(err))
}

func TestUseCase_EnsureSchema(t *testing.T) {
	uc, deps := newTestUseCase(t, 5)
	deps.repository.EXPECT().Migrate(mock.Anything).Return(errors.NewDatabaseError("migrate", fmt.Errorf("denied"))).Once()

	err := uc.EnsureSchema(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
	assert.Contains(t, err.Error(), "ensure observation schema")
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	full := func() UseCaseDependencies {
		return UseCaseDependencies{
			Provider:   mocks.NewWeatherProvider(t),
			Repository: mocks.NewObservationRepository(t),
			Config:     mocks.NewConfigProvider(t),
			Logger:     mocks.NewLogger(t),
			Metrics:    mocks.NewMetricsRecorder(t),
		}
	}

	tests := []struct {
		name   string
		mutate func(d *UseCaseDependencies)
		errMsg string
	}{
		{"MissingProvider", func(d *UseCaseDependencies) { d.Provider = nil }, "weather provider is required"},
		{"MissingRepository", func(d *UseCaseDependencies) { d.Repository = nil }, "observation repository is required"},
		{"MissingConfig", func(d *UseCaseDependencies) { d.Config = nil }, "config is required"},
		{"MissingLogger", func(d *UseCaseDependencies) { d.Logger = nil }, "logger is required"},
		{"MissingMetrics", func(d *UseCaseDependencies) { d.Metrics = nil }, "metrics is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := full()
			tt.mutate(&deps)

			uc, err := NewUseCase(deps)

			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	uc, err := NewUseCase(full())
	require.NoError(t, err)
	assert.NotNil(t, uc.clock)
}
