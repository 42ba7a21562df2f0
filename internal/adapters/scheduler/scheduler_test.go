package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherstats.app/internal/core/observation"
	mocks "weatherstats.app/internal/mocks"
	"weatherstats.app/pkg/errors"
)

type fakeRunner struct {
	mu     sync.Mutex
	calls  int
	report observation.IngestReport
	ctx    context.Context
}

func (f *fakeRunner) IngestConfigured(ctx context.Context) observation.IngestReport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.ctx = ctx
	return f.report
}

func (f *fakeRunner) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeInvalidator) InvalidateCache(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

func (f *fakeInvalidator) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newLogger(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Info(mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestIngestScheduler_RunsImmediatelyAndInvalidatesCache(t *testing.T) {
	runner := &fakeRunner{report: observation.IngestReport{Total: 2, Succeeded: 2, FailedCities: []string{}}}
	invalidator := &fakeInvalidator{}

	s, err := New(Options{Runner: runner, Invalidator: invalidator, Logger: newLogger(t), Interval: time.Hour})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	require.Eventually(t, func() bool { return s.Runs() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, runner.Calls())
	assert.Equal(t, 1, invalidator.Calls())
}

func TestIngestScheduler_NoInvalidationWithoutNewData(t *testing.T) {
	runner := &fakeRunner{report: observation.IngestReport{Total: 1, Failed: 1, FailedCities: []string{"Atlantis"}}}
	invalidator := &fakeInvalidator{}

	s, err := New(Options{Runner: runner, Invalidator: invalidator, Logger: newLogger(t), Interval: time.Hour})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	require.Eventually(t, func() bool { return s.Runs() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, invalidator.Calls())
}

func TestIngestScheduler_StopCancelsRunContext(t *testing.T) {
	runner := &fakeRunner{report: observation.IngestReport{FailedCities: []string{}}}

	s, err := New(Options{Runner: runner, Logger: newLogger(t)})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	require.Eventually(t, func() bool { return runner.Calls() == 1 }, 2*time.Second, 10*time.Millisecond)

	s.Stop()

	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.ErrorIs(t, runner.ctx.Err(), context.Canceled)
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Options{Logger: newLogger(t)})
	assert.True(t, errors.IsValidationError(err))

	_, err = New(Options{Runner: &fakeRunner{}})
	assert.True(t, errors.IsValidationError(err))
}
