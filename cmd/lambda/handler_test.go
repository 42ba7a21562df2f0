package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherstats.app/internal/core/observation"
)

type fakeIngester struct {
	report observation.IngestReport
	runs   int
	closed bool
}

func (f *fakeIngester) IngestConfigured(context.Context) observation.IngestReport {
	f.runs++
	return f.report
}

func (f *fakeIngester) Close() error {
	f.closed = true
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestHandler_Success(t *testing.T) {
	fake := &fakeIngester{report: observation.IngestReport{Total: 3, Succeeded: 2, Failed: 1, FailedCities: []string{"Atlantis"}}}
	h := &handler{
		setup:  func(context.Context) (ingester, error) { return fake, nil },
		logger: quietLogger(),
	}

	resp, err := h.Handle(context.Background(), json.RawMessage(`{}`))

	require.NoError(t, err)
	assert.Equal(t, Response{StatusCode: 200, Body: "Weather data updated successfully"}, resp)
	assert.Equal(t, 1, fake.runs)
	assert.True(t, fake.closed)

	encoded, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"statusCode":200,"body":"Weather data updated successfully"}`, string(encoded))
}

func TestHandler_SetupFailure(t *testing.T) {
	h := &handler{
		setup:  func(context.Context) (ingester, error) { return nil, errors.New("database unreachable") },
		logger: quietLogger(),
	}

	resp, err := h.Handle(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Internal server error", resp.Body)
}
