package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"weatherstats.app/internal/core/observation"
)

// Response is the API Gateway proxy reply
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

const (
	bodyUpdated       = "Weather data updated successfully"
	bodyInternalError = "Internal server error"
)

type ingester interface {
	IngestConfigured(ctx context.Context) observation.IngestReport
	Close() error
}

type handler struct {
	setup  func(ctx context.Context) (ingester, error)
	logger *slog.Logger
}

// Handle runs one ingestion pass. Per-city failures are logged and never change the reply.
func (h *handler) Handle(ctx context.Context, event json.RawMessage) (Response, error) {
	h.logger.Info("Ingestion invoked", "event_bytes", len(event))

	runner, err := h.setup(ctx)
	if err != nil {
		h.logger.Error("Failed to initialize ingestion", "error", err)
		return Response{StatusCode: 500, Body: bodyInternalError}, nil
	}
	defer func() {
		if err := runner.Close(); err != nil {
			h.logger.Warn("Failed to release resources", "error", err)
		}
	}()

	result := runner.IngestConfigured(ctx)
	h.logger.Info("Ingestion finished",
		"total", result.Total,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"failed_cities", result.FailedCities,
		"duration", result.Duration.String())

	return Response{StatusCode: 200, Body: bodyUpdated}, nil
}
