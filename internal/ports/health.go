package ports

import (
	"context"
	"time"
)

// HealthChecker defines the contract for component health checking
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus represents the health status of a component
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}

// IngestRunStatus summarizes the latest completed ingestion pass
type IngestRunStatus struct {
	Total      int
	Succeeded  int
	Failed     int
	FinishedAt time.Time
}

// IngestStatusSource exposes the outcome of the latest ingestion pass.
// ok is false until a pass has finished.
type IngestStatusSource interface {
	LastIngestRun() (status IngestRunStatus, ok bool)
}
