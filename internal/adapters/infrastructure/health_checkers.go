package infrastructure

import (
	"context"
	"fmt"
	"time"

	"weatherstats.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	defaultPingTimeout = 2 * time.Second
)

// Pinger is satisfied by the database repository and the Redis cache
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker reports a component healthy when its Ping succeeds
type PingHealthChecker struct {
	component string
	pinger    Pinger
	timeout   time.Duration
}

// NewDatabaseHealthChecker checks the observation store
func NewDatabaseHealthChecker(pinger Pinger) *PingHealthChecker {
	return &PingHealthChecker{component: "database", pinger: pinger, timeout: defaultPingTimeout}
}

// NewRedisHealthChecker checks the report cache backend
func NewRedisHealthChecker(pinger Pinger) *PingHealthChecker {
	return &PingHealthChecker{component: "redis", pinger: pinger, timeout: defaultPingTimeout}
}

func (p *PingHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: p.component,
		Details:   make(map[string]interface{}),
	}

	if p.pinger == nil {
		status.Status = statusUnhealthy
		status.Error = p.component + " is not configured"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	if err := p.pinger.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}

	status.Status = statusHealthy
	status.Details["connected"] = true
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	return status
}

// WeatherProviderHealthChecker judges the provider by the last ingestion pass.
// It never calls the upstream API. A pass that stored nothing out of a
// non-empty city list marks the provider unhealthy.
type WeatherProviderHealthChecker struct {
	provider ports.WeatherProvider
	runs     ports.IngestStatusSource
	cities   int
}

func NewWeatherProviderHealthChecker(provider ports.WeatherProvider, runs ports.IngestStatusSource, cities int) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{provider: provider, runs: runs, cities: cities}
}

func (w *WeatherProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weather_provider",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"cities": w.cities,
		},
	}

	if w.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not configured"
		return status
	}
	status.Details["provider"] = w.provider.GetProviderName()

	if w.runs == nil {
		return status
	}
	run, ok := w.runs.LastIngestRun()
	if !ok {
		status.Details["last_run"] = "none"
		return status
	}

	status.Details["last_run_at"] = run.FinishedAt.UTC().Format(time.RFC3339)
	status.Details["last_run_succeeded"] = run.Succeeded
	status.Details["last_run_failed"] = run.Failed
	if run.Total > 0 && run.Succeeded == 0 {
		status.Status = statusUnhealthy
		status.Error = fmt.Sprintf("last ingestion run stored none of %d cities", run.Total)
	}
	return status
}
