package infrastructure

import (
	"context"
	"sort"
	"sync"

	"weatherstats.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers       map[string]ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker drops nil checkers
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker, len(config.Checkers))
	for name, checker := range config.Checkers {
		if checker != nil {
			checkers[name] = checker
		}
	}
	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs every checker concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, checker := range s.checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	if s.configProvider != nil {
		ingest := s.configProvider.GetIngestConfig()
		report := s.configProvider.GetReportConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"cities":        len(ingest.Cities),
				"workers":       ingest.Workers,
				"timezone":      report.Location.String(),
				"cache_enabled": report.CacheEnabled,
			},
		}
	}

	return results
}

// Healthy reports whether every result has status healthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}

// Unhealthy lists the failing components in name order
func Unhealthy(results map[string]ports.HealthStatus) []string {
	var names []string
	for name, status := range results {
		if status.Status != statusHealthy {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
