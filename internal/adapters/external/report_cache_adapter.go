package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

// ReportCacheAdapter bridges the byte-oriented CacheProvider to the ReportCache port
type ReportCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewReportCacheAdapter creates a report cache on top of a generic cache provider
func NewReportCacheAdapter(cacheProvider ports.CacheProvider) ports.ReportCache {
	return &ReportCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get decodes the cached value into target
func (a *ReportCacheAdapter) Get(ctx context.Context, key string, target interface{}) error {
	data, err := a.cacheProvider.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return errors.NewExternalAPIError("failed to deserialize cached report", err)
	}
	return nil
}

// Set encodes value as JSON and stores it
func (a *ReportCacheAdapter) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if value == nil {
		return errors.NewValidationError("report cannot be nil")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize report", err)
	}

	return a.cacheProvider.Set(ctx, key, data, ttl)
}

// Invalidate drops every cached report
func (a *ReportCacheAdapter) Invalidate(ctx context.Context) error {
	return a.cacheProvider.Clear(ctx)
}
