package infrastructure

import (
	"time"

	"weatherstats.app/internal/config"
	"weatherstats.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config   *config.Config
	location *time.Location
}

// NewConfigProviderAdapter resolves the report time zone once; LoadConfig has already validated it
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	loc, err := cfg.Report.Location()
	if err != nil {
		loc = time.UTC
	}
	return &ConfigProviderAdapter{
		config:   cfg,
		location: loc,
	}
}

// GetIngestConfig returns ingestion settings
func (c *ConfigProviderAdapter) GetIngestConfig() ports.IngestConfig {
	return ports.IngestConfig{
		Cities:  append([]string(nil), c.config.Weather.Cities...),
		Workers: c.config.Ingest.Workers,
		Timeout: c.config.Ingest.Timeout(),
	}
}

// GetReportConfig returns reporting settings
func (c *ConfigProviderAdapter) GetReportConfig() ports.ReportConfig {
	return ports.ReportConfig{
		Location:     c.location,
		CacheEnabled: c.config.Report.CacheEnabled,
		CacheTTL:     c.config.Report.CacheTTL(),
	}
}
