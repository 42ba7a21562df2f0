package ports

import (
	"time"
)

// IngestConfig represents ingestion settings
type IngestConfig struct {
	Cities  []string
	Workers int
	Timeout time.Duration
}

// ReportConfig represents reporting settings
type ReportConfig struct {
	Location     *time.Location
	CacheEnabled bool
	CacheTTL     time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetIngestConfig() IngestConfig
	GetReportConfig() ReportConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Ingestion outcomes reported to MetricsRecorder.
const (
	OutcomeStored        = "stored"
	OutcomeFetchFailed   = "fetch_failed"
	OutcomeInvalid       = "invalid"
	OutcomePersistFailed = "persist_failed"
)

// MetricsRecorder defines the contract for metrics collection
type MetricsRecorder interface {
	RecordCityIngest(outcome string, duration time.Duration)
	RecordIngestRun(succeeded, failed int, duration time.Duration)
	RecordReportQuery(kind string, duration time.Duration, err error)
	RecordReportCache(hit bool)
}
