// Package ports defines the interfaces between the ingestion/reporting use cases and
// the adapters that talk to OpenWeatherMap, the database, caches and metrics.
// These interfaces are implemented by adapters and mocked for testing.
//
//go:generate mockery
package ports
