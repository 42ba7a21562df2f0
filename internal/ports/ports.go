package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	WeatherProvider       WeatherProvider
	ObservationRepository ObservationRepository
	ReportCache           ReportCache
	Metrics               MetricsRecorder

	ConfigProvider ConfigProvider
	Logger         Logger
}
