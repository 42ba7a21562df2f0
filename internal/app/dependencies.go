package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"weatherstats.app/internal/adapters/database"
	"weatherstats.app/internal/adapters/external"
	"weatherstats.app/internal/adapters/infrastructure"
	"weatherstats.app/internal/config"
	"weatherstats.app/internal/ports"
)

type DependencyContainer struct {
	config         *config.Config
	db             *gorm.DB
	repository     *database.ObservationRepositoryAdapter
	cacheProvider  ports.CacheProvider
	healthCheckers map[string]ports.HealthChecker
	closers        []io.Closer
	ports          *ports.ApplicationPorts
}

// DependencyOptions tune how ports are built
type DependencyOptions struct {
	// MetricsRegisterer enables Prometheus metrics; nil discards them
	MetricsRegisterer prometheus.Registerer
	// Logger defaults to the slog default logger
	Logger *slog.Logger
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:         cfg,
		healthCheckers: make(map[string]ports.HealthChecker),
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(opts); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", string(c.config.Database.DriverFromURL()))

	db, err := database.Open(c.config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	c.db = db
	c.repository = database.NewObservationRepositoryAdapter(db)
	c.healthCheckers["database"] = infrastructure.NewDatabaseHealthChecker(c.repository)
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(opts.Logger)

	var providerLogger ports.Logger = logger
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.closers = append(c.closers, fileLogger)
			providerLogger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	provider := external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  c.config.Weather.OpenWeatherMapKey,
		BaseURL: c.config.Weather.OpenWeatherMapBaseURL,
		Timeout: c.config.Weather.HTTPTimeout(),
		Logger:  logger,
	})
	if c.config.Weather.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, providerLogger)
		slog.Info("Weather provider logging enabled")
	}

	var reportCache ports.ReportCache
	if c.config.Report.CacheEnabled {
		cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
		if err != nil {
			return fmt.Errorf("create cache provider: %w", err)
		}
		c.cacheProvider = cacheProvider
		if redisProvider, ok := cacheProvider.(*external.RedisCacheProviderAdapter); ok {
			c.closers = append(c.closers, redisProvider)
			c.healthCheckers["redis"] = infrastructure.NewRedisHealthChecker(redisProvider)
		}
		reportCache = external.NewReportCacheAdapter(cacheProvider)
		slog.Info("Report cache enabled",
			"type", c.config.Cache.Type.String(),
			"ttl", c.config.Report.CacheTTL().String())
	}

	var metrics ports.MetricsRecorder = infrastructure.NoopMetrics{}
	if opts.MetricsRegisterer != nil {
		metrics = infrastructure.NewPrometheusMetrics(opts.MetricsRegisterer)
	}

	c.ports = &ports.ApplicationPorts{
		WeatherProvider:       provider,
		ObservationRepository: c.repository,
		ReportCache:           reportCache,
		Metrics:               metrics,

		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         logger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// AddHealthChecker registers a checker built after the container, keyed by component
func (c *DependencyContainer) AddHealthChecker(component string, checker ports.HealthChecker) {
	c.healthCheckers[component] = checker
}

// HealthCheckers returns the checkers for every wired backend, keyed by component
func (c *DependencyContainer) HealthCheckers() map[string]ports.HealthChecker {
	return c.healthCheckers
}

// Cleanup releases the database, cache and log file handles
func (c *DependencyContainer) Cleanup() error {
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			slog.Warn("Error releasing resource", "error", err)
		}
	}
	c.closers = nil

	if c.db != nil {
		return database.Close(c.db)
	}
	return nil
}
