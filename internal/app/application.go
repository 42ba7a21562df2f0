package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherstats.app/internal/adapters/api"
	"weatherstats.app/internal/adapters/backup"
	"weatherstats.app/internal/adapters/infrastructure"
	"weatherstats.app/internal/adapters/scheduler"
	"weatherstats.app/internal/config"
	"weatherstats.app/internal/core/observation"
	"weatherstats.app/internal/core/report"
	"weatherstats.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	ingestUseCase *observation.UseCase
	reportUseCase *report.UseCase
	backup        *backup.JSONBackup

	// Adapters, built by Serve
	httpServer *http.Server
	router     *gin.Engine
	scheduler  *scheduler.IngestScheduler
	registry   *prometheus.Registry

	ports *ports.ApplicationPorts
}

// Options control which optional adapters are wired
type Options struct {
	// Metrics registers Prometheus collectors on a registry served at /metrics
	Metrics bool
	Logger  *slog.Logger
}

// New connects to the database, makes sure weather_data exists and builds the use cases
func New(ctx context.Context, cfg *config.Config, opts Options) (*Application, error) {
	app := &Application{config: cfg}

	var registerer prometheus.Registerer
	if opts.Metrics {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		registerer = app.registry
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{MetricsRegisterer: registerer, Logger: opts.Logger})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}
	app.deps = deps
	app.ports = deps.ApplicationPorts()

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.ingestUseCase.EnsureSchema(ctx); err != nil {
		_ = deps.Cleanup()
		return nil, err
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	ingestUseCase, err := observation.NewUseCase(observation.UseCaseDependencies{
		Provider:   a.ports.WeatherProvider,
		Repository: a.ports.ObservationRepository,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create ingest use case: %w", err)
	}
	a.ingestUseCase = ingestUseCase

	reportUseCase, err := report.NewUseCase(report.UseCaseDependencies{
		Repository: a.ports.ObservationRepository,
		Cache:      a.ports.ReportCache,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create report use case: %w", err)
	}
	a.reportUseCase = reportUseCase

	a.deps.AddHealthChecker("weather_provider", infrastructure.NewWeatherProviderHealthChecker(
		a.ports.WeatherProvider, ingestUseCase, len(a.config.Weather.Cities)))

	a.backup = backup.NewJSONBackup(a.ports.ObservationRepository, a.ports.Logger)

	slog.Info("Use cases initialized successfully")
	return nil
}

// IngestConfigured runs one ingestion pass and drops cached reports when new rows landed
func (a *Application) IngestConfigured(ctx context.Context) observation.IngestReport {
	result := a.ingestUseCase.IngestConfigured(ctx)
	if result.Succeeded > 0 {
		a.reportUseCase.InvalidateCache(ctx)
	}
	return result
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       a.deps.HealthCheckers(),
		ConfigProvider: a.ports.ConfigProvider,
	})

	var metricsHandler http.Handler
	if a.registry != nil {
		metricsHandler = promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})
	} else {
		metricsHandler = http.NotFoundHandler()
	}

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		ReportUseCase:  a.reportUseCase,
		IngestUseCase:  a,
		HealthChecker:  systemHealthChecker,
		MetricsHandler: metricsHandler,
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()
	a.httpServer = &http.Server{
		Addr:         httpAdapter.Addr(),
		Handler:      httpAdapter.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(a.config.Ingest.TimeoutSeconds)*time.Second + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ingestScheduler, err := scheduler.New(scheduler.Options{
		Runner:      a.ingestUseCase,
		Invalidator: a.reportUseCase,
		Logger:      a.ports.Logger,
		Interval:    time.Duration(a.config.Ingest.IntervalMinutes) * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	a.scheduler = ingestScheduler

	slog.Info("Adapters initialized successfully")
	return nil
}

// Serve starts scheduled ingestion and the HTTP server, and blocks until ctx
// is cancelled or the server fails. It shuts both down before returning.
func (a *Application) Serve(ctx context.Context, shutdownTimeout time.Duration) error {
	if a.httpServer == nil {
		if err := a.initializeAdapters(); err != nil {
			return fmt.Errorf("initialize adapters: %w", err)
		}
	}

	if err := a.scheduler.Start(ctx); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", a.config.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("HTTP server error: %w", err)
			return
		}
		serverErr <- nil
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.Error("Error shutting down HTTP server", "error", err)
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Close releases database, cache and log file handles
func (a *Application) Close() error {
	return a.deps.Cleanup()
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Handler builds the HTTP adapters if needed and returns the router
func (a *Application) Handler() (http.Handler, error) {
	if a.router == nil {
		if err := a.initializeAdapters(); err != nil {
			return nil, fmt.Errorf("initialize adapters: %w", err)
		}
	}
	return a.router, nil
}

func (a *Application) ReportUseCase() *report.UseCase {
	return a.reportUseCase
}

func (a *Application) Backup() *backup.JSONBackup {
	return a.backup
}
