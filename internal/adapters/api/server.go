// Package api exposes the reporting and ingestion use cases over HTTP
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherstats.app/internal/core/observation"
	"weatherstats.app/internal/core/report"
	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	reportUseCase  ReportUseCase
	ingestUseCase  IngestUseCase
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler
	logger         ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type ReportUseCase interface {
	Run(ctx context.Context, q report.Query) (*report.Result, error)
}

type IngestUseCase interface {
	IngestConfigured(ctx context.Context) observation.IngestReport
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	ReportUseCase ReportUseCase
	IngestUseCase IngestUseCase
	HealthChecker ports.SystemHealthChecker
	// MetricsHandler defaults to promhttp.Handler()
	MetricsHandler http.Handler
	Logger         ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if opts.MetricsHandler == nil {
		opts.MetricsHandler = promhttp.Handler()
	}
	registerValidators()

	router := gin.New()

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		reportUseCase:  opts.ReportUseCase,
		ingestUseCase:  opts.IngestUseCase,
		healthChecker:  opts.HealthChecker,
		metricsHandler: opts.MetricsHandler,
		logger:         opts.Logger,
	}

	router.Use(gin.Recovery(), server.requestLogger())
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ReportUseCase == nil {
		return errors.NewValidationError("report use case is required")
	}
	if opts.IngestUseCase == nil {
		return errors.NewValidationError("ingest use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/stats/:data_type", s.getStats)
		api.POST("/ingest", s.postIngest)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Handler returns the router as an http.Handler
func (s *HTTPServerAdapter) Handler() http.Handler {
	return s.router
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// Addr is the listen address derived from the configured port
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf(":%d", s.config.Port)
}

func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}
