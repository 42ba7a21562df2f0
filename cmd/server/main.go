package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"weatherstats.app/internal/app"
	"weatherstats.app/internal/config"
	"weatherstats.app/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.LogLevel)

	if err := cfg.ValidateForIngestion(); err != nil {
		log.Error("Invalid ingestion configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, app.Options{Metrics: true, Logger: log.Logger})
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("Error releasing resources", "error", err)
		}
	}()

	log.Info("Starting weather statistics service...",
		"port", application.Config().Server.Port,
		"cities", len(cfg.Weather.Cities),
		"interval_minutes", cfg.Ingest.IntervalMinutes)
	if err := application.Serve(ctx, shutdownTimeout); err != nil {
		log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}
