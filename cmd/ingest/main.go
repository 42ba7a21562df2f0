package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"weatherstats.app/internal/app"
	"weatherstats.app/internal/config"
	"weatherstats.app/pkg/logger"
)

func main() {
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

	application, err := app.New(ctx, cfg, app.Options{Logger: log.Logger})
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	result := application.IngestConfigured(ctx)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Error("Failed to print ingestion report", "error", err)
	}
	if result.Failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d cities failed: %v\n", result.Failed, result.Total, result.FailedCities)
	}
}
