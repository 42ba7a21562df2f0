package main

import (
	"context"
	"log/slog"
	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"weatherstats.app/internal/app"
	"weatherstats.app/internal/config"
	"weatherstats.app/pkg/logger"
)

func setup(ctx context.Context) (ingester, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateForIngestion(); err != nil {
		return nil, err
	}
	application, err := app.New(ctx, cfg, app.Options{Logger: slog.Default()})
	if err != nil {
		return nil, err
	}
	return application, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}
	log := logger.Setup(logLevel())

	h := &handler{setup: setup, logger: log.Logger}
	lambda.Start(h.Handle)
}

func logLevel() string {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "info"
	}
	return cfg.LogLevel
}
