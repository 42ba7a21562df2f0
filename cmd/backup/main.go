package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"weatherstats.app/internal/app"
	"weatherstats.app/internal/config"
	"weatherstats.app/pkg/errors"
	"weatherstats.app/pkg/logger"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitEmpty  = 3
)

type backupWriter interface {
	Write(ctx context.Context, path string) (int, error)
}

// run writes the backup and maps the outcome to an exit code. An empty table is a failure.
func run(ctx context.Context, backup backupWriter, out string, log *slog.Logger) int {
	rows, err := backup.Write(ctx, out)
	switch {
	case errors.IsNotFoundError(err):
		log.Error("Nothing to back up", "path", out, "error", err)
		return exitEmpty
	case err != nil:
		log.Error("Backup failed", "path", out, "error", err)
		return exitFailed
	default:
		log.Info("Backup written", "path", out, "rows", rows)
		return exitOK
	}
}

func main() {
	out := flag.String("out", "weather_data_backup.json", "path of the JSON backup file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(exitFailed)
	}
	log := logger.Setup(cfg.LogLevel)

	ctx := context.Background()
	application, err := app.New(ctx, cfg, app.Options{Logger: log.Logger})
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		os.Exit(exitFailed)
	}

	code := run(ctx, application.Backup(), *out, log.Logger)
	if err := application.Close(); err != nil {
		log.Warn("Error releasing resources", "error", err)
	}
	os.Exit(code)
}
