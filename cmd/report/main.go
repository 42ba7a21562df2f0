package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"weatherstats.app/internal/app"
	"weatherstats.app/internal/config"
	"weatherstats.app/pkg/logger"
)

func main() {
	opts, err := parseOptions(os.Args[1:], interactiveStdin(), os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.LogLevel)

	ctx := context.Background()
	application, err := app.New(ctx, cfg, app.Options{Logger: log.Logger})
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	result, err := application.ReportUseCase().Run(ctx, opts.query)
	if err != nil {
		log.Error("Report failed", "data_type", string(opts.query.DataType), "error", err)
		application.Close()
		os.Exit(1)
	}
	defer application.Close()

	for _, line := range result.Lines() {
		log.Info(line)
	}

	if opts.json {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			log.Error("Failed to print result", "error", err)
		}
	}
}

// interactiveStdin returns stdin when it is a terminal, nil otherwise
func interactiveStdin() io.Reader {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return nil
	}
	return os.Stdin
}
