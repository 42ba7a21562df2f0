// Package backup dumps the observation table to a JSON file
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

// ObservationSource is the part of the repository a backup reads from
type ObservationSource interface {
	All(ctx context.Context) ([]*ports.ObservationData, error)
}

// JSONBackup writes every stored observation as a pretty-printed JSON array
type JSONBackup struct {
	source ObservationSource
	logger ports.Logger
}

func NewJSONBackup(source ObservationSource, logger ports.Logger) *JSONBackup {
	return &JSONBackup{source: source, logger: logger}
}

// Write replaces the file at path and returns the number of rows written.
// An empty table is an error and leaves path untouched.
func (b *JSONBackup) Write(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, errors.NewValidationError("backup path cannot be empty")
	}

	rows, err := b.source.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("read observations for backup: %w", err)
	}
	if len(rows) == 0 {
		b.logger.Warn("Backup skipped, weather_data is empty", ports.F("path", path))
		return 0, errors.NewNotFoundError("weather_data has no rows to back up")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rows); err != nil {
		return 0, fmt.Errorf("encode backup: %w", err)
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return 0, err
	}

	b.logger.Info("Backup of weather_data completed",
		ports.F("path", path),
		ports.F("rows", len(rows)))
	return len(rows), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write backup file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close backup file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod backup file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move backup file into place: %w", err)
	}
	return nil
}
