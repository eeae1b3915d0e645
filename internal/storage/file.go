package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fixturegen/internal/domain"
)

// ErrNoPath is returned when a write is requested without a configured destination
var ErrNoPath = errors.New("no destination path configured")

// WriteGenerated writes the generated source to the configured output path.
func (s *FileStorage) WriteGenerated(data []byte) error {
	return writeFile(s.cfg.GetOutputPath(), data)
}

// SaveReport writes the check report as indented JSON to the configured report path.
func (s *FileStorage) SaveReport(report *domain.CheckReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return writeFile(s.cfg.GetReportPath(), data)
}

func writeFile(path string, data []byte) error {
	if path == "" {
		return ErrNoPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
