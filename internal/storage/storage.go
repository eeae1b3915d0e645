package storage

import (
	"fixturegen/internal/config"
	"fixturegen/internal/domain"
)

// Storage persists generated source and check reports
type Storage interface {
	// WriteGenerated writes the generated macro lines to the configured output file.
	WriteGenerated(data []byte) error
	SaveReport(report *domain.CheckReport) error
}

// FileStorage writes to paths resolved from the config
type FileStorage struct {
	cfg *config.Config
}

// NewFileStorage returns a Storage that writes to the config's output and report paths.
func NewFileStorage(cfg *config.Config) *FileStorage {
	return &FileStorage{cfg: cfg}
}
