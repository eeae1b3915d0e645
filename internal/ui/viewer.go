package ui

import "fixturegen/internal/domain"

// Viewer displays fixtures in an interactive TUI
type Viewer interface {
	View(fixtures []domain.Fixture) error
}
