package commands

import (
	"fixturegen/internal/ui"

	"github.com/spf13/cobra"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	loader *fixtureLoader
	viewer ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(loader *fixtureLoader, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{
		loader: loader,
		viewer: viewer,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	fixtures, err := bc.loader.Load()
	if err != nil {
		return err
	}

	return bc.viewer.View(fixtures)
}
