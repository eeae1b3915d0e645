package commands

import (
	"fixturegen/internal/config"
	"fixturegen/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *fixtureLoader
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *fixtureLoader,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	fixtures, err := lc.loader.Load()
	if err != nil {
		return err
	}

	if len(fixtures) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No fixtures found")
		return nil
	}

	lc.formatter.PrintFixtureList(cmd.OutOrStdout(), fixtures, lc.config.Flags.Stats)
	return nil
}
