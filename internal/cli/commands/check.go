package commands

import (
	"fmt"

	"fixturegen/internal/config"
	"fixturegen/internal/discovery"
	"fixturegen/internal/storage"
	"fixturegen/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	loader    *fixtureLoader
	inspector *discovery.Inspector
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(
	cfg *config.Config,
	loader *fixtureLoader,
	inspector *discovery.Inspector,
	st storage.Storage,
	formatter *ui.Formatter,
) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		loader:    loader,
		inspector: inspector,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	fixtures, err := cc.loader.Load()
	if err != nil {
		return err
	}

	// Create and set progress bar
	cc.inspector.SetProgress(ui.NewProgressBar(len(fixtures), cmd.ErrOrStderr()))

	report, err := cc.inspector.Inspect(fixtures, cc.config.GetInputDir(), cc.config.GetExpectedDir())
	if err != nil {
		return err
	}

	// Expected files of filtered-out inputs are not orphans
	report.OrphanExpected = cc.loader.filter.FilterNames(report.OrphanExpected, cc.config.Flags.NameFilter)

	cc.formatter.PrintCheckReport(cmd.OutOrStdout(), report, cc.config.Strict())

	if reportPath := cc.config.GetReportPath(); reportPath != "" {
		if err := cc.storage.SaveReport(report); err != nil {
			return fmt.Errorf("failed to save check report: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✓ Report saved to %s\n", reportPath)
	}

	if report.Fails(cc.config.Strict()) {
		nameIssues := len(report.NameIssues)
		if !cc.config.Strict() {
			nameIssues = 0
		}
		return fmt.Errorf("%w: %d name issue(s), %d orphan expected file(s)",
			ErrCheckFailed, nameIssues, len(report.OrphanExpected))
	}
	return nil
}
