package commands

import (
	"bytes"
	"fmt"

	"fixturegen/internal/config"
	"fixturegen/internal/discovery"
	"fixturegen/internal/emit"
	"fixturegen/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config  *config.Config
	loader  *fixtureLoader
	storage storage.Storage
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, loader *fixtureLoader, st storage.Storage) *GenerateCommand {
	return &GenerateCommand{
		config:  cfg,
		loader:  loader,
		storage: st,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	fixtures, err := gc.loader.Load()
	if err != nil {
		return err
	}

	// Nothing is written unless every name is usable
	if gc.config.Strict() {
		if err := discovery.ValidateNames(fixtures); err != nil {
			return err
		}
	}

	if len(fixtures) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "No fixtures found")
	}

	emitter := emit.NewEmitter(gc.config.GetInputPrefix(), gc.config.GetExpectedPrefix())

	outputPath := gc.config.GetOutputPath()
	if outputPath == "" {
		return emitter.Emit(cmd.OutOrStdout(), fixtures)
	}

	var buf bytes.Buffer
	if err := emitter.Emit(&buf, fixtures); err != nil {
		return err
	}
	if err := gc.storage.WriteGenerated(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save generated output: %w", err)
	}

	color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d fixture(s) to %s\n", len(fixtures), outputPath)
	return nil
}
