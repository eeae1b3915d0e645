package main

import (
	"os"

	"fixturegen/internal/cli"
	"fixturegen/internal/cli/commands"
	"fixturegen/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Test declaration generator for input/expected fixtures",
		Long: `Scan an input fixture directory and an expected-output directory and print one
test_a_file! invocation per input fixture. Fixtures without a same-named expected
file are emitted as failure cases. Redirect the output into a generated source file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
