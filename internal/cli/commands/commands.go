package commands

import (
	"fixturegen/internal/cli"
	"fixturegen/internal/config"
	"fixturegen/internal/discovery"
	"fixturegen/internal/storage"
	"fixturegen/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Check    *CheckCommand
	Browse   *BrowseCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	loader := newFixtureLoader(cfg, scanner, filter)
	inspector := discovery.NewInspector(scanner)
	fileStorage := storage.NewFileStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFixtureViewer(cfg)

	return &Commands{
		Generate: NewGenerateCommand(cfg, loader, fileStorage),
		List:     NewListCommand(cfg, loader, formatter),
		Check:    NewCheckCommand(cfg, loader, inspector, fileStorage, formatter),
		Browse:   NewBrowseCommand(loader, viewer),
	}
}

// Register registers all commands with cobra. Running the root command without
// a subcommand generates macro lines.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.Generate.Execute
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
		return cfg.LoadEnv()
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.InputDir, "input-dir", "", "Directory with input fixtures (default \""+config.DefaultInputDir+"\")")
	pf.StringVar(&flags.ExpectedDir, "expected-dir", "", "Directory with expected-output fixtures (default \""+config.DefaultExpectedDir+"\")")
	pf.StringVar(&flags.InputPrefix, "input-prefix", "", "Path prefix for input files in include_str! (default \""+config.DefaultInputPrefix+"\")")
	pf.StringVar(&flags.ExpectedPrefix, "expected-prefix", "", "Path prefix for expected files in include_str! (default \""+config.DefaultExpectedPrefix+"\")")
	pf.StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixtures by filename pattern (supports wildcards, e.g., '*.kdl' or '*escape*')")
	pf.StringVar(&flags.EnvFile, "env-file", "", "Env file with FIXTUREGEN_* settings (default \".env\" in the working directory, optional)")
	pf.BoolVar(&flags.NoSort, "no-sort", false, "Keep directory order instead of sorting fixtures by filename")
	pf.BoolVar(&flags.AllowInvalidNames, "allow-invalid-names", false, "Emit fixture names as-is even when they are not valid identifiers or collide (quotes and backslashes in include paths are still escaped)")

	rootCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write generated lines to this file instead of stdout")

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate test_a_file! invocations for every input fixture",
		Long:  "List the input fixture directory and print one test_a_file! line per fixture, marking fixtures without expected output as failure cases",
		Args:  cobra.NoArgs,
		RunE:  c.Generate.Execute,
	}
	generateCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write generated lines to this file instead of stdout")
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered fixtures",
		Long:  "Scan and list all fixtures and whether each has an expected output, without generating anything",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVarP(&flags.Stats, "stats", "s", false, "Print success/failure counts after the list")
	rootCmd.AddCommand(listCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check fixtures for problems",
		Long:  "Read every fixture and report invalid or colliding names, expected files without input and inputs with identical contents",
		Args:  cobra.NoArgs,
		RunE:  c.Check.Execute,
	}
	checkCmd.Flags().StringVar(&flags.Report, "report", "", "Save the check report as JSON to this path")
	rootCmd.AddCommand(checkCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse fixtures interactively",
		Long:  "Display fixtures with their input and expected contents in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Browse.Execute,
	}
	rootCmd.AddCommand(browseCmd)
}
