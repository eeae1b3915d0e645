package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fixturegen/internal/cli"
	"fixturegen/internal/config"
	"fixturegen/internal/discovery"
	"fixturegen/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// newProject creates tests/input and tests/expected_kdl under a temp project directory
func newProject(t *testing.T, inputs []string, expected []string) string {
	t.Helper()
	project := t.TempDir()
	for dir, names := range map[string][]string{
		config.DefaultInputDir:    inputs,
		config.DefaultExpectedDir: expected,
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(project, dir), 0755))
		for _, name := range names {
			require.NoError(t, os.WriteFile(filepath.Join(project, dir, name), []byte("node "+name), 0644))
		}
	}
	return project
}

// runCLI builds the command tree the way main does and runs it against project
func runCLI(t *testing.T, project string, args ...string) (string, string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "fixturegen", SilenceUsage: true, SilenceErrors: true}
	cfg := config.New()
	cfg.ProjectPath = project

	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerate_SuccessAndFailureLines(t *testing.T) {
	project := newProject(t, []string{"a.txt", "b.txt"}, []string{"a.txt"})

	stdout, _, err := runCLI(t, project)
	require.NoError(t, err)

	expected := `test_a_file!(include_str!("input/a.txt"), include_str!("expected_kdl/a.txt"), a);
test_a_file!(fail include_str!("input/b.txt"), b);
`
	assert.Equal(t, expected, stdout)

	// The explicit subcommand behaves the same
	stdout2, _, err := runCLI(t, project, "generate")
	require.NoError(t, err)
	assert.Equal(t, stdout, stdout2)
}

func TestGenerate_OneLinePerInputFile(t *testing.T) {
	inputs := []string{"arg.kdl", "README", "escline.kdl", "node.kdl", "prop.kdl"}
	project := newProject(t, inputs, []string{"arg.kdl", "node.kdl", "other.kdl"})

	stdout, _, err := runCLI(t, project)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, len(inputs))

	failures := 0
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "test_a_file!("), line)
		assert.True(t, strings.HasSuffix(line, ");"), line)
		if strings.HasPrefix(line, "test_a_file!(fail ") {
			failures++
		}
	}
	assert.Equal(t, 3, failures)
	assert.Contains(t, stdout, `test_a_file!(fail include_str!("input/README"), README);`)
	assert.Contains(t, stdout, `test_a_file!(include_str!("input/node.kdl"), include_str!("expected_kdl/node.kdl"), node);`)
}

func TestGenerate_Idempotent(t *testing.T) {
	project := newProject(t, []string{"c.kdl", "a.kdl", "b.kdl"}, []string{"b.kdl"})

	first, _, err := runCLI(t, project)
	require.NoError(t, err)
	second, _, err := runCLI(t, project)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Directory order yields the same set of lines
	unsorted, _, err := runCLI(t, project, "--no-sort")
	require.NoError(t, err)
	assert.ElementsMatch(t, strings.Split(first, "\n"), strings.Split(unsorted, "\n"))
}

func TestGenerate_EmptyInputDir(t *testing.T) {
	project := newProject(t, nil, nil)

	stdout, stderr, err := runCLI(t, project)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No fixtures found")
}

func TestGenerate_MissingInputDir(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Empty(t, stdout)
}

func TestGenerate_InvalidNames(t *testing.T) {
	project := newProject(t, []string{"a.kdl", "a-b.kdl"}, nil)

	stdout, _, err := runCLI(t, project)
	require.Error(t, err)
	assert.ErrorIs(t, err, discovery.ErrInvalidIdentifier)
	assert.Empty(t, stdout, "nothing is emitted when a name is rejected")

	stdout, _, err = runCLI(t, project, "--allow-invalid-names")
	require.NoError(t, err)
	assert.Contains(t, stdout, `test_a_file!(fail include_str!("input/a-b.kdl"), a-b);`)
}

func TestGenerate_NameConflict(t *testing.T) {
	project := newProject(t, []string{"x.kdl", "x.txt"}, nil)

	_, _, err := runCLI(t, project)
	require.Error(t, err)
	assert.ErrorIs(t, err, discovery.ErrNameConflict)

	stdout, _, err := runCLI(t, project, "--allow-invalid-names")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, ", x);"))
}

func TestGenerate_Filter(t *testing.T) {
	project := newProject(t, []string{"arg.kdl", "escline.kdl", "escline_node.kdl"}, nil)

	stdout, _, err := runCLI(t, project, "-f", "*escline*")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "\n"))
	assert.NotContains(t, stdout, "arg.kdl")
}

func TestGenerate_CustomDirsAndPrefixes(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, "in"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(project, "out"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "in", "a.kdl"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(project, "out", "a.kdl"), []byte("a"), 0644))

	stdout, _, err := runCLI(t, project,
		"--input-dir", "in", "--expected-dir", "out",
		"--input-prefix", "../in", "--expected-prefix", "../out")
	require.NoError(t, err)
	assert.Equal(t, `test_a_file!(include_str!("../in/a.kdl"), include_str!("../out/a.kdl"), a);`+"\n", stdout)
}

func TestGenerate_OutputFile(t *testing.T) {
	project := newProject(t, []string{"a.txt", "b.txt"}, []string{"a.txt"})

	stdout, stderr, err := runCLI(t, project, "generate", "-o", "tests/generated.rs")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Wrote 2 fixture(s)")

	data, err := os.ReadFile(filepath.Join(project, "tests", "generated.rs"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "test_a_file!"))

	// Also accepted on the root command
	_, _, err = runCLI(t, project, "--output", "tests/root.rs")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(project, "tests", "root.rs"))
}

func TestGenerate_RejectsArguments(t *testing.T) {
	project := newProject(t, []string{"a.txt"}, nil)

	_, _, err := runCLI(t, project, "tests/input")
	assert.Error(t, err)
}

func TestGenerate_EnvFile(t *testing.T) {
	// godotenv sets process variables; register cleanup before it runs
	t.Setenv(config.EnvInputDir, "")
	os.Unsetenv(config.EnvInputDir)

	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, "fixtures"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "fixtures", "a.kdl"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(project, "custom.env"), []byte(config.EnvInputDir+"=fixtures\n"), 0644))

	stdout, _, err := runCLI(t, project, "--env-file", filepath.Join(project, "custom.env"))
	require.NoError(t, err)
	assert.Equal(t, `test_a_file!(fail include_str!("input/a.kdl"), a);`+"\n", stdout)
}

func TestList(t *testing.T) {
	project := newProject(t, []string{"a.kdl", "b.kdl"}, []string{"a.kdl"})

	stdout, _, err := runCLI(t, project, "list", "--stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Found 2 fixture(s)")
	assert.Contains(t, stdout, "✓ a.kdl -> expected_kdl/a.kdl")
	assert.Contains(t, stdout, "✗ b.kdl (fail)")
	assert.Contains(t, stdout, "Failure Cases")
}

func TestList_Empty(t *testing.T) {
	project := newProject(t, nil, nil)

	stdout, _, err := runCLI(t, project, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No fixtures found")
}

func TestCheck_Clean(t *testing.T) {
	project := newProject(t, []string{"a.kdl", "b.kdl"}, []string{"a.kdl"})

	stdout, _, err := runCLI(t, project, "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Fixture Check Report")
	assert.Contains(t, stdout, "All fixtures can be generated")
}

func TestCheck_Problems(t *testing.T) {
	project := newProject(t, []string{"a.kdl", "fn.kdl"}, []string{"a.kdl", "orphan.kdl"})
	reportPath := filepath.Join(project, "report.json")

	stdout, stderr, err := runCLI(t, project, "check", "--report", reportPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, err.Error(), "1 name issue(s), 1 orphan expected file(s)")
	assert.Contains(t, stdout, "fn: reserved keyword")
	assert.Contains(t, stderr, "Report saved")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report domain.CheckReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.Meta.TotalFixtures)
	assert.Equal(t, []string{"orphan.kdl"}, report.OrphanExpected)
}

func TestCheck_LenientIgnoresNameIssues(t *testing.T) {
	project := newProject(t, []string{"a-b.kdl"}, nil)

	_, _, err := runCLI(t, project, "check")
	assert.ErrorIs(t, err, ErrCheckFailed)

	_, _, err = runCLI(t, project, "check", "--allow-invalid-names")
	assert.NoError(t, err)
}

func TestCheck_FilterDoesNotReportOrphans(t *testing.T) {
	project := newProject(t, []string{"a.kdl", "b.kdl"}, []string{"a.kdl", "b.kdl", "gone.kdl"})

	stdout, _, err := runCLI(t, project, "check", "-f", "a*")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "b.kdl has no input fixture")
	assert.Contains(t, stdout, "All fixtures can be generated")

	// Orphans matching the pattern are still reported
	stdout, _, err = runCLI(t, project, "check", "-f", "*.kdl")
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, stdout, "expected_kdl/gone.kdl has no input fixture")
	assert.NotContains(t, stdout, "expected_kdl/b.kdl has no input fixture")
}

func TestCheck_LenientReportAgreesWithExitStatus(t *testing.T) {
	project := newProject(t, []string{"a-b.kdl"}, nil)

	stdout, _, err := runCLI(t, project, "check", "--allow-invalid-names")
	require.NoError(t, err)
	assert.Contains(t, stdout, "All fixtures can be generated")
	assert.Contains(t, stdout, "! a-b: not a valid identifier (a-b.kdl)")
}

func TestGenerate_LenientStillEscapesLiterals(t *testing.T) {
	project := newProject(t, []string{`q"x.kdl`}, nil)

	stdout, _, err := runCLI(t, project, "--allow-invalid-names")
	require.NoError(t, err)
	assert.Equal(t, `test_a_file!(fail include_str!("input/q\"x.kdl"), q"x);`+"\n", stdout)

	rootCmd := &cobra.Command{Use: "fixturegen"}
	var flags cli.Flags
	NewCommands(config.New()).Register(rootCmd, &flags, config.New())
	usage := rootCmd.PersistentFlags().Lookup("allow-invalid-names").Usage
	assert.Contains(t, usage, "still escaped")
}
