package ui

import (
	"fmt"
	"io"
	"path"
	"strings"

	"fixturegen/internal/config"
	"fixturegen/internal/domain"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan)
	passColor    = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	neutralColor = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintFixtureList prints a tree of fixtures. Fixtures with an expected file are
// shown in green with the include path they pair with, the rest in red.
func (f *Formatter) PrintFixtureList(w io.Writer, fixtures []domain.Fixture, showStats bool) {
	passColor.Fprintf(w, "Found %d fixture(s) in %s:\n\n", len(fixtures), f.config.GetInputDir())

	for i, fixture := range fixtures {
		connector := "├── "
		if i == len(fixtures)-1 {
			connector = "└── "
		}

		fmt.Fprint(w, connector)
		if fixture.HasExpected() {
			passColor.Fprintf(w, "✓ %s", fixture.FileName)
			neutralColor.Fprintf(w, " -> %s\n", path.Join(f.config.GetExpectedPrefix(), fixture.FileName))
		} else {
			failColor.Fprintf(w, "✗ %s", fixture.FileName)
			neutralColor.Fprintln(w, " (fail)")
		}
	}

	if showStats {
		fmt.Fprintln(w)
		f.printStats(w, fixtures)
	}
}

func (f *Formatter) printStats(w io.Writer, fixtures []domain.Fixture) {
	success := 0
	for _, fixture := range fixtures {
		if fixture.HasExpected() {
			success++
		}
	}

	printTableTop(w)
	printRow(w, "Total Fixtures", fmt.Sprint(len(fixtures)), neutralColor)
	printDivider(w)
	printRow(w, "Success Cases", fmt.Sprint(success), passColor)
	printDivider(w)
	printRow(w, "Failure Cases", fmt.Sprint(len(fixtures)-success), failColor)
	printTableBottom(w)
}

// PrintCheckReport prints the summary table and every problem found by check.
// With strictNames off, name issues are listed but do not fail the check.
func (f *Formatter) PrintCheckReport(w io.Writer, report *domain.CheckReport, strictNames bool) {
	meta := report.Meta

	fmt.Fprintln(w)
	headerColor.Fprintln(w, "╔═══════════════════════════════════════════════════════════════╗")
	headerColor.Fprintln(w, "║                       Fixture Check Report                    ║")
	headerColor.Fprintln(w, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)

	printTableTop(w)
	printRow(w, "Total Fixtures", fmt.Sprint(meta.TotalFixtures), neutralColor)
	printDivider(w)
	printRow(w, "Success Cases", fmt.Sprint(meta.SuccessFixtures), passColor)
	printDivider(w)
	printRow(w, "Failure Cases", fmt.Sprint(meta.FailureFixtures), failColor)
	printDivider(w)
	printRow(w, "Name Issues", fmt.Sprint(len(report.NameIssues)), countColor(len(report.NameIssues)))
	printDivider(w)
	printRow(w, "Orphan Expected Files", fmt.Sprint(len(report.OrphanExpected)), countColor(len(report.OrphanExpected)))
	printDivider(w)
	printRow(w, "Identical Inputs", fmt.Sprint(len(report.DuplicateInputs)), countColor(len(report.DuplicateInputs)))
	printDivider(w)
	printRow(w, "Timestamp", meta.Timestamp, neutralColor)
	printTableBottom(w)

	fmt.Fprintln(w)
	if !report.Fails(strictNames) {
		passColor.Fprintln(w, "✓ All fixtures can be generated!")
	}

	for _, issue := range report.NameIssues {
		if strictNames {
			failColor.Fprintf(w, "✗ %s: %s (%s)\n", issue.Name, issue.Reason, strings.Join(issue.FileNames, ", "))
		} else {
			warnColor.Fprintf(w, "! %s: %s (%s)\n", issue.Name, issue.Reason, strings.Join(issue.FileNames, ", "))
		}
	}
	for _, orphan := range report.OrphanExpected {
		warnColor.Fprintf(w, "! %s has no input fixture\n", path.Join(f.config.GetExpectedPrefix(), orphan))
	}
	for _, group := range report.DuplicateInputs {
		warnColor.Fprintf(w, "! identical inputs: %s\n", strings.Join(group, ", "))
	}
}

func countColor(n int) *color.Color {
	if n == 0 {
		return passColor
	}
	return failColor
}

func printTableTop(w io.Writer) {
	fmt.Fprintln(w, "┌─────────────────────────────────┬─────────────────────────────┐")
}

func printDivider(w io.Writer) {
	fmt.Fprintln(w, "├─────────────────────────────────┼─────────────────────────────┤")
}

func printTableBottom(w io.Writer) {
	fmt.Fprintln(w, "└─────────────────────────────────┴─────────────────────────────┘")
}

func printRow(w io.Writer, label, value string, c *color.Color) {
	fmt.Fprintf(w, "│ %-31s │ ", label)
	c.Fprintf(w, "%-27s", value)
	fmt.Fprintln(w, " │")
}
