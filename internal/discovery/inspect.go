package discovery

import (
	"fmt"
	"os"
	"sort"
	"time"

	"fixturegen/internal/domain"
)

// Progress receives updates while fixtures are inspected
type Progress interface {
	Update(successCount, failCount int)
	Finish()
}

// Inspector reads every fixture and builds a check report
type Inspector struct {
	scanner  *Scanner
	progress Progress
}

// NewInspector creates a new Inspector
func NewInspector(scanner *Scanner) *Inspector {
	return &Inspector{scanner: scanner}
}

// SetProgress sets the progress sink used during Inspect
func (in *Inspector) SetProgress(p Progress) {
	in.progress = p
}

// Inspect digests every input, verifies expected files are readable and collects
// naming issues, orphan expected files and inputs with identical contents.
func (in *Inspector) Inspect(fixtures []domain.Fixture, inputDir, expectedDir string) (*domain.CheckReport, error) {
	report := &domain.CheckReport{
		Meta: domain.CheckReportMeta{
			TotalFixtures: len(fixtures),
			InputDir:      inputDir,
			ExpectedDir:   expectedDir,
			Timestamp:     time.Now().Format(time.RFC3339),
		},
		Fixtures: make([]domain.FixtureStatus, 0, len(fixtures)),
	}

	if in.progress != nil {
		defer in.progress.Finish()
	}

	byDigest := make(map[string][]string)
	for _, f := range fixtures {
		digest, size, err := Digest(f.InputPath)
		if err != nil {
			return nil, err
		}
		if f.HasExpected() {
			if err := checkReadable(f.ExpectedPath); err != nil {
				return nil, err
			}
			report.Meta.SuccessFixtures++
		} else {
			report.Meta.FailureFixtures++
		}

		byDigest[digest] = append(byDigest[digest], f.FileName)
		report.Fixtures = append(report.Fixtures, domain.FixtureStatus{
			Name:        f.Name,
			FileName:    f.FileName,
			HasExpected: f.HasExpected(),
			InputDigest: digest,
			InputSize:   size,
		})

		if in.progress != nil {
			in.progress.Update(report.Meta.SuccessFixtures, report.Meta.FailureFixtures)
		}
	}

	report.NameIssues = FindNameIssues(fixtures)

	orphans, err := in.scanner.FindOrphans(fixtures, expectedDir)
	if err != nil {
		return nil, err
	}
	report.OrphanExpected = orphans

	for _, names := range byDigest {
		if len(names) > 1 {
			sort.Strings(names)
			report.DuplicateInputs = append(report.DuplicateInputs, names)
		}
	}
	sort.Slice(report.DuplicateInputs, func(i, j int) bool {
		return report.DuplicateInputs[i][0] < report.DuplicateInputs[j][0]
	})

	return report, nil
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open expected file %s: %w", path, err)
	}
	return f.Close()
}
