package domain

// CheckReportMeta contains summary counts of a check run
type CheckReportMeta struct {
	TotalFixtures   int    `json:"total_fixtures"`
	SuccessFixtures int    `json:"success_fixtures"`
	FailureFixtures int    `json:"failure_fixtures"`
	InputDir        string `json:"input_dir"`
	ExpectedDir     string `json:"expected_dir"`
	Timestamp       string `json:"timestamp"`
}

// FixtureStatus is the per-fixture entry of a check report
type FixtureStatus struct {
	Name        string `json:"name"`
	FileName    string `json:"file_name"`
	HasExpected bool   `json:"has_expected"`
	InputDigest string `json:"input_digest"`
	InputSize   int64  `json:"input_size"`
}

// NameIssue describes a fixture whose name cannot be emitted
type NameIssue struct {
	Name      string   `json:"name"`
	FileNames []string `json:"file_names"`
	Reason    string   `json:"reason"`
}

// CheckReport is the complete output of the check command
type CheckReport struct {
	Meta            CheckReportMeta `json:"meta"`
	Fixtures        []FixtureStatus `json:"fixtures"`
	NameIssues      []NameIssue     `json:"name_issues,omitempty"`
	OrphanExpected  []string        `json:"orphan_expected,omitempty"`
	DuplicateInputs [][]string      `json:"duplicate_inputs,omitempty"`
}

// Fails reports whether the check found expected files without an input or,
// when names are validated, names that cannot be emitted. Identical inputs are only a warning.
func (r *CheckReport) Fails(strictNames bool) bool {
	if strictNames && len(r.NameIssues) > 0 {
		return true
	}
	return len(r.OrphanExpected) > 0
}
