package domain

// Fixture represents one test case: an input file and, optionally, its expected output
type Fixture struct {
	Name         string // Identifier emitted into the macro call (filename without extension)
	FileName     string // Original filename including extension
	InputPath    string // Path to the input file on disk
	ExpectedPath string // Path to the expected file on disk, empty when there is none
}

// HasExpected reports whether a same-named expected file was found
func (f Fixture) HasExpected() bool {
	return f.ExpectedPath != ""
}
