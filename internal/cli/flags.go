package cli

import "fixturegen/internal/config"

// Flags holds command-line flags
type Flags struct {
	InputDir          string
	ExpectedDir       string
	InputPrefix       string
	ExpectedPrefix    string
	NameFilter        string
	EnvFile           string
	Output            string
	Report            string
	NoSort            bool
	AllowInvalidNames bool
	Stats             bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		InputDir:          f.InputDir,
		ExpectedDir:       f.ExpectedDir,
		InputPrefix:       f.InputPrefix,
		ExpectedPrefix:    f.ExpectedPrefix,
		NameFilter:        f.NameFilter,
		EnvFile:           f.EnvFile,
		Output:            f.Output,
		Report:            f.Report,
		NoSort:            f.NoSort,
		AllowInvalidNames: f.AllowInvalidNames,
		Stats:             f.Stats,
	}
}
