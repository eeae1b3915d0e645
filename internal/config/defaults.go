package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultInputDir is the directory holding input fixtures, relative to the project
	DefaultInputDir = "tests/input"
	// DefaultExpectedDir is the directory holding expected-output fixtures, relative to the project
	DefaultExpectedDir = "tests/expected_kdl"
	// DefaultInputPrefix is prepended to input filenames inside include_str!
	DefaultInputPrefix = "input"
	// DefaultExpectedPrefix is prepended to expected filenames inside include_str!
	DefaultExpectedPrefix = "expected_kdl"
	// DefaultEnvFile is the optional env file read from the project path
	DefaultEnvFile = ".env"
)

// Environment variables that override the defaults
const (
	EnvInputDir       = "FIXTUREGEN_INPUT_DIR"
	EnvExpectedDir    = "FIXTUREGEN_EXPECTED_DIR"
	EnvInputPrefix    = "FIXTUREGEN_INPUT_PREFIX"
	EnvExpectedPrefix = "FIXTUREGEN_EXPECTED_PREFIX"
)
