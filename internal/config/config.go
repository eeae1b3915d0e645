package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Fixture directories, relative to ProjectPath unless absolute
	InputDir    string
	ExpectedDir string

	// Prefixes used for the paths embedded in generated include_str! calls
	InputPrefix    string
	ExpectedPrefix string

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		InputDir:       DefaultInputDir,
		ExpectedDir:    DefaultExpectedDir,
		InputPrefix:    DefaultInputPrefix,
		ExpectedPrefix: DefaultExpectedPrefix,
	}
}

// LoadEnv reads the env file (if present) and applies FIXTUREGEN_* variables.
// A missing env file is not an error; variables already set in the process win over the file.
func (c *Config) LoadEnv() error {
	envPath := c.Flags.EnvFile
	if envPath == "" {
		envPath = filepath.Join(c.ProjectPath, DefaultEnvFile)
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("load env file %s: %w", envPath, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) || c.Flags.EnvFile != "" {
		return fmt.Errorf("env file %s: %w", envPath, err)
	}

	if v := os.Getenv(EnvInputDir); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv(EnvExpectedDir); v != "" {
		c.ExpectedDir = v
	}
	if v := os.Getenv(EnvInputPrefix); v != "" {
		c.InputPrefix = v
	}
	if v := os.Getenv(EnvExpectedPrefix); v != "" {
		c.ExpectedPrefix = v
	}
	return nil
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}

// GetInputDir returns the input fixture directory, using flag if provided
func (c *Config) GetInputDir() string {
	if c.Flags.InputDir != "" {
		return c.resolve(c.Flags.InputDir)
	}
	return c.resolve(c.InputDir)
}

// GetExpectedDir returns the expected-output fixture directory, using flag if provided
func (c *Config) GetExpectedDir() string {
	if c.Flags.ExpectedDir != "" {
		return c.resolve(c.Flags.ExpectedDir)
	}
	return c.resolve(c.ExpectedDir)
}

// GetInputPrefix returns the include prefix for input files
func (c *Config) GetInputPrefix() string {
	if c.Flags.InputPrefix != "" {
		return c.Flags.InputPrefix
	}
	return c.InputPrefix
}

// GetExpectedPrefix returns the include prefix for expected files
func (c *Config) GetExpectedPrefix() string {
	if c.Flags.ExpectedPrefix != "" {
		return c.Flags.ExpectedPrefix
	}
	return c.ExpectedPrefix
}

// Sorted reports whether fixtures are ordered by filename before emission
func (c *Config) Sorted() bool {
	return !c.Flags.NoSort
}

// Strict reports whether fixture names are validated before emission
func (c *Config) Strict() bool {
	return !c.Flags.AllowInvalidNames
}

// GetReportPath returns the path the check report is written to, or empty when none was requested
func (c *Config) GetReportPath() string {
	if c.Flags.Report == "" {
		return ""
	}
	return c.resolve(c.Flags.Report)
}

// GetOutputPath returns the generated source path, or empty when output goes to stdout
func (c *Config) GetOutputPath() string {
	if c.Flags.Output == "" {
		return ""
	}
	return c.resolve(c.Flags.Output)
}
