package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"fixturegen/internal/domain"
)

// Scanner enumerates input fixtures and pairs them with expected-output files
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// SortFixtures orders fixtures by filename in place
func SortFixtures(fixtures []domain.Fixture) {
	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].FileName < fixtures[j].FileName
	})
}

// Scan lists the input directory and returns one fixture per non-directory entry,
// in the order the filesystem returns them.
// A fixture has an expected path when a file with the identical name exists in expectedDir.
func (s *Scanner) Scan(inputDir, expectedDir string) ([]domain.Fixture, error) {
	names, err := s.listFiles(inputDir)
	if err != nil {
		return nil, err
	}

	fixtures := make([]domain.Fixture, 0, len(names))
	for _, name := range names {
		root, _ := SplitExt(name)
		fixture := domain.Fixture{
			Name:      root,
			FileName:  name,
			InputPath: filepath.Join(inputDir, name),
		}

		// Matched by the original filename, extension included
		expectedPath := filepath.Join(expectedDir, name)
		exists, err := fileExists(expectedPath)
		if err != nil {
			return nil, err
		}
		if exists {
			fixture.ExpectedPath = expectedPath
		}

		fixtures = append(fixtures, fixture)
	}

	return fixtures, nil
}

// FindOrphans returns expected-output files, sorted, that have no input fixture of the same name.
// A missing expected directory has no orphans.
func (s *Scanner) FindOrphans(fixtures []domain.Fixture, expectedDir string) ([]string, error) {
	info, err := os.Stat(expectedDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat expected directory %s: %w", expectedDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("expected path is not a directory: %s", expectedDir)
	}

	names, err := s.listFiles(expectedDir)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(fixtures))
	for _, f := range fixtures {
		known[f.FileName] = true
	}

	var orphans []string
	for _, name := range names {
		if !known[name] {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}

// listFiles returns the names of non-directory entries of dir
func (s *Scanner) listFiles(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture directory does not exist: %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixture path is not a directory: %s", dir)
	}

	// os.ReadDir sorts; reading through the handle keeps the order the filesystem returns
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open fixture directory %s: %w", dir, err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("list fixture directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("check expected file %s: %w", path, err)
}
