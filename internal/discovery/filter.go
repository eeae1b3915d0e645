package discovery

import (
	"path/filepath"
	"strings"

	"fixturegen/internal/domain"
)

// Filter filters fixtures by filename pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters fixtures by filename using wildcard matching
// Supports patterns like "*.kdl" or "*escape*"
func (f *Filter) FilterByName(fixtures []domain.Fixture, pattern string) []domain.Fixture {
	if pattern == "" {
		return fixtures
	}

	var filtered []domain.Fixture

	for _, fixture := range fixtures {
		if matchName(fixture.FileName, pattern) {
			filtered = append(filtered, fixture)
		}
	}

	return filtered
}

// FilterNames keeps the filenames matching pattern, using the same rules as FilterByName
func (f *Filter) FilterNames(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	var filtered []string
	for _, name := range names {
		if matchName(name, pattern) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	matched, err := filepath.Match(pattern, name)
	if err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// Looser match for patterns like "*escape*": every non-empty part must appear
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			if !strings.Contains(name, part) {
				return false
			}
			hasNonEmptyPart = true
		}
		return hasNonEmptyPart
	}

	// No wildcards, simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
