package commands

import (
	"fixturegen/internal/config"
	"fixturegen/internal/discovery"
	"fixturegen/internal/domain"
)

// fixtureLoader scans, filters and orders fixtures according to the current config
type fixtureLoader struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
}

func newFixtureLoader(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter) *fixtureLoader {
	return &fixtureLoader{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
	}
}

func (l *fixtureLoader) Load() ([]domain.Fixture, error) {
	fixtures, err := l.scanner.Scan(l.config.GetInputDir(), l.config.GetExpectedDir())
	if err != nil {
		return nil, err
	}

	fixtures = l.filter.FilterByName(fixtures, l.config.Flags.NameFilter)

	if l.config.Sorted() {
		discovery.SortFixtures(fixtures)
	}
	return fixtures, nil
}
