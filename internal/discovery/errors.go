package discovery

import "errors"

var (
	// ErrInvalidIdentifier is returned when a fixture name cannot be emitted as a bare identifier
	ErrInvalidIdentifier = errors.New("invalid fixture identifier")
	// ErrNameConflict is returned when two fixtures derive the same name
	ErrNameConflict = errors.New("fixture name conflict")
)
