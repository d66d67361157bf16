package astar

import "errors"

var (
	// ErrInvalidGrid reports a grid that breaks the one-start/one-end
	// invariant or has unusable dimensions.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrExpansionLimit is returned when a search hits the bound set with
	// WithMaxExpansions before reaching a result.
	ErrExpansionLimit = errors.New("expansion limit reached")
)

// GridError describes why a grid was rejected. It matches ErrInvalidGrid
// under errors.Is.
type GridError struct {
	Reason string
}

func (e *GridError) Error() string {
	return ErrInvalidGrid.Error() + ": " + e.Reason
}

func (e *GridError) Unwrap() error { return ErrInvalidGrid }

func invalidGrid(reason string) error {
	return &GridError{Reason: reason}
}
