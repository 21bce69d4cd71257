package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrInvalidNotation is returned when a move string cannot be parsed.
	ErrInvalidNotation = errors.New("cube: invalid move notation")

	// ErrInvalidSection is returned for a section outside {0, 1, 2}.
	ErrInvalidSection = errors.New("cube: section out of range")

	// ErrDragActive is returned when a drag session is requested while
	// another one (or an animation) is still running.
	ErrDragActive = errors.New("cube: drag session already active")
)
