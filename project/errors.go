package project

import "errors"

// Sentinel errors returned by document and collection operations. Callers
// match them with errors.Is; wrapped messages carry the specifics.
var (
	// ErrOutOfRange signals an index that does not address an existing
	// collection entry. The document is left unchanged.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidInput signals a rejected value (blank name, non-positive
	// size). The prior value is retained.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorrupt signals a project file that could not be reconstructed.
	// The caller's in-memory document is untouched.
	ErrCorrupt = errors.New("corrupt project file")
)
