package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from transport errors raised by adapters.
var (
	// ErrNotFound indicates a requested file item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState indicates an operation was attempted on an item
	// that is not in the required status.
	ErrInvalidState = errors.New("invalid file state")

	// ErrSubmitInProgress indicates a submission batch is already in
	// flight.
	ErrSubmitInProgress = errors.New("submission in progress")

	// ErrNoTranslated indicates a bulk download was requested with no
	// translated files available.
	ErrNoTranslated = errors.New("no translated files available")
)
