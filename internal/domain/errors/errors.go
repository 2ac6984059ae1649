package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status. Use cases wrap them
// with context (game id, email, counts); match with errors.Is.
var (
	ErrGameNotFound             = errors.New("game not found")
	ErrDuplicateEmail           = errors.New("email already registered for this game")
	ErrAlreadyAssigned          = errors.New("assignments already done for this game")
	ErrInsufficientParticipants = errors.New("at least 3 participants are required")
	ErrValidation               = errors.New("invalid input")

	// ErrGameExists signals a game code collision on insert; callers retry
	// with a fresh code. Never surfaced to API clients.
	ErrGameExists = errors.New("game code already in use")
)
