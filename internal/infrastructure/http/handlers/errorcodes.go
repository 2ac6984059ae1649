package handlers

// API error codes returned in JSON { "error": "...", "code": "..." } for stable client handling.
const (
	ErrCodeInvalidRequest           = "invalid_request"
	ErrCodeGameNotFound             = "game_not_found"
	ErrCodeDuplicateEmail           = "duplicate_email"
	ErrCodeAlreadyAssigned          = "already_assigned"
	ErrCodeInsufficientParticipants = "insufficient_participants"
	ErrCodeInternal                 = "internal_error"
)
