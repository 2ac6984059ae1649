package ports

import (
	"context"

	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
)

// GameRepository defines persistence for games.
type GameRepository interface {
	// Create inserts a new game. Returns domain/errors.ErrGameExists when
	// the generated code collides with an existing one.
	Create(ctx context.Context, game *domain.Game) error
	// GetByID returns (nil, nil) when no game exists for the id.
	GetByID(ctx context.Context, id domain.GameID) (*domain.Game, error)
	// CommitAssignments atomically records every giver's receiver and flips
	// the assignments_done latch, all or nothing: a failed write leaves the
	// game untouched and retryable. Returns false when the latch was already
	// set, so a racing caller observes the loss instead of re-assigning.
	CommitAssignments(ctx context.Context, id domain.GameID, assignments map[domain.ParticipantID]string) (bool, error)
}

// ParticipantRepository defines persistence for game rosters.
type ParticipantRepository interface {
	// Create inserts a participant. Returns domain/errors.ErrDuplicateEmail
	// when the email is already registered in the game (case-insensitive).
	Create(ctx context.Context, p *domain.Participant) error
	// ListByGame returns the roster in insertion order.
	ListByGame(ctx context.Context, gameID domain.GameID) ([]*domain.Participant, error)
	// MarkNotified records that a notification attempt was dispatched.
	MarkNotified(ctx context.Context, id domain.ParticipantID) error
}
