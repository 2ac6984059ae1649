package game

import (
	"context"
	"fmt"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

// ListParticipantsInput identifies the game to read.
type ListParticipantsInput struct {
	GameID string
}

// ListParticipantsResult returns the roster in insertion order. Callers
// must only expose whether a participant is assigned, never to whom.
type ListParticipantsResult struct {
	Participants []*domain.Participant
}

// ListParticipants reads a game's roster.
type ListParticipants struct {
	games        ports.GameRepository
	participants ports.ParticipantRepository
}

// NewListParticipants builds the use case.
func NewListParticipants(games ports.GameRepository, participants ports.ParticipantRepository) *ListParticipants {
	return &ListParticipants{games: games, participants: participants}
}

// Execute returns the roster or ErrGameNotFound.
func (uc *ListParticipants) Execute(ctx context.Context, input ListParticipantsInput) (*ListParticipantsResult, error) {
	gameID := domain.NormalizeGameID(input.GameID)

	g, err := uc.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("game %s: %w", gameID, domerrors.ErrGameNotFound)
	}
	roster, err := uc.participants.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return &ListParticipantsResult{Participants: roster}, nil
}
