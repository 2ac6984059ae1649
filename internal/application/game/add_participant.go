package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

// AddParticipantInput enrolls one person into a game's roster.
type AddParticipantInput struct {
	GameID   string
	Name     string
	Email    string
	WishList string
}

// AddParticipantResult returns the stored participant.
type AddParticipantResult struct {
	Participant *domain.Participant
}

// AddParticipant appends to a game's roster. The roster closes once the
// assignment latch is set.
type AddParticipant struct {
	games        ports.GameRepository
	participants ports.ParticipantRepository
	locks        ports.GameLocker
}

// NewAddParticipant builds the use case.
func NewAddParticipant(games ports.GameRepository, participants ports.ParticipantRepository, locks ports.GameLocker) *AddParticipant {
	return &AddParticipant{games: games, participants: participants, locks: locks}
}

// Execute adds the participant. The per-game lock serializes the
// email-uniqueness check against concurrent adds and against a concurrent
// assignment run; the storage layer's unique index backstops it.
func (uc *AddParticipant) Execute(ctx context.Context, input AddParticipantInput) (*AddParticipantResult, error) {
	gameID := domain.NormalizeGameID(input.GameID)
	email := strings.TrimSpace(strings.ToLower(input.Email))

	unlock := uc.locks.Lock(gameID.String())
	defer unlock()

	g, err := uc.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("game %s: %w", gameID, domerrors.ErrGameNotFound)
	}
	if g.AssignmentsDone {
		return nil, fmt.Errorf("game %s roster is closed: %w", gameID, domerrors.ErrAlreadyAssigned)
	}

	roster, err := uc.participants.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	for _, p := range roster {
		if strings.EqualFold(p.Email, email) {
			return nil, fmt.Errorf("email %s in game %s: %w", email, gameID, domerrors.ErrDuplicateEmail)
		}
	}

	p := &domain.Participant{
		ID:        domain.NewParticipantID(uuid.New()),
		GameID:    gameID,
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		WishList:  strings.TrimSpace(input.WishList),
		CreatedAt: time.Now(),
	}
	if err := uc.participants.Create(ctx, p); err != nil {
		return nil, err
	}
	return &AddParticipantResult{Participant: p}, nil
}
