package game

import (
	"context"
	"fmt"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain/assign"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

// MinParticipants is the smallest roster that can keep the secret: with
// two people each would know their giver, so assignment is disallowed.
const MinParticipants = 3

// RunAssignmentInput identifies the game to assign.
type RunAssignmentInput struct {
	GameID string
}

// RunAssignmentResult reports how many pairs were created.
type RunAssignmentResult struct {
	Participants int
}

// RunAssignment orchestrates the one-time assignment: latch check, roster
// load, derangement, one atomic commit of all pairs plus the latch, then
// fire-and-forget notification per pair.
type RunAssignment struct {
	games        ports.GameRepository
	participants ports.ParticipantRepository
	locks        ports.GameLocker
	enqueuer     ports.TaskEnqueuer
}

// NewRunAssignment builds the orchestrator.
func NewRunAssignment(games ports.GameRepository, participants ports.ParticipantRepository, locks ports.GameLocker, enqueuer ports.TaskEnqueuer) *RunAssignment {
	return &RunAssignment{games: games, participants: participants, locks: locks, enqueuer: enqueuer}
}

// Execute runs the assignment at most once per game. The per-game lock
// closes the in-process race window; CommitAssignments covers racing
// instances sharing the database. Notification failures never roll back
// the committed assignment.
func (uc *RunAssignment) Execute(ctx context.Context, input RunAssignmentInput) (*RunAssignmentResult, error) {
	gameID := domain.NormalizeGameID(input.GameID)

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
		return nil, fmt.Errorf("game %s: %w", gameID, domerrors.ErrAlreadyAssigned)
	}

	roster, err := uc.participants.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(roster) < MinParticipants {
		return nil, fmt.Errorf("game %s has %d of %d required participants: %w",
			gameID, len(roster), MinParticipants, domerrors.ErrInsufficientParticipants)
	}

	emails := make([]string, len(roster))
	for i, p := range roster {
		emails[i] = p.Email
	}
	perm := assign.Receivers(emails)

	assignments := make(map[domain.ParticipantID]string, len(roster))
	for i, p := range roster {
		assignments[p.ID] = roster[perm[i]].Email
	}
	// All-or-nothing: a failed commit leaves the game unassigned and the
	// latch unset, so the caller can simply retry.
	ok, err := uc.games.CommitAssignments(ctx, gameID, assignments)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Another instance won the latch; it owns the notifications too.
		return nil, fmt.Errorf("game %s: %w", gameID, domerrors.ErrAlreadyAssigned)
	}

	for i, p := range roster {
		receiver := roster[perm[i]]
		msg := ports.AssignmentEmail{
			GameID:           gameID.String(),
			GameName:         g.Name,
			MaxPrice:         g.MaxPrice.StringFixed(2),
			GiverID:          p.ID.String(),
			GiverName:        p.Name,
			GiverEmail:       p.Email,
			ReceiverName:     receiver.Name,
			ReceiverWishList: receiver.WishList,
		}
		if g.ExchangeDate != nil {
			msg.ExchangeDate = g.ExchangeDate.Format("2006-01-02")
		}
		// Best-effort: the enqueuer logs its own failures.
		_ = uc.enqueuer.EnqueueAssignmentEmail(ctx, msg)
	}

	return &RunAssignmentResult{Participants: len(roster)}, nil
}
