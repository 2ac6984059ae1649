// Package memory holds RWMutex-guarded in-memory repositories. They back
// dev mode (no DATABASE_URL) and the use-case tests; behavior mirrors the
// postgres repositories, including duplicate-email detection and the
// all-or-nothing assignment commit.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

// Store owns all in-memory state. Obtain repositories via Games and
// Participants; they share the same lock.
type Store struct {
	mu           sync.RWMutex
	games        map[domain.GameID]*domain.Game
	rosters      map[domain.GameID][]*domain.Participant
	participants map[domain.ParticipantID]*domain.Participant
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		games:        make(map[domain.GameID]*domain.Game),
		rosters:      make(map[domain.GameID][]*domain.Participant),
		participants: make(map[domain.ParticipantID]*domain.Participant),
	}
}

// Games returns the game repository view of the store.
func (s *Store) Games() ports.GameRepository { return &gameRepository{s: s} }

// Participants returns the participant repository view of the store.
func (s *Store) Participants() ports.ParticipantRepository { return &participantRepository{s: s} }

type gameRepository struct{ s *Store }

func (r *gameRepository) Create(ctx context.Context, game *domain.Game) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.games[game.ID]; exists {
		return fmt.Errorf("game %s: %w", game.ID, domerrors.ErrGameExists)
	}
	g := *game
	r.s.games[game.ID] = &g
	return nil
}

func (r *gameRepository) GetByID(ctx context.Context, id domain.GameID) (*domain.Game, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.games[id]
	if !ok {
		return nil, nil
	}
	out := *g
	return &out, nil
}

// CommitAssignments validates every pair before touching any participant,
// mirroring the transactional postgres commit: a failure writes nothing
// and leaves the game retryable.
func (r *gameRepository) CommitAssignments(ctx context.Context, id domain.GameID, assignments map[domain.ParticipantID]string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.games[id]
	if !ok {
		return false, fmt.Errorf("game %s: %w", id, domerrors.ErrGameNotFound)
	}
	if g.AssignmentsDone {
		return false, nil
	}
	for pid := range assignments {
		p, ok := r.s.participants[pid]
		if !ok {
			return false, fmt.Errorf("participant %s not found", pid)
		}
		if p.AssignedToEmail != "" {
			return false, fmt.Errorf("participant %s already has an assignment", pid)
		}
	}
	for pid, receiverEmail := range assignments {
		r.s.participants[pid].AssignedToEmail = receiverEmail
	}
	g.AssignmentsDone = true
	return true, nil
}

type participantRepository struct{ s *Store }

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.rosters[p.GameID] {
		if strings.EqualFold(existing.Email, p.Email) {
			return fmt.Errorf("email %s in game %s: %w", p.Email, p.GameID, domerrors.ErrDuplicateEmail)
		}
	}
	stored := *p
	r.s.rosters[p.GameID] = append(r.s.rosters[p.GameID], &stored)
	r.s.participants[p.ID] = &stored
	return nil
}

func (r *participantRepository) ListByGame(ctx context.Context, gameID domain.GameID) ([]*domain.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	roster := r.s.rosters[gameID]
	out := make([]*domain.Participant, len(roster))
	for i, p := range roster {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *participantRepository) MarkNotified(ctx context.Context, id domain.ParticipantID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[id]
	if !ok {
		return fmt.Errorf("participant %s not found", id)
	}
	p.Notified = true
	return nil
}
