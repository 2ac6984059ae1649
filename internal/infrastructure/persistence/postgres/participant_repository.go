package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

const (
	createParticipantSQL = `INSERT INTO participants (id, game_id, name, email, wish_list, notified, created_at)
VALUES ($1, $2, $3, $4, $5, FALSE, $6)`
	// seq preserves insertion order, which the assignment engine uses as
	// its canonical indexing.
	listParticipantsSQL = `SELECT id, game_id, name, email, wish_list, COALESCE(assigned_to_email, ''), notified, created_at
FROM participants WHERE game_id = $1 ORDER BY seq`
	markNotifiedSQL = `UPDATE participants SET notified = TRUE WHERE id = $1`
)

// ParticipantRepository persists game rosters in postgres.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository builds the repository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

func (r *ParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	_, err := r.pool.Exec(ctx, createParticipantSQL,
		p.ID.UUID, p.GameID.String(), p.Name, p.Email, p.WishList, p.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("email %s in game %s: %w", p.Email, p.GameID, domerrors.ErrDuplicateEmail)
	}
	return err
}

func (r *ParticipantRepository) ListByGame(ctx context.Context, gameID domain.GameID) ([]*domain.Participant, error) {
	rows, err := r.pool.Query(ctx, listParticipantsSQL, gameID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []*domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		roster = append(roster, p)
	}
	return roster, rows.Err()
}

func (r *ParticipantRepository) MarkNotified(ctx context.Context, id domain.ParticipantID) error {
	_, err := r.pool.Exec(ctx, markNotifiedSQL, id.UUID)
	return err
}

func scanParticipant(rows pgx.Rows) (*domain.Participant, error) {
	var (
		p      domain.Participant
		gameID string
	)
	if err := rows.Scan(&p.ID.UUID, &gameID, &p.Name, &p.Email, &p.WishList,
		&p.AssignedToEmail, &p.Notified, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.GameID = domain.GameID(gameID)
	return &p, nil
}

var _ ports.ParticipantRepository = (*ParticipantRepository)(nil)
