package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

const (
	createGameSQL = `INSERT INTO games (id, name, max_price, exchange_date, assignments_done, created_at)
VALUES ($1, $2, $3, $4, FALSE, $5)`
	getGameSQL = `SELECT id, name, max_price, exchange_date, assignments_done, created_at
FROM games WHERE id = $1`
	// FOR UPDATE serializes racing committers on the game row; the loser
	// blocks, then reads assignments_done = TRUE and backs off.
	lockGameSQL = `SELECT assignments_done FROM games WHERE id = $1 FOR UPDATE`
	// Assignments are write-once; the IS NULL guard keeps a committed
	// assignment immutable.
	setAssignmentSQL = `UPDATE participants SET assigned_to_email = $2
WHERE id = $1 AND assigned_to_email IS NULL`
	setAssignedSQL = `UPDATE games SET assignments_done = TRUE WHERE id = $1`
)

// GameRepository persists games in postgres.
type GameRepository struct {
	pool *pgxpool.Pool
}

// NewGameRepository builds the repository.
func NewGameRepository(pool *pgxpool.Pool) *GameRepository {
	return &GameRepository{pool: pool}
}

func (r *GameRepository) Create(ctx context.Context, game *domain.Game) error {
	_, err := r.pool.Exec(ctx, createGameSQL,
		game.ID.String(), game.Name, game.MaxPrice, game.ExchangeDate, game.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("game %s: %w", game.ID, domerrors.ErrGameExists)
	}
	return err
}

func (r *GameRepository) GetByID(ctx context.Context, id domain.GameID) (*domain.Game, error) {
	var (
		g            domain.Game
		gameID       string
		maxPrice     decimal.Decimal
		exchangeDate *time.Time
	)
	err := r.pool.QueryRow(ctx, getGameSQL, id.String()).
		Scan(&gameID, &g.Name, &maxPrice, &exchangeDate, &g.AssignmentsDone, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	g.ID = domain.GameID(gameID)
	g.MaxPrice = maxPrice
	g.ExchangeDate = exchangeDate
	return &g, nil
}

// CommitAssignments writes every pair and flips the latch in one
// transaction. Any failure rolls the whole commit back, so the game never
// ends up with a partial mapping and a retry starts from a clean slate.
func (r *GameRepository) CommitAssignments(ctx context.Context, id domain.GameID, assignments map[domain.ParticipantID]string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var done bool
	if err := tx.QueryRow(ctx, lockGameSQL, id.String()).Scan(&done); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("game %s: %w", id, domerrors.ErrGameNotFound)
		}
		return false, err
	}
	if done {
		return false, nil
	}

	for pid, receiverEmail := range assignments {
		tag, err := tx.Exec(ctx, setAssignmentSQL, pid.UUID, receiverEmail)
		if err != nil {
			return false, err
		}
		if tag.RowsAffected() != 1 {
			return false, fmt.Errorf("participant %s: assignment already recorded or participant missing", pid)
		}
	}
	if _, err := tx.Exec(ctx, setAssignedSQL, id.String()); err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.GameRepository = (*GameRepository)(nil)
