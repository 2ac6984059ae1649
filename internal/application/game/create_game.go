package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

// maxCodeAttempts bounds retries when a generated code collides with an
// existing game.
const maxCodeAttempts = 3

// CreateGameInput holds the organizer-supplied game configuration.
type CreateGameInput struct {
	Name         string
	MaxPrice     decimal.Decimal
	ExchangeDate *time.Time
}

// CreateGameResult returns the created game, including its shareable code.
type CreateGameResult struct {
	Game *domain.Game
}

// CreateGame registers a new game with a fresh collision-resistant code.
type CreateGame struct {
	games   ports.GameRepository
	codeLen int
}

// NewCreateGame builds the use case. codeLen <= 0 uses DefaultCodeLength.
func NewCreateGame(games ports.GameRepository, codeLen int) *CreateGame {
	if codeLen <= 0 {
		codeLen = DefaultCodeLength
	}
	return &CreateGame{games: games, codeLen: codeLen}
}

// Execute validates the configuration and inserts the game. The HTTP layer
// validates first; invariants the registry owns are re-checked here.
func (uc *CreateGame) Execute(ctx context.Context, input CreateGameInput) (*CreateGameResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("game name must not be blank: %w", domerrors.ErrValidation)
	}
	if input.MaxPrice.Sign() <= 0 {
		return nil, fmt.Errorf("max price %s must be positive: %w", input.MaxPrice, domerrors.ErrValidation)
	}

	var lastErr error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		g := &domain.Game{
			ID:           domain.GameID(newGameCode(uc.codeLen)),
			Name:         name,
			MaxPrice:     input.MaxPrice,
			ExchangeDate: input.ExchangeDate,
			CreatedAt:    time.Now(),
		}
		if err := uc.games.Create(ctx, g); err != nil {
			if errors.Is(err, domerrors.ErrGameExists) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return &CreateGameResult{Game: g}, nil
	}
	return nil, fmt.Errorf("could not find a free game code after %d attempts: %w", maxCodeAttempts, lastErr)
}
