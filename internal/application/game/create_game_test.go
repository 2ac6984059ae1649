package game_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/game"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

var gameCodeRe = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestCreateGameGeneratesShareableCode(t *testing.T) {
	f := newFixture()
	exchange := time.Date(2026, time.December, 18, 0, 0, 0, 0, time.UTC)
	result, err := f.create.Execute(context.Background(), game.CreateGameInput{
		Name:         "Office Party",
		MaxPrice:     decimal.RequireFromString("20.00"),
		ExchangeDate: &exchange,
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	code := result.Game.ID.String()
	if !gameCodeRe.MatchString(code) {
		t.Errorf("game code %q is not 8 uppercase alphanumerics", code)
	}
	if result.Game.AssignmentsDone {
		t.Error("new game must start with assignments_done false")
	}

	stored, err := f.store.Games().GetByID(context.Background(), result.Game.ID)
	if err != nil || stored == nil {
		t.Fatalf("stored game lookup: %v, %v", stored, err)
	}
	if !stored.MaxPrice.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("stored max price %s, want 20.00", stored.MaxPrice)
	}
	if stored.ExchangeDate == nil || !stored.ExchangeDate.Equal(exchange) {
		t.Errorf("stored exchange date %v, want %v", stored.ExchangeDate, exchange)
	}
}

func TestCreateGameCodesAreUnique(t *testing.T) {
	f := newFixture()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := f.createGame(t, "Game")
		if seen[id.String()] {
			t.Fatalf("duplicate game code %s", id)
		}
		seen[id.String()] = true
	}
}

func TestCreateGameRejectsInvalidInput(t *testing.T) {
	f := newFixture()
	tests := []struct {
		name     string
		gameName string
		maxPrice string
	}{
		{"blank name", "   ", "20.00"},
		{"zero price", "Office Party", "0"},
		{"negative price", "Office Party", "-5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(context.Background(), game.CreateGameInput{
				Name:     tt.gameName,
				MaxPrice: decimal.RequireFromString(tt.maxPrice),
			})
			if !errors.Is(err, domerrors.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}
