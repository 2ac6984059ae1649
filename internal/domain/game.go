package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GameID is the short shareable game code (uppercase alphanumeric).
type GameID string

// NormalizeGameID uppercases a user-supplied code. Codes are generated
// uppercase, so lookups normalize before hitting storage.
func NormalizeGameID(raw string) GameID {
	return GameID(strings.ToUpper(strings.TrimSpace(raw)))
}

// String returns the canonical string form.
func (id GameID) String() string { return string(id) }

// Game is the aggregate root of a Secret Santa exchange. AssignmentsDone
// is a one-way latch: once true it never resets, and the roster is closed.
type Game struct {
	ID              GameID
	Name            string
	MaxPrice        decimal.Decimal
	ExchangeDate    *time.Time
	AssignmentsDone bool
	CreatedAt       time.Time
}
