package game_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/game"
	domerrors "github.com/Kevindmm/secret-santa-organizer/internal/domain/errors"
)

func TestAddParticipantStoresUnassigned(t *testing.T) {
	f := newFixture()
	gameID := f.createGame(t, "Office Party")

	result, err := f.add.Execute(context.Background(), game.AddParticipantInput{
		GameID:   gameID.String(),
		Name:     "Alice",
		Email:    "alice@example.com",
		WishList: "socks",
	})
	if err != nil {
		t.Fatalf("add participant: %v", err)
	}
	p := result.Participant
	if p.Assigned() {
		t.Error("new participant must not be assigned")
	}
	if p.Notified {
		t.Error("new participant must not be notified")
	}
	if p.GameID != gameID {
		t.Errorf("participant game %s, want %s", p.GameID, gameID)
	}
}

func TestAddParticipantDuplicateEmailCaseInsensitive(t *testing.T) {
	f := newFixture()
	gameID := f.createGame(t, "Office Party")
	f.addParticipant(t, gameID, "Alice", "alice@example.com")

	_, err := f.add.Execute(context.Background(), game.AddParticipantInput{
		GameID: gameID.String(),
		Name:   "Alice Again",
		Email:  "ALICE@Example.COM",
	})
	if !errors.Is(err, domerrors.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestAddParticipantSameEmailDifferentGames(t *testing.T) {
	f := newFixture()
	a := f.createGame(t, "Office Party")
	b := f.createGame(t, "Family Exchange")
	f.addParticipant(t, a, "Alice", "alice@example.com")
	// Uniqueness is scoped per game.
	f.addParticipant(t, b, "Alice", "alice@example.com")
}

func TestAddParticipantUnknownGame(t *testing.T) {
	f := newFixture()
	_, err := f.add.Execute(context.Background(), game.AddParticipantInput{
		GameID: "NOPE0000",
		Name:   "Alice",
		Email:  "alice@example.com",
	})
	if !errors.Is(err, domerrors.ErrGameNotFound) {
		t.Fatalf("got %v, want ErrGameNotFound", err)
	}
}

func TestAddParticipantAfterAssignmentFails(t *testing.T) {
	f := newFixture()
	gameID := seedGame(t, f, 3)
	if _, err := f.run.Execute(context.Background(), game.RunAssignmentInput{GameID: gameID.String()}); err != nil {
		t.Fatalf("run assignment: %v", err)
	}

	_, err := f.add.Execute(context.Background(), game.AddParticipantInput{
		GameID: gameID.String(),
		Name:   "Latecomer",
		Email:  "late@example.com",
	})
	if !errors.Is(err, domerrors.ErrAlreadyAssigned) {
		t.Fatalf("got %v, want ErrAlreadyAssigned", err)
	}
}

func TestAddParticipantNormalizesGameCode(t *testing.T) {
	f := newFixture()
	gameID := f.createGame(t, "Office Party")

	_, err := f.add.Execute(context.Background(), game.AddParticipantInput{
		GameID: strings.ToLower(gameID.String()),
		Name:   "Alice",
		Email:  "alice@example.com",
	})
	if err != nil {
		t.Fatalf("lowercase game code should resolve: %v", err)
	}
}

func TestListParticipantsInsertionOrder(t *testing.T) {
	f := newFixture()
	gameID := f.createGame(t, "Office Party")
	emails := []string{"c@example.com", "a@example.com", "b@example.com"}
	for _, e := range emails {
		f.addParticipant(t, gameID, e, e)
	}

	result, err := f.list.Execute(context.Background(), game.ListParticipantsInput{GameID: gameID.String()})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Participants) != len(emails) {
		t.Fatalf("got %d participants, want %d", len(result.Participants), len(emails))
	}
	for i, p := range result.Participants {
		if p.Email != emails[i] {
			t.Errorf("position %d: got %s, want %s", i, p.Email, emails[i])
		}
	}
}
