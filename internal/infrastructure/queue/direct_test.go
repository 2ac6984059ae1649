package queue

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/persistence/memory"
)

type stubMailer struct {
	sent chan ports.AssignmentEmail
	err  error
}

func (m *stubMailer) SendAssignment(ctx context.Context, msg ports.AssignmentEmail) error {
	m.sent <- msg
	return m.err
}

func TestDirectDispatcherSendsAndMarksNotified(t *testing.T) {
	store := memory.NewStore()
	p := &domain.Participant{
		ID:     domain.NewParticipantID(uuid.New()),
		GameID: "ABCD1234",
		Name:   "Alice",
		Email:  "alice@example.com",
	}
	if err := store.Participants().Create(context.Background(), p); err != nil {
		t.Fatalf("create participant: %v", err)
	}

	mailer := &stubMailer{sent: make(chan ports.AssignmentEmail, 1)}
	d := NewDirectDispatcher(mailer, store.Participants(), zerolog.New(os.Stderr))

	msg := ports.AssignmentEmail{
		GameID:     "ABCD1234",
		GiverID:    p.ID.String(),
		GiverEmail: p.Email,
	}
	if err := d.EnqueueAssignmentEmail(context.Background(), msg); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case got := <-mailer.sent:
		if got.GiverEmail != p.Email {
			t.Errorf("sent to %q, want %q", got.GiverEmail, p.Email)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("mailer was never invoked")
	}

	waitFor(t, func() bool {
		roster, err := store.Participants().ListByGame(context.Background(), p.GameID)
		return err == nil && len(roster) == 1 && roster[0].Notified
	})
}

func TestDirectDispatcherSwallowsDeliveryFailure(t *testing.T) {
	store := memory.NewStore()
	p := &domain.Participant{
		ID:     domain.NewParticipantID(uuid.New()),
		GameID: "ABCD1234",
		Name:   "Bob",
		Email:  "bob@example.com",
	}
	if err := store.Participants().Create(context.Background(), p); err != nil {
		t.Fatalf("create participant: %v", err)
	}

	mailer := &stubMailer{sent: make(chan ports.AssignmentEmail, 1), err: errors.New("smtp down")}
	d := NewDirectDispatcher(mailer, store.Participants(), zerolog.New(os.Stderr))

	msg := ports.AssignmentEmail{GameID: "ABCD1234", GiverID: p.ID.String(), GiverEmail: p.Email}
	if err := d.EnqueueAssignmentEmail(context.Background(), msg); err != nil {
		t.Fatalf("enqueue should not surface delivery errors, got %v", err)
	}

	<-mailer.sent
	// The flag records the attempt, not delivery success.
	waitFor(t, func() bool {
		roster, err := store.Participants().ListByGame(context.Background(), p.GameID)
		return err == nil && len(roster) == 1 && roster[0].Notified
	})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}
