package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantID is a value object for participant identity.
type ParticipantID struct{ uuid.UUID }

// NewParticipantID creates a ParticipantID from uuid.
func NewParticipantID(id uuid.UUID) ParticipantID { return ParticipantID{UUID: id} }

// String returns the canonical string form.
func (p ParticipantID) String() string { return p.UUID.String() }

// Participant belongs to exactly one Game. AssignedToEmail is empty until
// the assignment runs and immutable afterwards. Notified records that a
// delivery attempt was dispatched, not that it succeeded.
type Participant struct {
	ID              ParticipantID
	GameID          GameID
	Name            string
	Email           string
	WishList        string
	AssignedToEmail string
	Notified        bool
	CreatedAt       time.Time
}

// Assigned reports whether this participant already has a receiver.
func (p *Participant) Assigned() bool { return p.AssignedToEmail != "" }
