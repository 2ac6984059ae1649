package ports

import "context"

// Mailer delivers one assignment notification to the giver.
type Mailer interface {
	SendAssignment(ctx context.Context, msg AssignmentEmail) error
}
