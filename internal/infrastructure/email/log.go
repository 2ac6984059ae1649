package email

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
)

// LogMailer logs assignments instead of emailing them. Used when SMTP is
// not configured; configure SMTP_HOST for real delivery.
type LogMailer struct {
	log zerolog.Logger
}

// NewLogMailer builds the log-only mailer.
func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendAssignment(ctx context.Context, msg ports.AssignmentEmail) error {
	m.log.Info().
		Str("game_id", msg.GameID).
		Str("email", msg.GiverEmail).
		Str("receiver", msg.ReceiverName).
		Msg("assignment email (log only; configure SMTP for real delivery)")
	return nil
}

var _ ports.Mailer = (*LogMailer)(nil)
