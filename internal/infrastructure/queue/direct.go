package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
)

// dispatchTimeout bounds one delivery attempt so a slow SMTP server cannot
// hold a goroutine forever.
const dispatchTimeout = 30 * time.Second

// DirectDispatcher sends assignment emails on a goroutine per task when
// Redis/Asynq is not configured. Delivery detaches from the request
// context: the assignment has already committed when dispatch starts.
type DirectDispatcher struct {
	mailer       ports.Mailer
	participants ports.ParticipantRepository
	log          zerolog.Logger
}

// NewDirectDispatcher builds the in-process dispatcher.
func NewDirectDispatcher(mailer ports.Mailer, participants ports.ParticipantRepository, log zerolog.Logger) *DirectDispatcher {
	return &DirectDispatcher{mailer: mailer, participants: participants, log: log}
}

// EnqueueAssignmentEmail fires the delivery in the background and returns
// immediately; it never reports delivery failure to the caller.
func (d *DirectDispatcher) EnqueueAssignmentEmail(ctx context.Context, msg ports.AssignmentEmail) error {
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := d.mailer.SendAssignment(sendCtx, msg); err != nil {
			d.log.Error().Err(err).
				Str("game_id", msg.GameID).
				Str("email", msg.GiverEmail).
				Msg("assignment email delivery failed")
			recordNotification("failure")
		} else {
			d.log.Info().
				Str("game_id", msg.GameID).
				Str("email", msg.GiverEmail).
				Msg("assignment email sent")
			recordNotification("success")
		}

		giverID, err := uuid.Parse(msg.GiverID)
		if err != nil {
			d.log.Error().Err(err).Str("giver_id", msg.GiverID).Msg("invalid giver id")
			return
		}
		if err := d.participants.MarkNotified(sendCtx, domain.NewParticipantID(giverID)); err != nil {
			d.log.Warn().Err(err).Str("giver_id", msg.GiverID).Msg("mark notified failed")
		}
	}()
	return nil
}

var _ ports.TaskEnqueuer = (*DirectDispatcher)(nil)
