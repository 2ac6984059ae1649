package queue

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
	"github.com/Kevindmm/secret-santa-organizer/internal/domain"
)

// Worker runs Asynq task handlers for assignment emails. Call Run() to start.
type Worker struct {
	srv          *asynq.Server
	mux          *asynq.ServeMux
	mailer       ports.Mailer
	participants ports.ParticipantRepository
	log          zerolog.Logger
}

// NewWorker creates an Asynq server and registers handlers.
func NewWorker(redisOpt asynq.RedisClientOpt, mailer ports.Mailer, participants ports.ParticipantRepository, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		LogLevel:    asynq.InfoLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, mailer: mailer, participants: participants, log: log}
	mux.HandleFunc(TypeSendAssignment, w.handleSendAssignment)
	return w
}

// handleSendAssignment delivers one email and flags the giver as notified.
// Delivery failure is logged, counted, and swallowed: the assignment is
// already committed and the task is not retried.
func (w *Worker) handleSendAssignment(ctx context.Context, t *asynq.Task) error {
	var msg ports.AssignmentEmail
	if err := json.Unmarshal(t.Payload(), &msg); err != nil {
		w.log.Error().Err(err).Msg("assignment email payload invalid")
		return err
	}

	if err := w.mailer.SendAssignment(ctx, msg); err != nil {
		w.log.Error().Err(err).
			Str("game_id", msg.GameID).
			Str("email", msg.GiverEmail).
			Msg("assignment email delivery failed")
		recordNotification("failure")
	} else {
		w.log.Info().
			Str("game_id", msg.GameID).
			Str("email", msg.GiverEmail).
			Msg("assignment email sent")
		recordNotification("success")
	}

	w.markNotified(ctx, msg)
	return nil
}

func (w *Worker) markNotified(ctx context.Context, msg ports.AssignmentEmail) {
	giverID, err := uuid.Parse(msg.GiverID)
	if err != nil {
		w.log.Error().Err(err).Str("giver_id", msg.GiverID).Msg("invalid giver id in task payload")
		return
	}
	if err := w.participants.MarkNotified(ctx, domain.NewParticipantID(giverID)); err != nil {
		w.log.Warn().Err(err).Str("giver_id", msg.GiverID).Msg("mark notified failed")
	}
}

// Run blocks until shutdown. Use Shutdown for graceful stop.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

// Shutdown stops the worker.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
