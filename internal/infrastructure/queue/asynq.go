package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
)

// TypeSendAssignment is the task type for one giver's assignment email.
const TypeSendAssignment = "email:assignment"

// TaskEnqueuer enqueues assignment emails onto Redis via Asynq.
type TaskEnqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

// NewAsynqEnqueuer builds an enqueuer backed by the given Redis connection.
func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) (*TaskEnqueuer, error) {
	client := asynq.NewClient(redisOpt)
	return &TaskEnqueuer{client: client, log: log}, nil
}

// Close releases the underlying Redis client.
func (q *TaskEnqueuer) Close() error {
	return q.client.Close()
}

// EnqueueAssignmentEmail queues a single delivery attempt. MaxRetry is zero:
// notification is one attempt with logged failure, never a retry storm
// against a party guest's inbox.
func (q *TaskEnqueuer) EnqueueAssignmentEmail(ctx context.Context, msg ports.AssignmentEmail) error {
	payload, _ := json.Marshal(msg)
	task := asynq.NewTask(TypeSendAssignment, payload, asynq.MaxRetry(0))
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).
			Str("game_id", msg.GameID).
			Str("email", msg.GiverEmail).
			Msg("enqueue assignment email failed")
		return err
	}
	return nil
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)
