package ports

import "context"

// AssignmentEmail carries everything the notifier needs for one pair.
// The receiver's identity never travels anywhere else.
type AssignmentEmail struct {
	GameID           string `json:"game_id"`
	GameName         string `json:"game_name"`
	MaxPrice         string `json:"max_price"`
	ExchangeDate     string `json:"exchange_date,omitempty"`
	GiverID          string `json:"giver_id"`
	GiverName        string `json:"giver_name"`
	GiverEmail       string `json:"giver_email"`
	ReceiverName     string `json:"receiver_name"`
	ReceiverWishList string `json:"receiver_wish_list,omitempty"`
}

// TaskEnqueuer dispatches async notification tasks. Enqueue failures are
// best-effort: the assignment is already committed and is never rolled back.
type TaskEnqueuer interface {
	EnqueueAssignmentEmail(ctx context.Context, msg AssignmentEmail) error
}
