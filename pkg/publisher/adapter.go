package publisher

import (
	"context"

	"github.com/hibiken/asynq"
)

// Publisher hands a named task plus a JSON-serializable payload to the broker
// for asynchronous execution. Fire-and-forget: callers never await a result.
type Publisher interface {
	Publish(ctx context.Context, taskName string, payload any, opts ...asynq.Option) error
}
