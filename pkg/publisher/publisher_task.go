package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/pkg/ctxlogger"
	"github.com/snapfeedhq/snapfeed/pkg/metrics"
)

var _ Publisher = (*Task)(nil)

type Task struct {
	client *asynq.Client
}

func NewPublisher(client *asynq.Client) *Task {
	return &Task{client: client}
}

// Publish marshals payload to JSON and enqueues it under taskName. The enqueue
// is synchronous: if the broker is unreachable the error is returned to the
// caller and the task is lost. No retry or fallback happens here.
func (t *Task) Publish(ctx context.Context, taskName string, payload any, opts ...asynq.Option) error {
	definedOpts := make([]asynq.Option, 0, len(defaultOpts())+len(opts))
	definedOpts = append(definedOpts, defaultOpts()...)
	definedOpts = append(definedOpts, opts...)

	p, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal payload: %w", err)
	}

	task := asynq.NewTask(taskName, p)
	info, err := t.client.EnqueueContext(ctx, task, definedOpts...)
	if err != nil {
		return fmt.Errorf("could not enqueue task: %w", err)
	}

	metrics.TasksEnqueued.WithLabelValues(taskName, info.Queue).Inc()
	ctxlogger.GetLogger(ctx).Info("enqueued task", "task_id", info.ID, "task_type", taskName, "queue", info.Queue)

	return nil
}

func WithQueue(queue string) asynq.Option {
	return asynq.Queue(queue)
}

func WithMaxRetry(maxRetry int) asynq.Option {
	return asynq.MaxRetry(maxRetry)
}

func WithRetention(retention time.Duration) asynq.Option {
	return asynq.Retention(retention)
}

func WithProcessIn(processIn time.Duration) asynq.Option {
	return asynq.ProcessIn(processIn)
}

func defaultOpts() []asynq.Option {
	return []asynq.Option{
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(168 * time.Hour), // 7 days
	}
}
