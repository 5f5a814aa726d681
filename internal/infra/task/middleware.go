package task

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/pkg/ctxlogger"
	"github.com/snapfeedhq/snapfeed/pkg/metrics"
)

func LogMiddleware(h asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
		start := time.Now()
		logger := ctxlogger.GetLogger(ctx)

		taskID, _ := asynq.GetTaskID(ctx)
		logger.Info("start processing task", "task_type", t.Type(), "task_id", taskID)

		err := h.ProcessTask(ctx, t)
		if err != nil {
			logger.Error("task failed",
				"task_type", t.Type(),
				"task_id", taskID,
				"error", err.Error(),
				"elapsed_time", time.Since(start),
			)
			return err
		}

		logger.Info("finished processing task",
			"task_type", t.Type(),
			"task_id", taskID,
			"elapsed_time", time.Since(start),
		)
		return nil
	})
}

func MetricsMiddleware(h asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
		start := time.Now()

		err := h.ProcessTask(ctx, t)

		metrics.TaskDuration.WithLabelValues(t.Type()).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.TasksProcessed.WithLabelValues("error", t.Type()).Inc()
			return err
		}

		metrics.TasksProcessed.WithLabelValues("success", t.Type()).Inc()
		return nil
	})
}
