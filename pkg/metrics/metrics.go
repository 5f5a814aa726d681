// Package metrics holds the Prometheus collectors shared by the web, worker,
// and scheduler processes. Collectors are registered with promauto on the
// default registry and exposed through promhttp on each process.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TasksEnqueued counts tasks handed to the broker, by task type and queue.
	TasksEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapfeed_tasks_enqueued_total",
		Help: "The total number of tasks enqueued to the broker",
	}, []string{"type", "queue"})

	// TasksProcessed counts tasks executed by the worker, by status and type.
	// Status is "success" or "error"; retries count once per attempt.
	TasksProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapfeed_tasks_processed_total",
		Help: "The total number of processed tasks",
	}, []string{"status", "type"})

	// TaskDuration tracks task processing latency in seconds, by task type.
	TaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "snapfeed_task_duration_seconds",
		Help:    "Duration of task processing",
		Buckets: prometheus.DefBuckets,
	}, []string{"type"})

	// FeedbackSubmissions counts form submissions by outcome
	// ("accepted", "discarded", "invalid").
	FeedbackSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapfeed_feedback_submissions_total",
		Help: "The total number of feedback form submissions by outcome",
	}, []string{"outcome"})
)
