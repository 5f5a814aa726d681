package cmd

import (
	"net/http"
	"os"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/snapfeedhq/snapfeed/internal/infra/cfg"
	"github.com/snapfeedhq/snapfeed/internal/infra/gateway"
	"github.com/snapfeedhq/snapfeed/internal/infra/repository"
	"github.com/snapfeedhq/snapfeed/internal/infra/task"
	"github.com/snapfeedhq/snapfeed/pkg/logs"
)

// StartWorker runs the asynq server: it pulls task messages from the broker
// and executes the registered handlers. Concurrency and queue weights come
// from config; retry, redelivery, and visibility semantics are asynq's.
func StartWorker(repo *repository.MongoRepo) {
	config := cfg.Get()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: config.Cache.CacheAddr},
		asynq.Config{
			Concurrency: config.AsynqConfig.Concurrency,
			Queues:      config.AsynqConfig.Queues,
		},
	)

	photos := gateway.NewPhotoClient(config.PhotoAPI.BaseURL)
	mailer := gateway.NewSMTPMailer(
		config.Mail.SMTPHost,
		config.Mail.SMTPPort,
		config.Mail.Username,
		config.Mail.Password,
		config.Mail.From,
		config.Mail.To,
	)
	tasks := task.NewTasks(repo, photos, mailer)

	mux := asynq.NewServeMux()
	mux.Use(task.LogMiddleware)
	mux.Use(task.MetricsMiddleware)
	for name, h := range tasks.GetTasks() {
		mux.HandleFunc(name.String(), h)
	}

	go func() {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		logs.Info("starting worker metrics server", "addr", config.AsynqConfig.MetricsAddr)
		if err := http.ListenAndServe(config.AsynqConfig.MetricsAddr, metricsMux); err != nil {
			logs.Error("worker metrics server stopped", "error", err.Error())
		}
	}()

	logs.Info("starting worker",
		"concurrency", config.AsynqConfig.Concurrency,
		"queues", config.AsynqConfig.Queues,
	)
	if err := srv.Run(mux); err != nil {
		logs.Error("could not run worker", "error", err.Error())
		os.Exit(1)
	}
}
