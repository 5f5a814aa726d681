package cmd

import (
	"os"
	"strconv"

	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/internal/infra/cfg"
	"github.com/snapfeedhq/snapfeed/internal/infra/task"
	"github.com/snapfeedhq/snapfeed/pkg/logs"
	"github.com/snapfeedhq/snapfeed/pkg/schedule"
)

// StartScheduler runs the beat process. It loads the task-name to cron-spec
// table from config, validates every entry, and registers them with the asynq
// scheduler. Missed ticks while the process was down are not replayed.
func StartScheduler() {
	config := cfg.Get()

	loc, err := schedule.Location(config.Scheduler.Timezone)
	if err != nil {
		panic(err)
	}

	entries := []schedule.Entry{
		{TaskName: task.FetchPhoto.String(), Cronspec: config.Scheduler.FetchPhotosSpec, Queue: "low"},
	}

	if err := schedule.ValidateAll(entries); err != nil {
		panic(err)
	}

	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: config.Cache.CacheAddr},
		&asynq.SchedulerOpts{
			Location: loc,
			EnqueueErrorHandler: func(t *asynq.Task, opts []asynq.Option, err error) {
				logs.Error("scheduler enqueue failed", "task_type", t.Type(), "error", err.Error())
			},
		},
	)

	for _, e := range entries {
		entryID, err := scheduler.Register(e.Cronspec, asynq.NewTask(e.TaskName, nil), asynq.Queue(e.Queue))
		if err != nil {
			panic(err)
		}
		logs.Info("registered periodic task",
			"entry_id", entryID,
			"task_type", e.TaskName,
			"cronspec", e.Cronspec,
			"timezone", loc.String(),
		)
	}

	writePidFile(config.Scheduler.PidFile)
	defer removePidFile(config.Scheduler.PidFile)

	if err := scheduler.Run(); err != nil {
		logs.Error("could not run scheduler", "error", err.Error())
		os.Exit(1)
	}
}

// The pid file is machine-local state for the process supervisor; it is
// excluded from version control.
func writePidFile(path string) {
	if path == "" {
		return
	}

	pid := strconv.Itoa(os.Getpid()) + "\n"
	if err := os.WriteFile(path, []byte(pid), 0o644); err != nil {
		logs.Warn("could not write pid file", "path", path, "error", err.Error())
	}
}

func removePidFile(path string) {
	if path == "" {
		return
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logs.Warn("could not remove pid file", "path", path, "error", err.Error())
	}
}
