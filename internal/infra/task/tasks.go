package task

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/internal/infra/gateway"
	"github.com/snapfeedhq/snapfeed/internal/infra/repository"
)

type TaskName string

func (tn TaskName) String() string {
	return string(tn)
}

const (
	// SendFeedbackEmail delivers the notification email for one feedback
	// submission. Enqueued by the web process on form submit.
	SendFeedbackEmail TaskName = "email:send_feedback"

	// FetchPhoto pulls the next photo from the external API and saves one
	// record. Enqueued by the scheduler on its recurrence rule.
	FetchPhoto TaskName = "photos:fetch"
)

type Tasks struct {
	repo   repository.Repository
	photos gateway.PhotoAPI
	mailer gateway.Mailer
}

func NewTasks(repo repository.Repository, photos gateway.PhotoAPI, mailer gateway.Mailer) Tasks {
	return Tasks{repo: repo, photos: photos, mailer: mailer}
}

func (t Tasks) GetTasks() map[TaskName]func(context.Context, *asynq.Task) error {
	return map[TaskName]func(context.Context, *asynq.Task) error{
		SendFeedbackEmail: t.sendFeedbackEmail,
		FetchPhoto:        t.fetchPhoto,
	}
}
