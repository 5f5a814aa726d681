package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/internal/infra/repository"
	"github.com/snapfeedhq/snapfeed/internal/structs"
	"github.com/snapfeedhq/snapfeed/pkg/ctxlogger"
)

func (t Tasks) sendFeedbackEmail(ctx context.Context, task *asynq.Task) error {
	var payload structs.SendFeedbackEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	// The payload carries only the primary key. Re-fetch so the email reflects
	// the submission's state now, not at enqueue time.
	submission, err := t.repo.GetFeedback(ctx, payload.SubmissionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("submission %s no longer exists: %w", payload.SubmissionID, asynq.SkipRetry)
		}
		return fmt.Errorf("get feedback submission: %w", err)
	}

	if submission.EmailSentAt != nil {
		ctxlogger.GetLogger(ctx).Warn("feedback email already sent, skipping",
			"submission_id", submission.ID.String(),
		)
		return nil
	}

	if err := t.mailer.SendFeedbackEmail(ctx, submission); err != nil {
		return fmt.Errorf("send feedback email: %w", err)
	}

	if err := t.repo.MarkFeedbackEmailSent(ctx, submission.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark feedback email sent: %w", err)
	}

	return nil
}
