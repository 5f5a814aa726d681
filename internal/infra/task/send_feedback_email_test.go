package task

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/internal/infra/gateway"
	"github.com/snapfeedhq/snapfeed/internal/infra/repository"
	"github.com/snapfeedhq/snapfeed/internal/structs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newFeedbackTask(t *testing.T, payload structs.SendFeedbackEmailPayload) *asynq.Task {
	t.Helper()
	p, err := json.Marshal(payload)
	assert.NoError(t, err)
	return asynq.NewTask(SendFeedbackEmail.String(), p)
}

func TestSendFeedbackEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Success - sends email with state re-fetched at execution time", func(t *testing.T) {
		mockRepo := repository.NewMockRepository(ctrl)
		mockPhotos := gateway.NewMockPhotoAPI(ctrl)
		mockMailer := gateway.NewMockMailer(ctrl)
		tasks := NewTasks(mockRepo, mockPhotos, mockMailer)

		id := uuid.New()

		// The stored document changed after the task was enqueued. The email
		// must carry the current state, not the enqueue-time one.
		current := structs.FeedbackSubmission{
			ID:        id,
			Email:     "edited@example.com",
			Message:   "message edited after enqueue",
			CreatedAt: time.Now().UTC(),
		}

		mockRepo.EXPECT().GetFeedback(gomock.Any(), id).Return(current, nil)
		mockMailer.EXPECT().SendFeedbackEmail(gomock.Any(), current).Return(nil)
		mockRepo.EXPECT().MarkFeedbackEmailSent(gomock.Any(), id, gomock.Any()).Return(nil)

		handler := tasks.GetTasks()[SendFeedbackEmail]
		err := handler(context.Background(), newFeedbackTask(t, structs.SendFeedbackEmailPayload{SubmissionID: id}))

		assert.NoError(t, err)
	})

	t.Run("Submission deleted before execution - skip retry", func(t *testing.T) {
		mockRepo := repository.NewMockRepository(ctrl)
		mockPhotos := gateway.NewMockPhotoAPI(ctrl)
		mockMailer := gateway.NewMockMailer(ctrl)
		tasks := NewTasks(mockRepo, mockPhotos, mockMailer)

		id := uuid.New()
		mockRepo.EXPECT().GetFeedback(gomock.Any(), id).
			Return(structs.FeedbackSubmission{}, repository.ErrNotFound)

		handler := tasks.GetTasks()[SendFeedbackEmail]
		err := handler(context.Background(), newFeedbackTask(t, structs.SendFeedbackEmailPayload{SubmissionID: id}))

		assert.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("Email already sent - redelivery is a no-op", func(t *testing.T) {
		mockRepo := repository.NewMockRepository(ctrl)
		mockPhotos := gateway.NewMockPhotoAPI(ctrl)
		mockMailer := gateway.NewMockMailer(ctrl)
		tasks := NewTasks(mockRepo, mockPhotos, mockMailer)

		id := uuid.New()
		sentAt := time.Now().UTC()
		mockRepo.EXPECT().GetFeedback(gomock.Any(), id).Return(structs.FeedbackSubmission{
			ID:          id,
			Email:       "user@example.com",
			Message:     "hello",
			EmailSentAt: &sentAt,
		}, nil)

		handler := tasks.GetTasks()[SendFeedbackEmail]
		err := handler(context.Background(), newFeedbackTask(t, structs.SendFeedbackEmailPayload{SubmissionID: id}))

		assert.NoError(t, err)
	})

	t.Run("Garbage payload - skip retry", func(t *testing.T) {
		mockRepo := repository.NewMockRepository(ctrl)
		mockPhotos := gateway.NewMockPhotoAPI(ctrl)
		mockMailer := gateway.NewMockMailer(ctrl)
		tasks := NewTasks(mockRepo, mockPhotos, mockMailer)

		handler := tasks.GetTasks()[SendFeedbackEmail]
		err := handler(context.Background(), asynq.NewTask(SendFeedbackEmail.String(), []byte("not json")))

		assert.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("Mailer failure - retryable error", func(t *testing.T) {
		mockRepo := repository.NewMockRepository(ctrl)
		mockPhotos := gateway.NewMockPhotoAPI(ctrl)
		mockMailer := gateway.NewMockMailer(ctrl)
		tasks := NewTasks(mockRepo, mockPhotos, mockMailer)

		id := uuid.New()
		submission := structs.FeedbackSubmission{ID: id, Email: "user@example.com", Message: "hi"}

		mockRepo.EXPECT().GetFeedback(gomock.Any(), id).Return(submission, nil)
		mockMailer.EXPECT().SendFeedbackEmail(gomock.Any(), submission).
			Return(assert.AnError)

		handler := tasks.GetTasks()[SendFeedbackEmail]
		err := handler(context.Background(), newFeedbackTask(t, structs.SendFeedbackEmailPayload{SubmissionID: id}))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})
}
