package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/snapfeedhq/snapfeed/internal/infra/repository"
	"github.com/snapfeedhq/snapfeed/internal/infra/task"
	"github.com/snapfeedhq/snapfeed/internal/structs"
	"github.com/snapfeedhq/snapfeed/pkg/ctxlogger"
	"github.com/snapfeedhq/snapfeed/pkg/metrics"
	"github.com/snapfeedhq/snapfeed/pkg/publisher"
)

// ErrValidation marks submissions rejected by input validation.
var ErrValidation = errors.New("invalid feedback submission")

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

var _ Service = (*Snapfeed)(nil)

type Snapfeed struct {
	repo      repository.Repository
	publisher publisher.Publisher
	validate  *validator.Validate
}

func NewService(repo repository.Repository, publisher publisher.Publisher) *Snapfeed {
	return &Snapfeed{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SubmitFeedback validates and persists a form submission, then enqueues the
// email:send_feedback task carrying the submission's primary key. Honeypot
// hits are silently discarded: the bot gets the same response a human would,
// and nothing is persisted or enqueued.
func (s Snapfeed) SubmitFeedback(ctx context.Context, input structs.SubmitFeedbackDto) (structs.FeedbackSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("invalid").Inc()
		return structs.FeedbackSubmission{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if input.IsSpam() {
		metrics.FeedbackSubmissions.WithLabelValues("discarded").Inc()
		ctxlogger.GetLogger(ctx).Warn("feedback discarded by honeypot")
		return structs.FeedbackSubmission{}, nil
	}

	submission := input.ToSubmission()
	if err := s.repo.CreateFeedback(ctx, submission); err != nil {
		return structs.FeedbackSubmission{}, fmt.Errorf("create feedback submission: %w", err)
	}

	payload := structs.SendFeedbackEmailPayload{SubmissionID: submission.ID}
	if err := s.publisher.Publish(ctx, task.SendFeedbackEmail.String(), payload, publisher.WithQueue("critical")); err != nil {
		// Enqueue failure is synchronous and final: no fallback to sending
		// the email inline.
		return structs.FeedbackSubmission{}, fmt.Errorf("enqueue feedback email: %w", err)
	}

	metrics.FeedbackSubmissions.WithLabelValues("accepted").Inc()

	return submission, nil
}

func (s Snapfeed) ListPhotos(ctx context.Context, limit, offset int64) ([]structs.Photo, error) {
	limit, offset = clampPagination(limit, offset)

	photos, err := s.repo.ListPhotos(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	return photos, nil
}

func (s Snapfeed) ListFeedback(ctx context.Context, limit, offset int64) ([]structs.FeedbackSubmission, error) {
	limit, offset = clampPagination(limit, offset)

	submissions, err := s.repo.ListFeedback(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	return submissions, nil
}

func clampPagination(limit, offset int64) (int64, int64) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
