package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/snapfeedhq/snapfeed/internal/structs"
)

// ErrNotFound is returned when a document does not exist. Task handlers treat
// it as permanent: the referenced entity was deleted between enqueue and
// execution.
var ErrNotFound = errors.New("document not found")

// Repository defines the persistence operations used by the service and the
// task handlers.
type Repository interface {
	CreateFeedback(ctx context.Context, submission structs.FeedbackSubmission) error
	GetFeedback(ctx context.Context, id uuid.UUID) (structs.FeedbackSubmission, error)
	MarkFeedbackEmailSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	ListFeedback(ctx context.Context, limit, offset int64) ([]structs.FeedbackSubmission, error)

	CreatePhoto(ctx context.Context, photo structs.Photo) error
	ListPhotos(ctx context.Context, limit, offset int64) ([]structs.Photo, error)
	CountPhotos(ctx context.Context) (int64, error)
}
