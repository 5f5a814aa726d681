package service

import (
	"context"

	"github.com/snapfeedhq/snapfeed/internal/structs"
)

// Service defines the interface for the service layer operations
type Service interface {
	SubmitFeedback(ctx context.Context, input structs.SubmitFeedbackDto) (structs.FeedbackSubmission, error)
	ListPhotos(ctx context.Context, limit, offset int64) ([]structs.Photo, error)
	ListFeedback(ctx context.Context, limit, offset int64) ([]structs.FeedbackSubmission, error)
}
