package gateway

import (
	"context"

	"github.com/snapfeedhq/snapfeed/internal/structs"
)

// PhotoAPI fetches photos from the third-party photo service.
type PhotoAPI interface {
	FetchPhoto(ctx context.Context, externalID int) (structs.ExternalPhoto, error)
}

// Mailer delivers the feedback notification email.
type Mailer interface {
	SendFeedbackEmail(ctx context.Context, submission structs.FeedbackSubmission) error
}
