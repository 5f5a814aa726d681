package structs

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackSubmission is the persisted form submission. The deferred email task
// receives only the ID and re-fetches the document, so what the task observes
// is the submission's state at execution time, not at enqueue time.
type FeedbackSubmission struct {
	ID          uuid.UUID  `bson:"id" json:"id"`
	Email       string     `bson:"email" json:"email"`
	Message     string     `bson:"message" json:"message"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	EmailSentAt *time.Time `bson:"email_sent_at,omitempty" json:"email_sent_at,omitempty"`
}

// SubmitFeedbackDto carries the feedback form fields. Website is a honeypot:
// humans never see it, bots fill it. It is checked and then dropped, never
// persisted.
type SubmitFeedbackDto struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=2000"`
	Website string `json:"website"`
}

func (dto SubmitFeedbackDto) IsSpam() bool {
	return dto.Website != ""
}

func (dto SubmitFeedbackDto) ToSubmission() FeedbackSubmission {
	return FeedbackSubmission{
		ID:        uuid.New(),
		Email:     dto.Email,
		Message:   dto.Message,
		CreatedAt: time.Now().UTC(),
	}
}

// SendFeedbackEmailPayload is the task message body for email:send_feedback.
// It carries the primary key only; the handler re-fetches the document. Never
// widen this to carry the submission itself.
type SendFeedbackEmailPayload struct {
	SubmissionID uuid.UUID `json:"submission_id"`
}
