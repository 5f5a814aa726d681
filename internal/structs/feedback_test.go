package structs

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSubmitFeedbackDto(t *testing.T) {
	t.Run("honeypot detection", func(t *testing.T) {
		clean := SubmitFeedbackDto{Email: gofakeit.Email(), Message: "hi"}
		assert.False(t, clean.IsSpam())

		spam := SubmitFeedbackDto{Email: gofakeit.Email(), Message: "hi", Website: "x"}
		assert.True(t, spam.IsSpam())
	})

	t.Run("ToSubmission assigns identity and drops the honeypot", func(t *testing.T) {
		dto := SubmitFeedbackDto{
			Email:   "user@example.com",
			Message: "a message",
			Website: "should-not-survive",
		}

		submission := dto.ToSubmission()

		assert.NotEqual(t, uuid.Nil, submission.ID)
		assert.Equal(t, dto.Email, submission.Email)
		assert.Equal(t, dto.Message, submission.Message)
		assert.False(t, submission.CreatedAt.IsZero())
		assert.Nil(t, submission.EmailSentAt)
	})
}
