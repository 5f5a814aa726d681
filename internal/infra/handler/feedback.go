package handler

import (
	"errors"
	"net/http"

	"github.com/snapfeedhq/snapfeed/internal/service"
	"github.com/snapfeedhq/snapfeed/internal/structs"
	"github.com/snapfeedhq/snapfeed/pkg/ctxlogger"
)

type feedbackFormData struct {
	Email   string
	Message string
	Error   string
}

func (h Handler) FeedbackForm(w http.ResponseWriter, r *http.Request) {
	renderFeedbackForm(w, http.StatusOK, feedbackFormData{})
}

// SubmitFeedback accepts the form post and hands the slow part (the email) to
// the queue. The request returns as soon as the task message is accepted by
// the broker.
func (h Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	input := structs.SubmitFeedbackDto{
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
		Website: r.PostFormValue("website"),
	}

	if _, err := h.service.SubmitFeedback(r.Context(), input); err != nil {
		if errors.Is(err, service.ErrValidation) {
			renderFeedbackForm(w, http.StatusUnprocessableEntity, feedbackFormData{
				Email:   input.Email,
				Message: input.Message,
				Error:   "Please provide a valid email address and a message.",
			})
			return
		}

		ctxlogger.GetLogger(r.Context()).Error("submit feedback failed", "error", err.Error())
		http.Error(w, "Failed to submit feedback", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/feedback/thanks", http.StatusSeeOther)
}

func (h Handler) FeedbackThanks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "thanks.html", nil); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func renderFeedbackForm(w http.ResponseWriter, status int, data feedbackFormData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, "feedback.html", data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
