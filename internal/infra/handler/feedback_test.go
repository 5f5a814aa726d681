package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/snapfeedhq/snapfeed/internal/service"
	"github.com/snapfeedhq/snapfeed/internal/structs"
	"github.com/snapfeedhq/snapfeed/pkg/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestMux(svc service.Service) *http.ServeMux {
	basicAuth := auth.NewBasicAuth(map[string]string{"admin": "secret"})
	handlers := NewHandler(svc, basicAuth, nil)

	mux := http.NewServeMux()
	for p, h := range handlers.GetRoutes() {
		mux.HandleFunc(p, h)
	}
	return mux
}

func postForm(mux *http.ServeMux, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestFeedbackForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := newTestMux(service.NewMockService(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/feedback", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="email"`)
	assert.Contains(t, rec.Body.String(), `name="message"`)
	// honeypot field must be present in the markup
	assert.Contains(t, rec.Body.String(), `name="website"`)
}

func TestSubmitFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Success - redirects to thanks page", func(t *testing.T) {
		mockService := service.NewMockService(ctrl)
		mux := newTestMux(mockService)

		expected := structs.SubmitFeedbackDto{
			Email:   "user@example.com",
			Message: "love the photos",
		}
		mockService.EXPECT().SubmitFeedback(gomock.Any(), expected).
			Return(structs.FeedbackSubmission{ID: uuid.New()}, nil)

		form := url.Values{}
		form.Set("email", expected.Email)
		form.Set("message", expected.Message)

		rec := postForm(mux, "/feedback", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/feedback/thanks", rec.Header().Get("Location"))
	})

	t.Run("Honeypot filled - bot still sees the redirect", func(t *testing.T) {
		mockService := service.NewMockService(ctrl)
		mux := newTestMux(mockService)

		mockService.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input structs.SubmitFeedbackDto) (structs.FeedbackSubmission, error) {
				assert.Equal(t, "https://spam.example.com", input.Website)
				return structs.FeedbackSubmission{}, nil
			})

		form := url.Values{}
		form.Set("email", "bot@example.com")
		form.Set("message", "buy stuff")
		form.Set("website", "https://spam.example.com")

		rec := postForm(mux, "/feedback", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/feedback/thanks", rec.Header().Get("Location"))
	})

	t.Run("Validation error - form re-rendered with 422", func(t *testing.T) {
		mockService := service.NewMockService(ctrl)
		mux := newTestMux(mockService)

		mockService.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).
			Return(structs.FeedbackSubmission{}, fmt.Errorf("%w: email", service.ErrValidation))

		form := url.Values{}
		form.Set("email", "not-an-email")
		form.Set("message", "hi")

		rec := postForm(mux, "/feedback", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "valid email address")
		// submitted values are kept in the form
		assert.Contains(t, rec.Body.String(), "not-an-email")
	})

	t.Run("Service failure - 500", func(t *testing.T) {
		mockService := service.NewMockService(ctrl)
		mux := newTestMux(mockService)

		mockService.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).
			Return(structs.FeedbackSubmission{}, assert.AnError)

		form := url.Values{}
		form.Set("email", "user@example.com")
		form.Set("message", "hi")

		rec := postForm(mux, "/feedback", form)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestFeedbackThanks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := newTestMux(service.NewMockService(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/feedback/thanks", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks for your feedback")
}

func TestListPhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service.NewMockService(ctrl)
	mux := newTestMux(mockService)

	photos := []structs.Photo{
		{ID: uuid.New(), Title: "first"},
		{ID: uuid.New(), Title: "second"},
	}
	mockService.EXPECT().ListPhotos(gomock.Any(), int64(7), int64(3)).Return(photos, nil)

	req := httptest.NewRequest(http.MethodGet, "/photos?limit=7&offset=3", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []structs.Photo
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
}

func TestAdminListFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("No credentials - 401", func(t *testing.T) {
		mux := newTestMux(service.NewMockService(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid credentials - listing returned", func(t *testing.T) {
		mockService := service.NewMockService(ctrl)
		mux := newTestMux(mockService)

		submissions := []structs.FeedbackSubmission{{ID: uuid.New(), Email: "a@example.com"}}
		mockService.EXPECT().ListFeedback(gomock.Any(), int64(0), int64(0)).Return(submissions, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
		req.SetBasicAuth("admin", "secret")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []structs.FeedbackSubmission
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 1)
	})
}
