package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snapfeedhq/snapfeed/pkg/queryparser"
)

type paginationQuery struct {
	Limit  int64 `query:"limit"`
	Offset int64 `query:"offset"`
}

func (h Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	var page paginationQuery
	if err := queryparser.ParseQueryParams(r.URL.Query(), &page); err != nil {
		http.Error(w, "Invalid query parameters", http.StatusBadRequest)
		return
	}

	photos, err := h.service.ListPhotos(r.Context(), page.Limit, page.Offset)
	if err != nil {
		http.Error(w, "Failed to list photos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(photos); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h Handler) AdminListFeedback(w http.ResponseWriter, r *http.Request) {
	var page paginationQuery
	if err := queryparser.ParseQueryParams(r.URL.Query(), &page); err != nil {
		http.Error(w, "Invalid query parameters", http.StatusBadRequest)
		return
	}

	submissions, err := h.service.ListFeedback(r.Context(), page.Limit, page.Offset)
	if err != nil {
		http.Error(w, "Failed to list feedback", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(submissions); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
