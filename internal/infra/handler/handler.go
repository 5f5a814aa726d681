package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/snapfeedhq/snapfeed/internal/service"
	"github.com/snapfeedhq/snapfeed/pkg/auth"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type Handler struct {
	service service.Service
	health  *HealthChecker
	routes  map[string]func(http.ResponseWriter, *http.Request)
}

func NewHandler(svc service.Service, basicAuth *auth.BasicAuth, health *HealthChecker) *Handler {
	h := &Handler{service: svc, health: health}

	h.routes = map[string]func(http.ResponseWriter, *http.Request){
		// User-facing pages
		"GET /feedback":        h.FeedbackForm,
		"POST /feedback":       h.SubmitFeedback,
		"GET /feedback/thanks": h.FeedbackThanks,
		"GET /photos":          h.ListPhotos,

		// Operational endpoints
		"GET /admin/feedback": basicAuth.Middleware(h.AdminListFeedback),
		"GET /healthz":        h.HealthCheck,
		"GET /metrics":        promhttp.Handler().ServeHTTP,
	}

	return h
}

func (h Handler) GetRoutes() map[string]func(http.ResponseWriter, *http.Request) {
	return h.routes
}
