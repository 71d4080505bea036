package validation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers validation routes; auth wraps the endpoints
// that need a caller identity.
func RegisterRoutes(r chi.Router, h *Handler, auth func(http.Handler) http.Handler) {
	r.With(auth).Get("/ideas/{idea_id}/questions", h.GetQuestions)
	r.With(auth).Post("/ideas/{idea_id}/validations", h.SubmitValidation)
	r.Get("/ideas/{idea_id}/validations/stats", h.GetStats)
	r.Get("/ideas/{idea_id}/validations/summary", h.GetSummary)
	r.Get("/ideas/{idea_id}/validations/report", h.GetReport)

	r.Get("/genai/health", h.GenAIHealth)
}

// RegisterStreamRoutes registers the event stream separately so the router
// can keep it outside any request-timeout middleware. The stream holds its
// response open for as long as the subscriber stays connected.
func RegisterStreamRoutes(r chi.Router, h *Handler) {
	r.Get("/ideas/{idea_id}/validations/events", h.Events)
}
