package idea

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers idea routes; auth wraps the endpoints that
// need a caller identity.
func RegisterRoutes(r chi.Router, h *Handler, auth func(http.Handler) http.Handler) {
	r.With(auth).Post("/ideas", h.SubmitIdea)
	r.Get("/ideas", h.ListIdeas)
	r.With(auth).Get("/ideas/mine", h.ListMyIdeas)
	r.Get("/ideas/{idea_id}", h.GetIdea)
}
