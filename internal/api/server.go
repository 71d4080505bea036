package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ideanest/ideanest-backend/internal/api/docs"
	ideaapi "github.com/ideanest/ideanest-backend/internal/api/idea"
	"github.com/ideanest/ideanest-backend/internal/api/middleware"
	validationapi "github.com/ideanest/ideanest-backend/internal/api/validation"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	ideaHandler *ideaapi.Handler,
	validationHandler *validationapi.Handler,
	auth func(http.Handler) http.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)   // Recover from panics
	r.Use(chimiddleware.RequestID)   // Add request ID
	r.Use(middleware.Logger(logger)) // Log requests
	r.Use(middleware.CORS)           // Handle CORS

	// The event stream stays open until the subscriber disconnects, so it
	// must not run under the request timeout.
	validationapi.RegisterStreamRoutes(r, validationHandler)

	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

		// Health check endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"healthy"}`))
		})

		// Swagger documentation endpoints
		docs.RegisterRoutes(r)

		// Register routes
		ideaapi.RegisterRoutes(r, ideaHandler, auth)
		validationapi.RegisterRoutes(r, validationHandler, auth)
	})

	return r
}
