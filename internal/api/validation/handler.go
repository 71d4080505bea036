package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/ideanest/ideanest-backend/internal/api/middleware"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/pkg/formatter"
	"github.com/ideanest/ideanest-backend/internal/pkg/logger"
	"github.com/ideanest/ideanest-backend/internal/pkg/validator"
)

type Handler struct {
	usecase   ValidationUsecase
	validator *validator.Validator
}

func NewHandler(usecase ValidationUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// GetQuestions handles GET /ideas/{idea_id}/questions
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ideaID := chi.URLParam(r, "idea_id")

	ctx = logger.AddFields(ctx,
		zap.String("idea_id", ideaID),
		zap.String("action", "GetQuestions"),
	)

	questions, err := h.usecase.LoadQuestions(ctx, ideaID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "questions loaded successfully",
		zap.Bool("reused", questions.Reused),
	)
	h.respondJSON(w, http.StatusOK, questions)
}

// SubmitValidation handles POST /ideas/{idea_id}/validations
func (h *Handler) SubmitValidation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ideaID := chi.URLParam(r, "idea_id")

	ctx = logger.AddFields(ctx,
		zap.String("idea_id", ideaID),
		zap.String("action", "SubmitValidation"),
	)

	session := middleware.SessionFromContext(ctx)
	if session == nil {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req entity.SubmitValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateSubmitValidation(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	created, err := h.usecase.Submit(ctx, ideaID, session.UserID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "validation submitted successfully",
		zap.String("validation_id", created.ID),
		zap.String("vote", string(created.Vote)),
	)
	h.respondJSON(w, http.StatusCreated, created)
}

// GetStats handles GET /ideas/{idea_id}/validations/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ideaID := chi.URLParam(r, "idea_id")

	ctx = logger.AddFields(ctx,
		zap.String("idea_id", ideaID),
		zap.String("action", "GetStats"),
	)

	stats, err := h.usecase.Stats(ctx, ideaID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "stats computed successfully", zap.Int("total", stats.Total))
	h.respondJSON(w, http.StatusOK, toStatsDTO(stats))
}

// GetSummary handles GET /ideas/{idea_id}/validations/summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ideaID := chi.URLParam(r, "idea_id")

	ctx = logger.AddFields(ctx,
		zap.String("idea_id", ideaID),
		zap.String("action", "GetSummary"),
	)

	summary, err := h.usecase.Summary(ctx, ideaID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "summary generated successfully")
	h.respondJSON(w, http.StatusOK, summary)
}

// Events handles GET /ideas/{idea_id}/validations/events. It streams a
// server-sent event whenever the idea's validation set changes, so the
// analytics view can re-fetch stats without polling.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ideaID := chi.URLParam(r, "idea_id")

	ctx = logger.AddFields(ctx,
		zap.String("idea_id", ideaID),
		zap.String("action", "Events"),
	)

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.respondError(ctx, w, http.StatusInternalServerError, "streaming unsupported", nil)
		return
	}

	changes, cancel := h.usecase.Watch(ctx, ideaID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprint(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	ctxzap.Info(ctx, "event stream opened")

	for {
		select {
		case <-ctx.Done():
			ctxzap.Info(ctx, "event stream closed")
			return
		case <-changes:
			fmt.Fprint(w, "event: change\ndata: {}\n\n")
			flusher.Flush()
		}
	}
}

// GetReport handles GET /ideas/{idea_id}/validations/report
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ideaID := chi.URLParam(r, "idea_id")

	ctx = logger.AddFields(ctx,
		zap.String("idea_id", ideaID),
		zap.String("action", "GetReport"),
	)

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatMarkdown)
	}

	format := entity.ReportFormat(formatParam)
	if err := format.Validate(); err != nil {
		ctxzap.Warn(ctx, "invalid format parameter", zap.String("format", formatParam))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid format parameter",
			fmt.Errorf("format must be one of: markdown, pdf, docx"))
		return
	}

	ctx = logger.AddFields(ctx, zap.String("format", string(format)))

	title, body, err := h.usecase.Report(ctx, ideaID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	factory := formatter.NewFactory()
	fmtr, err := factory.Create(format)
	if err != nil {
		ctxzap.Error(ctx, "format not implemented", zap.Error(err))
		h.respondError(ctx, w, http.StatusNotImplemented, "format not implemented", err)
		return
	}

	formatted, err := fmtr.Format(title, body)
	if err != nil {
		ctxzap.Error(ctx, "failed to format report", zap.Error(err))
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to format report", err)
		return
	}

	ctxzap.Info(ctx, "report generated successfully")
	w.Header().Set("Content-Type", fmtr.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"validation-report-%s%s\"", ideaID, fmtr.FileExtension()))
	w.WriteHeader(http.StatusOK)
	w.Write(formatted)
}

// GenAIHealth handles GET /genai/health
func (h *Handler) GenAIHealth(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenAIHealth")

	if !h.usecase.GeneratorAvailable(ctx) {
		ctxzap.Warn(ctx, "text generation backend unavailable")
		h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"status": "available",
	})
}

// Helper methods
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrIdeaNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "idea not found", err)
	case errors.Is(err, entity.ErrNoValidations):
		h.respondError(ctx, w, http.StatusNotFound, "no validations yet", err)
	case errors.Is(err, entity.ErrIncompleteSubmission), errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrInvalidParameter):
		h.respondError(ctx, w, http.StatusBadRequest, "incomplete submission", err)
	case errors.Is(err, entity.ErrAlreadyValidated), errors.Is(err, entity.ErrDuplicateValidation):
		h.respondError(ctx, w, http.StatusConflict, "idea already validated by this user", err)
	case errors.Is(err, entity.ErrNotConfigured):
		h.respondError(ctx, w, http.StatusServiceUnavailable, "text generation is not configured", err)
	case errors.Is(err, entity.ErrGenerationFailed), errors.Is(err, entity.ErrMalformedOutput):
		h.respondError(ctx, w, http.StatusBadGateway, "text generation failed", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
