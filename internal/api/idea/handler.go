package idea

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/ideanest/ideanest-backend/internal/api/middleware"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/pkg/logger"
	"github.com/ideanest/ideanest-backend/internal/pkg/validator"
)

type Handler struct {
	usecase   IdeaUsecase
	validator *validator.Validator
}

func NewHandler(usecase IdeaUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// SubmitIdea handles POST /ideas
func (h *Handler) SubmitIdea(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SubmitIdea")

	session := middleware.SessionFromContext(ctx)
	if session == nil {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req entity.SubmitIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateSubmitIdea(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	created, err := h.usecase.Submit(ctx, session.UserID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "idea submitted successfully", zap.String("idea_id", created.ID))
	h.respondJSON(w, http.StatusCreated, created)
}

// ListIdeas handles GET /ideas
func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListIdeas")

	ideas, err := h.usecase.List(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "ideas listed successfully", zap.Int("count", len(ideas)))
	h.respondJSON(w, http.StatusOK, toListResponse(ideas))
}

// ListMyIdeas handles GET /ideas/mine
func (h *Handler) ListMyIdeas(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListMyIdeas")

	session := middleware.SessionFromContext(ctx)
	if session == nil {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	ideas, err := h.usecase.ListByOwner(ctx, session.UserID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "owner ideas listed successfully", zap.Int("count", len(ideas)))
	h.respondJSON(w, http.StatusOK, toListResponse(ideas))
}

// GetIdea handles GET /ideas/{idea_id}
func (h *Handler) GetIdea(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ideaID := chi.URLParam(r, "idea_id")

	ctx = logger.AddFields(ctx,
		zap.String("idea_id", ideaID),
		zap.String("action", "GetIdea"),
	)

	found, err := h.usecase.Get(ctx, ideaID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "idea fetched successfully")
	h.respondJSON(w, http.StatusOK, found)
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
	if errors.Is(err, entity.ErrIdeaNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "idea not found", err)
	} else if errors.Is(err, entity.ErrInvalidIdea) || errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
