package validation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ideanest/ideanest-backend/internal/api/middleware"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/pkg/validator"
)

type stubUsecase struct {
	questions *entity.QuestionsResponse
	stats     entity.ValidationStats
	summary   *entity.ValidationSummary
	available bool
	err       error
}

func (s *stubUsecase) LoadQuestions(_ context.Context, _ string) (*entity.QuestionsResponse, error) {
	return s.questions, s.err
}

func (s *stubUsecase) Submit(_ context.Context, ideaID, validatorID string, req *entity.SubmitValidationRequest) (*entity.Validation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Validation{ID: "val-1", IdeaID: ideaID, ValidatorID: validatorID, Vote: req.Vote}, nil
}

func (s *stubUsecase) Stats(_ context.Context, _ string) (entity.ValidationStats, error) {
	return s.stats, s.err
}

func (s *stubUsecase) Summary(_ context.Context, _ string) (*entity.ValidationSummary, error) {
	return s.summary, s.err
}

func (s *stubUsecase) Report(_ context.Context, _ string) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	return "Validation Report: Solar kiosk", "Upvotes: 2 (67%)\n", nil
}

func (s *stubUsecase) Watch(_ context.Context, _ string) (<-chan struct{}, func()) {
	ch := make(chan struct{})
	return ch, func() {}
}

func (s *stubUsecase) GeneratorAvailable(_ context.Context) bool { return s.available }

type stubIntrospector struct{}

func (stubIntrospector) Introspect(_ context.Context, token string) (*entity.Session, error) {
	if token == "good" {
		return &entity.Session{UserID: "validator-1"}, nil
	}
	return nil, entity.ErrUnauthorized
}

func newTestRouter(uc ValidationUsecase) http.Handler {
	r := chi.NewRouter()
	auth := middleware.Auth(stubIntrospector{}, time.Minute)
	RegisterRoutes(r, NewHandler(uc, validator.New()), auth)
	return r
}

func sampleMCQsJSON() string {
	return `[
		{"question": "Q1?", "options": ["a", "b", "c", "d"], "factor": "Feasibility"},
		{"question": "Q2?", "options": ["a", "b", "c", "d"], "factor": "Scalability"},
		{"question": "Q3?", "options": ["a", "b", "c", "d"], "factor": "Market Potential"},
		{"question": "Q4?", "options": ["a", "b", "c", "d"], "factor": "Uniqueness"}
	]`
}

func TestGetQuestionsRequiresAuth(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/questions", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestGetQuestions(t *testing.T) {
	router := newTestRouter(&stubUsecase{questions: &entity.QuestionsResponse{
		MCQs:   make([]entity.MCQ, entity.MCQCount),
		Reused: true,
	}})

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/questions", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp entity.QuestionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Reused {
		t.Error("expected reused flag")
	}
}

func TestSubmitValidation(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	body := `{"mcqs": ` + sampleMCQsJSON() + `, "mcq_answers": [0,1,2,3], "vote": "upvote", "opinion_text": "Solid."}`
	req := httptest.NewRequest(http.MethodPost, "/ideas/idea-1/validations", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created entity.Validation
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ValidatorID != "validator-1" {
		t.Errorf("validator = %q, want validator-1 from session", created.ValidatorID)
	}
}

func TestSubmitValidationMissingOpinion(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	body := `{"mcqs": ` + sampleMCQsJSON() + `, "mcq_answers": [0,1,2,3], "vote": "upvote", "opinion_text": ""}`
	req := httptest.NewRequest(http.MethodPost, "/ideas/idea-1/validations", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitValidationConflict(t *testing.T) {
	router := newTestRouter(&stubUsecase{err: entity.ErrAlreadyValidated})

	body := `{"mcqs": ` + sampleMCQsJSON() + `, "mcq_answers": [0,1,2,3], "vote": "upvote", "opinion_text": "Solid."}`
	req := httptest.NewRequest(http.MethodPost, "/ideas/idea-1/validations", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestGetStatsRendersPercentages(t *testing.T) {
	router := newTestRouter(&stubUsecase{stats: entity.ValidationStats{
		Upvotes: 2, Downvotes: 1, Total: 3,
	}})

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/validations/stats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var dto entity.ValidationStatsDTO
	if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.UpvotePercent != "67% of total" {
		t.Errorf("upvote percent = %q, want \"67%% of total\"", dto.UpvotePercent)
	}
	if dto.DownvotePercent != "33% of total" {
		t.Errorf("downvote percent = %q, want \"33%% of total\"", dto.DownvotePercent)
	}
}

func TestGetStatsWithoutValidations(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/validations/stats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var dto entity.ValidationStatsDTO
	if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, got := range []string{dto.UpvotePercent, dto.DownvotePercent, dto.MaybePercent} {
		if got != "No validations yet" {
			t.Errorf("percent = %q, want \"No validations yet\"", got)
		}
	}
}

func TestGetSummaryNoValidations(t *testing.T) {
	router := newTestRouter(&stubUsecase{err: entity.ErrNoValidations})

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/validations/summary", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetSummaryGenerationFailure(t *testing.T) {
	router := newTestRouter(&stubUsecase{err: entity.ErrMalformedOutput})

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/validations/summary", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestGetReportMarkdown(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/validations/report?format=markdown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "validation-report-idea-1.md") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "# Validation Report: Solar kiosk") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestGetReportUnsupportedFormat(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/validations/report?format=xlsx", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenAIHealth(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		want      int
	}{
		{"available", true, http.StatusOK},
		{"unavailable", false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubUsecase{available: tt.available})

			req := httptest.NewRequest(http.MethodGet, "/genai/health", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
