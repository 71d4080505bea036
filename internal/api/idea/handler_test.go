package idea

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
	ideas map[string]*entity.Idea
}

func (s *stubUsecase) Submit(_ context.Context, ownerID string, req *entity.SubmitIdeaRequest) (*entity.Idea, error) {
	idea := &entity.Idea{ID: "new-id", OwnerID: ownerID, Name: req.Name}
	return idea, nil
}

func (s *stubUsecase) Get(_ context.Context, ideaID string) (*entity.Idea, error) {
	if idea, ok := s.ideas[ideaID]; ok {
		return idea, nil
	}
	return nil, entity.ErrIdeaNotFound
}

func (s *stubUsecase) List(_ context.Context) ([]*entity.Idea, error) {
	out := make([]*entity.Idea, 0, len(s.ideas))
	for _, idea := range s.ideas {
		out = append(out, idea)
	}
	return out, nil
}

func (s *stubUsecase) ListByOwner(_ context.Context, ownerID string) ([]*entity.Idea, error) {
	var out []*entity.Idea
	for _, idea := range s.ideas {
		if idea.OwnerID == ownerID {
			out = append(out, idea)
		}
	}
	return out, nil
}

type stubIntrospector struct{}

func (stubIntrospector) Introspect(_ context.Context, token string) (*entity.Session, error) {
	if token == "good" {
		return &entity.Session{UserID: "user-1"}, nil
	}
	return nil, entity.ErrUnauthorized
}

func newTestRouter(uc IdeaUsecase) http.Handler {
	r := chi.NewRouter()
	auth := middleware.Auth(stubIntrospector{}, time.Minute)
	RegisterRoutes(r, NewHandler(uc, validator.New()), auth)
	return r
}

func TestSubmitIdea(t *testing.T) {
	router := newTestRouter(&stubUsecase{ideas: map[string]*entity.Idea{}})

	body := strings.NewReader(`{"name":"Solar kiosk","tagline":"Charge anywhere"}`)
	req := httptest.NewRequest(http.MethodPost, "/ideas", body)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created entity.Idea
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.OwnerID != "user-1" {
		t.Errorf("owner = %q, want user-1 from session", created.OwnerID)
	}
}

func TestSubmitIdeaWithoutToken(t *testing.T) {
	router := newTestRouter(&stubUsecase{ideas: map[string]*entity.Idea{}})

	req := httptest.NewRequest(http.MethodPost, "/ideas", strings.NewReader(`{"name":"X"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSubmitIdeaValidationFailure(t *testing.T) {
	router := newTestRouter(&stubUsecase{ideas: map[string]*entity.Idea{}})

	req := httptest.NewRequest(http.MethodPost, "/ideas", strings.NewReader(`{"name":"  "}`))
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetIdeaNotFound(t *testing.T) {
	router := newTestRouter(&stubUsecase{ideas: map[string]*entity.Idea{}})

	req := httptest.NewRequest(http.MethodGet, "/ideas/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListIdeasIsPublic(t *testing.T) {
	router := newTestRouter(&stubUsecase{ideas: map[string]*entity.Idea{
		"a": {ID: "a", Name: "One"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/ideas", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp entity.IdeaListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}
}
