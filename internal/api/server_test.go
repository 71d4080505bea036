package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	ideaapi "github.com/ideanest/ideanest-backend/internal/api/idea"
	validationapi "github.com/ideanest/ideanest-backend/internal/api/validation"
	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/pkg/validator"
)

type routerIdeaStub struct{}

func (routerIdeaStub) Submit(_ context.Context, ownerID string, _ *entity.SubmitIdeaRequest) (*entity.Idea, error) {
	return &entity.Idea{ID: "idea-1", OwnerID: ownerID}, nil
}

func (routerIdeaStub) Get(_ context.Context, ideaID string) (*entity.Idea, error) {
	return &entity.Idea{ID: ideaID}, nil
}

func (routerIdeaStub) List(_ context.Context) ([]*entity.Idea, error) { return nil, nil }

func (routerIdeaStub) ListByOwner(_ context.Context, _ string) ([]*entity.Idea, error) {
	return nil, nil
}

// routerValidationStub records whether the request context handed to each
// operation carried a deadline.
type routerValidationStub struct {
	statsHadDeadline bool
	watchHadDeadline bool
	endStream        context.CancelFunc
}

func (s *routerValidationStub) LoadQuestions(_ context.Context, _ string) (*entity.QuestionsResponse, error) {
	return &entity.QuestionsResponse{}, nil
}

func (s *routerValidationStub) Submit(_ context.Context, ideaID, validatorID string, req *entity.SubmitValidationRequest) (*entity.Validation, error) {
	return &entity.Validation{IdeaID: ideaID, ValidatorID: validatorID, Vote: req.Vote}, nil
}

func (s *routerValidationStub) Stats(ctx context.Context, _ string) (entity.ValidationStats, error) {
	_, s.statsHadDeadline = ctx.Deadline()
	return entity.ValidationStats{}, nil
}

func (s *routerValidationStub) Summary(_ context.Context, _ string) (*entity.ValidationSummary, error) {
	return &entity.ValidationSummary{}, nil
}

func (s *routerValidationStub) Report(_ context.Context, _ string) (string, string, error) {
	return "", "", nil
}

func (s *routerValidationStub) Watch(ctx context.Context, _ string) (<-chan struct{}, func()) {
	_, s.watchHadDeadline = ctx.Deadline()
	if s.endStream != nil {
		s.endStream()
	}
	return make(chan struct{}), func() {}
}

func (s *routerValidationStub) GeneratorAvailable(_ context.Context) bool { return true }

func newRouter(stub *routerValidationStub) http.Handler {
	passthrough := func(next http.Handler) http.Handler { return next }
	return SetupRouter(
		ideaapi.NewHandler(routerIdeaStub{}, validator.New()),
		validationapi.NewHandler(stub, validator.New()),
		passthrough,
		zap.NewNop(),
	)
}

func TestRouterAppliesRequestTimeout(t *testing.T) {
	stub := &routerValidationStub{}
	router := newRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/validations/stats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !stub.statsHadDeadline {
		t.Error("stats request context has no deadline, want request timeout applied")
	}
}

// The event stream must stay open for as long as the subscriber is
// connected, so its request context must not carry the router's timeout.
func TestEventStreamOutlivesRequestTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &routerValidationStub{endStream: cancel}
	router := newRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/ideas/idea-1/validations/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if stub.watchHadDeadline {
		t.Error("event stream context carries a deadline, the server would cut off live subscribers")
	}
	if !strings.Contains(rec.Body.String(), "event: connected") {
		t.Errorf("body = %q, want connected event", rec.Body.String())
	}
}
