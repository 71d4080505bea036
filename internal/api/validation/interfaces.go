package validation

import (
	"context"

	"github.com/ideanest/ideanest-backend/internal/entity"
)

type ValidationUsecase interface {
	LoadQuestions(ctx context.Context, ideaID string) (*entity.QuestionsResponse, error)
	Submit(ctx context.Context, ideaID, validatorID string, req *entity.SubmitValidationRequest) (*entity.Validation, error)
	Stats(ctx context.Context, ideaID string) (entity.ValidationStats, error)
	Summary(ctx context.Context, ideaID string) (*entity.ValidationSummary, error)
	Report(ctx context.Context, ideaID string) (title, body string, err error)
	Watch(ctx context.Context, ideaID string) (<-chan struct{}, func())
	GeneratorAvailable(ctx context.Context) bool
}
