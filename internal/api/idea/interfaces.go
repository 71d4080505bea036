package idea

import (
	"context"

	"github.com/ideanest/ideanest-backend/internal/entity"
)

type IdeaUsecase interface {
	Submit(ctx context.Context, ownerID string, req *entity.SubmitIdeaRequest) (*entity.Idea, error)
	Get(ctx context.Context, ideaID string) (*entity.Idea, error)
	List(ctx context.Context) ([]*entity.Idea, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Idea, error)
}
