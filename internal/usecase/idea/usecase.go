package idea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/repository"
)

type Usecase struct {
	ideaRepo repository.IdeaRepository
	logger   *zap.Logger
}

func NewUsecase(ideaRepo repository.IdeaRepository, logger *zap.Logger) *Usecase {
	return &Usecase{
		ideaRepo: ideaRepo,
		logger:   logger,
	}
}

// Submit stores a new idea owned by the given user.
func (uc *Usecase) Submit(ctx context.Context, ownerID string, req *entity.SubmitIdeaRequest) (*entity.Idea, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrInvalidIdea)
	}

	idea := entity.Idea{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(req.Name),
		Tagline:   strings.TrimSpace(req.Tagline),
		Industry:  strings.TrimSpace(req.Industry),
		Brief:     strings.TrimSpace(req.Brief),
		Tags:      req.Tags,
		MediaURLs: req.MediaURLs,
		CreatedAt: time.Now().UTC(),
	}

	created, err := uc.ideaRepo.Create(ctx, idea)
	if err != nil {
		return nil, fmt.Errorf("submit idea: %w", err)
	}

	uc.logger.Info("idea submitted",
		zap.String("idea_id", created.ID),
		zap.String("owner_id", ownerID))

	return created, nil
}

func (uc *Usecase) Get(ctx context.Context, ideaID string) (*entity.Idea, error) {
	return uc.ideaRepo.Get(ctx, ideaID)
}

func (uc *Usecase) List(ctx context.Context) ([]*entity.Idea, error) {
	return uc.ideaRepo.List(ctx)
}

func (uc *Usecase) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Idea, error) {
	return uc.ideaRepo.ListByOwner(ctx, ownerID)
}
