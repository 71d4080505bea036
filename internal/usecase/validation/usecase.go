package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/genai"
	"github.com/ideanest/ideanest-backend/internal/repository"
)

type Usecase struct {
	ideaRepo       repository.IdeaRepository
	validationRepo repository.ValidationRepository
	generator      TextGenerator
	feed           ChangeFeed
	logger         *zap.Logger
}

func NewUsecase(
	ideaRepo repository.IdeaRepository,
	validationRepo repository.ValidationRepository,
	generator TextGenerator,
	feed ChangeFeed,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		ideaRepo:       ideaRepo,
		validationRepo: validationRepo,
		generator:      generator,
		feed:           feed,
		logger:         logger,
	}
}

// LoadQuestions returns the MCQ set for an idea. The set stored on the
// idea's first validation wins; a fresh set is generated only when no
// validation exists yet. Freshly generated sets are not persisted here,
// they become durable once the first validator submits.
func (uc *Usecase) LoadQuestions(ctx context.Context, ideaID string) (*entity.QuestionsResponse, error) {
	idea, err := uc.ideaRepo.Get(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.validationRepo.FirstMCQs(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("load stored questions: %w", err)
	}
	if len(existing) > 0 {
		return &entity.QuestionsResponse{MCQs: existing, Reused: true}, nil
	}

	text, err := uc.generator.Complete(ctx, genai.BuildMCQPrompt(idea))
	if err != nil {
		return nil, err
	}

	mcqs, err := genai.ParseMCQs(text)
	if err != nil {
		uc.logger.Warn("discarding malformed question output",
			zap.String("idea_id", ideaID),
			zap.Error(err))
		return nil, err
	}

	return &entity.QuestionsResponse{MCQs: mcqs, Reused: false}, nil
}

// Submit records a validator's complete response. Partial submissions are
// rejected as a unit and each validator may validate an idea only once.
func (uc *Usecase) Submit(ctx context.Context, ideaID, validatorID string, req *entity.SubmitValidationRequest) (*entity.Validation, error) {
	if err := checkComplete(req); err != nil {
		return nil, err
	}

	if _, err := uc.ideaRepo.Get(ctx, ideaID); err != nil {
		return nil, err
	}

	exists, err := uc.validationRepo.ExistsForValidator(ctx, ideaID, validatorID)
	if err != nil {
		return nil, fmt.Errorf("check prior validation: %w", err)
	}
	if exists {
		return nil, entity.ErrAlreadyValidated
	}

	stored, err := uc.validationRepo.FirstMCQs(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("load stored questions: %w", err)
	}
	if len(stored) > 0 && !sameQuestionSet(stored, req.MCQs) {
		return nil, fmt.Errorf("%w: question set does not match the idea's stored set",
			entity.ErrIncompleteSubmission)
	}

	created, err := uc.validationRepo.Create(ctx, entity.Validation{
		ID:          uuid.NewString(),
		IdeaID:      ideaID,
		ValidatorID: validatorID,
		MCQs:        req.MCQs,
		MCQAnswers:  req.MCQAnswers,
		Vote:        req.Vote,
		OpinionText: strings.TrimSpace(req.OpinionText),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("store validation: %w", err)
	}

	uc.logger.Info("validation submitted",
		zap.String("idea_id", ideaID),
		zap.String("validator_id", validatorID),
		zap.String("vote", string(created.Vote)))

	return created, nil
}

func checkComplete(req *entity.SubmitValidationRequest) error {
	if len(req.MCQs) == 0 {
		return fmt.Errorf("%w: question set missing", entity.ErrIncompleteSubmission)
	}
	if len(req.MCQAnswers) != len(req.MCQs) {
		return fmt.Errorf("%w: %d answers for %d questions",
			entity.ErrIncompleteSubmission, len(req.MCQAnswers), len(req.MCQs))
	}
	for i, answer := range req.MCQAnswers {
		if answer < 0 || answer >= len(req.MCQs[i].Options) {
			return fmt.Errorf("%w: question %d unanswered", entity.ErrIncompleteSubmission, i+1)
		}
	}
	if err := req.Vote.Validate(); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrIncompleteSubmission, err)
	}
	if strings.TrimSpace(req.OpinionText) == "" {
		return fmt.Errorf("%w: opinion text missing", entity.ErrIncompleteSubmission)
	}
	return nil
}

// sameQuestionSet reports whether two MCQ sets ask identical questions with
// identical options in the same order. Every validator of an idea must
// answer the set stored on its first validation.
func sameQuestionSet(a, b []entity.MCQ) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Question != b[i].Question || a[i].Factor != b[i].Factor {
			return false
		}
		if len(a[i].Options) != len(b[i].Options) {
			return false
		}
		for j := range a[i].Options {
			if a[i].Options[j] != b[i].Options[j] {
				return false
			}
		}
	}
	return true
}

// Stats aggregates vote counts for an idea.
func (uc *Usecase) Stats(ctx context.Context, ideaID string) (entity.ValidationStats, error) {
	if _, err := uc.ideaRepo.Get(ctx, ideaID); err != nil {
		return entity.ValidationStats{}, err
	}

	validations, err := uc.validationRepo.ListByIdea(ctx, ideaID)
	if err != nil {
		return entity.ValidationStats{}, fmt.Errorf("list validations: %w", err)
	}

	return Aggregate(validations), nil
}

// Summary synthesizes all stored validations of an idea into a narrative.
// It is derived on demand and never persisted; with zero validations the
// model is not consulted at all.
func (uc *Usecase) Summary(ctx context.Context, ideaID string) (*entity.ValidationSummary, error) {
	idea, err := uc.ideaRepo.Get(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	validations, err := uc.validationRepo.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("list validations: %w", err)
	}
	if len(validations) == 0 {
		return nil, entity.ErrNoValidations
	}

	prompt := genai.BuildSummaryPrompt(idea, GroupOpinions(validations), BuildAnswerMatrix(validations))

	text, err := uc.generator.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	summary, err := genai.ParseSummary(text)
	if err != nil {
		uc.logger.Warn("discarding malformed summary output",
			zap.String("idea_id", ideaID),
			zap.Error(err))
		return nil, err
	}

	return summary, nil
}

// Watch returns a channel that fires when the idea's validation set
// changes, plus a cancel function the caller must invoke when done. The
// context is the subscriber's; delivery itself is driven by the feed.
func (uc *Usecase) Watch(_ context.Context, ideaID string) (<-chan struct{}, func()) {
	return uc.feed.Subscribe(ideaID)
}

// GeneratorAvailable reports whether the text generation backend is
// reachable and configured.
func (uc *Usecase) GeneratorAvailable(ctx context.Context) bool {
	return uc.generator.IsAvailable(ctx)
}
