package validator

import (
	"fmt"
	"strings"

	"github.com/ideanest/ideanest-backend/internal/entity"
)

const maxOpinionLength = 5000

// ValidateSubmitValidation checks payload shape; completeness of the
// submission itself (all questions answered, known vote) is enforced by
// the validation pipeline.
func (v *Validator) ValidateSubmitValidation(req *entity.SubmitValidationRequest) error {
	if len(req.MCQs) == 0 {
		return fmt.Errorf("%w: mcqs", entity.ErrMissingField)
	}
	if len(req.MCQAnswers) == 0 {
		return fmt.Errorf("%w: mcq_answers", entity.ErrMissingField)
	}
	if req.Vote == "" {
		return fmt.Errorf("%w: vote", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.OpinionText) == "" {
		return fmt.Errorf("%w: opinion_text", entity.ErrMissingField)
	}
	if len(req.OpinionText) > maxOpinionLength {
		return fmt.Errorf("%w: opinion_text exceeds %d characters", entity.ErrInvalidParameter, maxOpinionLength)
	}

	for _, mcq := range req.MCQs {
		if strings.TrimSpace(mcq.Question) == "" {
			return fmt.Errorf("%w: question text", entity.ErrMissingField)
		}
		if len(mcq.Options) == 0 {
			return fmt.Errorf("%w: question options", entity.ErrMissingField)
		}
	}

	return nil
}
