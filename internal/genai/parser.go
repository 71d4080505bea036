package genai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ideanest/ideanest-backend/internal/entity"
)

// extractDelimited returns the first open-delimiter through the last
// close-delimiter of text, mirroring a greedy bracket scan over the whole
// output. ok is false when no such fragment exists.
func extractDelimited(text string, open, closing byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, closing)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseMCQs recovers the generated question set from free-form model output.
// The model usually wraps the JSON array in prose; everything outside the
// outermost brackets is discarded. Every failure mode (no brackets, decode
// error, wrong arity) surfaces as the same ErrMalformedOutput: callers retry
// the whole generation rather than branching on cause.
func ParseMCQs(text string) ([]entity.MCQ, error) {
	fragment, ok := extractDelimited(text, '[', ']')
	if !ok {
		return nil, fmt.Errorf("%w: no JSON array in output", entity.ErrMalformedOutput)
	}

	var mcqs []entity.MCQ
	if err := json.Unmarshal([]byte(fragment), &mcqs); err != nil {
		return nil, fmt.Errorf("%w: decode question array: %v", entity.ErrMalformedOutput, err)
	}

	if len(mcqs) != entity.MCQCount {
		return nil, fmt.Errorf("%w: expected %d questions, got %d", entity.ErrMalformedOutput, entity.MCQCount, len(mcqs))
	}

	return mcqs, nil
}

// ParseSummary recovers a validation summary from free-form model output.
// All five narrative fields must be present and non-empty and recommendations
// must decode as a list; the recommendation count is not checked.
func ParseSummary(text string) (*entity.ValidationSummary, error) {
	fragment, ok := extractDelimited(text, '{', '}')
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in output", entity.ErrMalformedOutput)
	}

	var summary entity.ValidationSummary
	if err := json.Unmarshal([]byte(fragment), &summary); err != nil {
		return nil, fmt.Errorf("%w: decode summary object: %v", entity.ErrMalformedOutput, err)
	}

	for field, value := range map[string]string{
		"upvote_summary":   summary.UpvoteSummary,
		"downvote_summary": summary.DownvoteSummary,
		"maybe_summary":    summary.MaybeSummary,
		"mcq_analysis":     summary.MCQAnalysis,
		"overall_analysis": summary.OverallAnalysis,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: missing field %s", entity.ErrMalformedOutput, field)
		}
	}

	if summary.Recommendations == nil {
		return nil, fmt.Errorf("%w: recommendations is not a list", entity.ErrMalformedOutput)
	}

	return &summary, nil
}
