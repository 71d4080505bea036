package gemini

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is the offline stand-in for the generative service, selected
// by ENABLE_MOCKS. It answers MCQ prompts with a fixed prose-wrapped question
// set and summary prompts with a fixed analysis object, exercising the same
// parsing path as real output.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

const mockMCQText = `Sure! Here are four validation questions:
[
  {
    "question": "How realistic is it to build and operate this idea with current technology?",
    "options": ["Fully realistic today", "Realistic with moderate effort", "Hard but possible", "Not realistic yet"],
    "factor": "Feasibility"
  },
  {
    "question": "How well could this idea grow beyond its first market?",
    "options": ["Scales globally", "Scales regionally", "Scales within a niche", "Does not scale"],
    "factor": "Scalability"
  },
  {
    "question": "How strong is the market demand for this idea?",
    "options": ["Urgent widespread need", "Clear niche demand", "Mild interest", "No real demand"],
    "factor": "Market Potential"
  },
  {
    "question": "How distinct is this idea from existing alternatives?",
    "options": ["Entirely new category", "Strong differentiation", "Incremental improvement", "Commodity offering"],
    "factor": "Uniqueness"
  }
]
Good luck with the validation!`

const mockSummaryText = `Here is the analysis you requested:
{
  "upvote_summary": "Supporters see a clear problem being solved and like the focused scope. (MOCK)",
  "downvote_summary": "Critics question the cost structure and the size of the initial market. (MOCK)",
  "maybe_summary": "Undecided validators want to see early traction before committing. (MOCK)",
  "mcq_analysis": "Feasibility and uniqueness answers skew positive; scalability answers are split across groups. (MOCK)",
  "overall_analysis": "A promising idea with genuine demand signals, contingent on proving unit economics early. (MOCK)",
  "recommendations": ["Run a small paid pilot", "Publish a pricing model", "Interview ten target customers"]
}`

func (m *MockConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] completing prompt", zap.Int("prompt_length", len(prompt)))

	switch {
	case strings.Contains(prompt, "multiple-choice questions"):
		return mockMCQText, nil
	case strings.Contains(prompt, "validation feedback"):
		return mockSummaryText, nil
	default:
		return "OK", nil
	}
}

func (m *MockConnector) IsAvailable(ctx context.Context) bool {
	ctxzap.Info(ctx, "[MOCK] availability check")
	return true
}
