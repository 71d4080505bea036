package entity

import (
	"fmt"
	"time"
)

// Vote is a validator's overall sentiment about an idea.
type Vote string

const (
	VoteUpvote   Vote = "upvote"
	VoteDownvote Vote = "downvote"
	VoteMaybe    Vote = "maybe"
)

func (v *Vote) Validate() error {
	switch *v {
	case VoteUpvote, VoteDownvote, VoteMaybe:
		return nil
	default:
		return fmt.Errorf("unknown vote: %s", *v)
	}
}

// Factor is the validation axis a generated question is organized around.
type Factor string

const (
	FactorFeasibility     Factor = "Feasibility"
	FactorScalability     Factor = "Scalability"
	FactorMarketPotential Factor = "Market Potential"
	FactorUniqueness      Factor = "Uniqueness"
)

// Factors lists the full four-factor taxonomy in prompt order.
var Factors = []Factor{
	FactorFeasibility,
	FactorScalability,
	FactorMarketPotential,
	FactorUniqueness,
}

// MCQCount is the number of questions generated per idea; every question
// carries exactly MCQOptionCount options.
const (
	MCQCount       = 4
	MCQOptionCount = 4
)

// UnansweredIndex marks an MCQ slot the validator has not answered yet.
// It must never survive to a submitted validation.
const UnansweredIndex = -1

// Idea is a submitted concept subject to community validation. Ideas are
// immutable once created.
type Idea struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"user_id"`
	Name      string    `json:"name"`
	Tagline   string    `json:"tagline"`
	Industry  string    `json:"industry"`
	Brief     string    `json:"brief"`
	Tags      []string  `json:"tags"`
	MediaURLs []string  `json:"media_urls"`
	CreatedAt time.Time `json:"created_at"`
}

// MCQ is one AI-generated multiple-choice sentiment question.
type MCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Factor   Factor   `json:"factor"`
}

// Validation is one validator's complete response to an idea. The MCQ set is
// duplicated on every record; the set stored on the idea's first validation
// is authoritative for all later validators.
type Validation struct {
	ID          string    `json:"id"`
	IdeaID      string    `json:"idea_id"`
	ValidatorID string    `json:"validator_id"`
	MCQs        []MCQ     `json:"mcqs"`
	MCQAnswers  []int     `json:"mcq_answers"`
	Vote        Vote      `json:"vote"`
	OpinionText string    `json:"opinion_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidationStats are the per-idea vote counts. Total counts every stored
// record, including any with a vote outside the three known categories, so
// Upvotes+Downvotes+Maybes <= Total.
type ValidationStats struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	Maybes    int `json:"maybes"`
	Total     int `json:"total"`
}

// GroupedOpinions are the opinion texts partitioned by vote, original record
// order preserved within each group.
type GroupedOpinions struct {
	Upvotes   []string `json:"upvotes"`
	Downvotes []string `json:"downvotes"`
	Maybes    []string `json:"maybes"`
}

// AnswerRow is one validator's MCQ answer vector tagged with the vote it was
// submitted under, so sentiment grouping never has to be reconstructed from
// list positions.
type AnswerRow struct {
	Vote    Vote  `json:"vote"`
	Answers []int `json:"answers"`
}

// AnswerMatrix is the shared MCQ set plus every validator's answer row.
type AnswerMatrix struct {
	MCQs []MCQ       `json:"mcqs"`
	Rows []AnswerRow `json:"rows"`
}

// ValidationSummary is the AI-generated narrative synthesis of all
// validations for one idea. Derived on demand, never persisted.
type ValidationSummary struct {
	UpvoteSummary   string   `json:"upvote_summary"`
	DownvoteSummary string   `json:"downvote_summary"`
	MaybeSummary    string   `json:"maybe_summary"`
	MCQAnalysis     string   `json:"mcq_analysis"`
	OverallAnalysis string   `json:"overall_analysis"`
	Recommendations []string `json:"recommendations"`
}

// Session is the authenticated caller as reported by the auth service.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ReportFormat selects a validation report export format.
type ReportFormat string

const (
	FormatMarkdown ReportFormat = "markdown"
	FormatPDF      ReportFormat = "pdf"
	FormatDOCX     ReportFormat = "docx"
)

func (f *ReportFormat) Validate() error {
	switch *f {
	case FormatMarkdown, FormatPDF, FormatDOCX:
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s", *f)
	}
}
