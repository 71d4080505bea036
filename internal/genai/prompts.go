// Package genai builds the prompts sent to the generative-text service and
// recovers typed results from its free-form output.
package genai

import (
	"fmt"
	"strings"

	"github.com/ideanest/ideanest-backend/internal/entity"
)

// Literal fallbacks embedded when an idea field is empty. Prompt building is
// total: it never fails, whatever the input.
const (
	fallbackName     = "Untitled Idea"
	fallbackTagline  = "No tagline"
	fallbackIndustry = "No industry"
	fallbackBrief    = "No description"
)

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// BuildMCQPrompt produces the instruction for generating the four-question
// validation set for an idea. The questions elicit validator opinion along
// the four-factor taxonomy; there is deliberately no correct answer.
func BuildMCQPrompt(idea *entity.Idea) string {
	var sb strings.Builder

	sb.WriteString("Generate exactly 4 market-validation multiple-choice questions about this business idea:\n\n")
	fmt.Fprintf(&sb, "Idea Name: %s\n", orFallback(idea.Name, fallbackName))
	fmt.Fprintf(&sb, "Tagline: %s\n", orFallback(idea.Tagline, fallbackTagline))
	fmt.Fprintf(&sb, "Industry: %s\n", orFallback(idea.Industry, fallbackIndustry))
	fmt.Fprintf(&sb, "Brief Description: %s\n\n", orFallback(idea.Brief, fallbackBrief))

	sb.WriteString("Each question must probe exactly one of these validation factors, one question per factor:\n")
	for i, factor := range entity.Factors {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, factor)
	}

	sb.WriteString("\nEach question must have exactly 4 options. ")
	sb.WriteString("These are opinion questions for community validators, not a quiz: ")
	sb.WriteString("the options must cover a spectrum of views and there must be no single correct answer.\n\n")

	sb.WriteString("Return the response in the following JSON format:\n")
	sb.WriteString(`[
  {
    "question": "Question text here",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "factor": "Feasibility"
  }
]
`)
	sb.WriteString("\nMake sure the questions are practical and help validate the idea's market potential.\n")

	return sb.String()
}

// BuildSummaryPrompt produces the instruction for synthesizing all collected
// validations into a narrative summary. Opinions are grouped by vote, and the
// MCQ answer matrix is cross-tabulated per question so the model reasons over
// option texts per sentiment group rather than raw indices.
func BuildSummaryPrompt(idea *entity.Idea, opinions entity.GroupedOpinions, matrix entity.AnswerMatrix) string {
	var sb strings.Builder

	sb.WriteString("Analyze the community validation feedback for this business idea:\n\n")
	fmt.Fprintf(&sb, "Idea Name: %s\n", orFallback(idea.Name, fallbackName))
	fmt.Fprintf(&sb, "Tagline: %s\n", orFallback(idea.Tagline, fallbackTagline))
	fmt.Fprintf(&sb, "Industry: %s\n", orFallback(idea.Industry, fallbackIndustry))
	fmt.Fprintf(&sb, "Brief Description: %s\n\n", orFallback(idea.Brief, fallbackBrief))

	fmt.Fprintf(&sb, "Upvote Opinions: %s\n", strings.Join(opinions.Upvotes, "; "))
	fmt.Fprintf(&sb, "Downvote Opinions: %s\n", strings.Join(opinions.Downvotes, "; "))
	fmt.Fprintf(&sb, "Maybe Opinions: %s\n", strings.Join(opinions.Maybes, "; "))

	writeAnswerCrossTab(&sb, matrix)

	sb.WriteString("\nPlease provide:\n")
	sb.WriteString("1. A summary of key points from upvote opinions\n")
	sb.WriteString("2. A summary of key points from downvote opinions\n")
	sb.WriteString("3. A summary of key points from maybe opinions\n")
	sb.WriteString("4. An analysis of the multiple-choice answers per validation factor\n")
	sb.WriteString("5. An overall analysis of the idea's potential\n")
	sb.WriteString("6. Three actionable recommendations for improving this idea\n\n")

	sb.WriteString("Return the response in the following JSON format:\n")
	sb.WriteString(`{
  "upvote_summary": "Summary of upvote feedback",
  "downvote_summary": "Summary of downvote feedback",
  "maybe_summary": "Summary of maybe feedback",
  "mcq_analysis": "Analysis of multiple-choice answers by factor",
  "overall_analysis": "Overall analysis of the idea",
  "recommendations": ["Recommendation 1", "Recommendation 2", "Recommendation 3"]
}
`)

	return sb.String()
}

// writeAnswerCrossTab inlines, per question, which option text each vote
// group selected. Rows carry their vote explicitly, so group membership never
// depends on row ordering. Answer indices outside the option range are
// skipped rather than failing the build.
func writeAnswerCrossTab(sb *strings.Builder, matrix entity.AnswerMatrix) {
	if len(matrix.MCQs) == 0 {
		return
	}

	sb.WriteString("\nMultiple-choice answers by question and vote group:\n")

	groups := []struct {
		label string
		vote  entity.Vote
	}{
		{"Upvoters", entity.VoteUpvote},
		{"Downvoters", entity.VoteDownvote},
		{"Maybe voters", entity.VoteMaybe},
	}

	for qi, mcq := range matrix.MCQs {
		fmt.Fprintf(sb, "Question %d [%s]: %s\n", qi+1, mcq.Factor, mcq.Question)

		for _, group := range groups {
			counts := make(map[int]int)
			for _, row := range matrix.Rows {
				if row.Vote != group.vote || qi >= len(row.Answers) {
					continue
				}
				idx := row.Answers[qi]
				if idx < 0 || idx >= len(mcq.Options) {
					continue
				}
				counts[idx]++
			}

			if len(counts) == 0 {
				fmt.Fprintf(sb, "  %s: no answers\n", group.label)
				continue
			}

			var picks []string
			for oi, option := range mcq.Options {
				if n := counts[oi]; n > 0 {
					picks = append(picks, fmt.Sprintf("%q (x%d)", option, n))
				}
			}
			fmt.Fprintf(sb, "  %s: %s\n", group.label, strings.Join(picks, ", "))
		}
	}
}
