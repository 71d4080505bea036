package validation

import (
	"context"
	"fmt"
	"strings"
)

// Report composes a plain-text validation report for an idea: vote
// statistics followed by the AI narrative. It shares the Summary
// precondition that at least one validation exists.
func (uc *Usecase) Report(ctx context.Context, ideaID string) (title, body string, err error) {
	idea, err := uc.ideaRepo.Get(ctx, ideaID)
	if err != nil {
		return "", "", err
	}

	stats, err := uc.Stats(ctx, ideaID)
	if err != nil {
		return "", "", err
	}

	summary, err := uc.Summary(ctx, ideaID)
	if err != nil {
		return "", "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Idea: %s\n", idea.Name)
	if idea.Tagline != "" {
		fmt.Fprintf(&b, "Tagline: %s\n", idea.Tagline)
	}
	if idea.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", idea.Industry)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Validations: %d\n", stats.Total)
	fmt.Fprintf(&b, "Upvotes: %d (%d%%)\n", stats.Upvotes, Percentage(stats.Upvotes, stats.Total))
	fmt.Fprintf(&b, "Downvotes: %d (%d%%)\n", stats.Downvotes, Percentage(stats.Downvotes, stats.Total))
	fmt.Fprintf(&b, "Maybes: %d (%d%%)\n", stats.Maybes, Percentage(stats.Maybes, stats.Total))
	b.WriteString("\n")

	writeSection(&b, "What supporters say", summary.UpvoteSummary)
	writeSection(&b, "What critics say", summary.DownvoteSummary)
	writeSection(&b, "What the undecided say", summary.MaybeSummary)
	writeSection(&b, "Question analysis", summary.MCQAnalysis)
	writeSection(&b, "Overall", summary.OverallAnalysis)

	if len(summary.Recommendations) > 0 {
		b.WriteString("Recommendations\n")
		for _, rec := range summary.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}

	return fmt.Sprintf("Validation Report: %s", idea.Name), b.String(), nil
}

func writeSection(b *strings.Builder, heading, text string) {
	fmt.Fprintf(b, "%s\n%s\n\n", heading, text)
}
