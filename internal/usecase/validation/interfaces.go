package validation

import "context"

// TextGenerator produces free-form text completions for a prompt.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	IsAvailable(ctx context.Context) bool
}

// ChangeFeed announces validation activity per idea.
type ChangeFeed interface {
	Subscribe(ideaID string) (<-chan struct{}, func())
}
