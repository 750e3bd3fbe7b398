package ai

import "context"

// Provider sends a prompt to a hosted language model and returns the raw text
// response. It makes exactly one outbound call per Complete.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
