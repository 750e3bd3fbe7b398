package ai

import (
	"context"
	"errors"
)

// ErrDisabled is returned by NopProvider.
var ErrDisabled = errors.New("ai generation is disabled")

var _ Provider = (*NopProvider)(nil)

// NopProvider is used when ai.enabled is false. Every call fails, so the
// generator falls back to its error message exactly as it would for a bad key.
type NopProvider struct{}

// NewNopProvider returns a NopProvider.
func NewNopProvider() *NopProvider {
	return &NopProvider{}
}

// Complete always returns ErrDisabled.
func (n *NopProvider) Complete(_ context.Context, _ string) (string, error) {
	return "", ErrDisabled
}
