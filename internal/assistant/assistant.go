// Package assistant models the lifecycle of a single drafting session:
// idle, loading, generated, then either accepted or retried back to idle.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State is a step in the drafting lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateGenerated
	StateAccepted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateGenerated:
		return "generated"
	case StateAccepted:
		return "accepted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	// ErrPending is returned when a generation is started while one is already loading.
	ErrPending = errors.New("generation already in progress")
	// ErrInvalidTransition is returned for any other move the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid assistant transition")
)

// GenerateFunc produces the draft text. It never fails; failures come back as
// a fallback message, as ai.Generator does.
type GenerateFunc func(ctx context.Context) string

// Assistant holds one draft. It is safe for concurrent use.
type Assistant struct {
	mu      sync.Mutex
	state   State
	content string
}

// New returns an idle assistant.
func New() *Assistant {
	return &Assistant{}
}

// State returns the current state.
func (a *Assistant) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Content returns the current draft, including any edits.
func (a *Assistant) Content() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.content
}

// Start moves idle to loading. A second Start while loading gets ErrPending.
func (a *Assistant) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch a.state {
	case StateIdle:
		a.state = StateLoading
		return nil
	case StateLoading:
		return ErrPending
	}
	return fmt.Errorf("start from %s: %w", a.state, ErrInvalidTransition)
}

// Finish stores text as the draft and moves loading to generated.
func (a *Assistant) Finish(text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateLoading {
		return fmt.Errorf("finish from %s: %w", a.state, ErrInvalidTransition)
	}
	a.content = text
	a.state = StateGenerated
	return nil
}

// Edit replaces the draft while it is being reviewed.
func (a *Assistant) Edit(text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateGenerated {
		return fmt.Errorf("edit from %s: %w", a.state, ErrInvalidTransition)
	}
	a.content = text
	return nil
}

// Accept moves generated to accepted and returns the final draft.
func (a *Assistant) Accept() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateGenerated {
		return "", fmt.Errorf("accept from %s: %w", a.state, ErrInvalidTransition)
	}
	a.state = StateAccepted
	return a.content, nil
}

// Retry discards the review and moves generated back to idle. The previous
// draft stays in Content until the next Finish replaces it.
func (a *Assistant) Retry() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateGenerated {
		return fmt.Errorf("retry from %s: %w", a.state, ErrInvalidTransition)
	}
	a.state = StateIdle
	return nil
}

// Run performs Start, calls fn, and Finishes with its result. It blocks for
// the duration of fn.
func (a *Assistant) Run(ctx context.Context, fn GenerateFunc) (string, error) {
	if err := a.Start(); err != nil {
		return "", err
	}
	text := fn(ctx)
	if err := a.Finish(text); err != nil {
		return "", err
	}
	return text, nil
}
