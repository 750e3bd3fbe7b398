package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a record id is unknown.
var ErrNotFound = errors.New("not found")

// HTTPError wraps a non-2xx status from an upstream provider.
type HTTPError struct {
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
