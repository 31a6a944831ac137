package domain

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned by profile stores for unknown users.
var ErrProfileNotFound = errors.New("profile not found")

// ValidationError reports missing or malformed request input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ProviderError reports a failed call to the time-tracking provider.
// Status is the HTTP status received, or 0 for transport and decode
// failures. The message stays generic; detail is logged, not surfaced.
type ProviderError struct {
	Status int
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("time tracking provider request failed (status %d)", e.Status)
	}
	return "time tracking provider request failed"
}

func (e *ProviderError) Unwrap() error { return e.Err }
