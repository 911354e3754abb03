package domain

import (
	"errors"
	"fmt"
)

var (
	ErrModelNotFound = errors.New("model not found in catalog")
	ErrEmptyChoices  = errors.New("backend returned no choices")
)

// BackendError is a non-success response from a remote capability. Its
// message is surfaced to the user more or less verbatim.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.Status, e.Message)
}

// TransportError is a network failure or timeout reaching a capability.
// It is surfaced to the user as a generic message.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// InvalidInputError is malformed local input (empty speech text, vision
// input without image or separator). The session is left unchanged and the
// Reason is sent back as a corrective prompt.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
