package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// ErrNotFound is returned when a single-entity query has no match in
	// either the remote or the static source. It is the only failure a
	// caller is expected to surface.
	ErrNotFound = errors.New("content not found")

	// ErrNotConfigured is returned by the remote client when delivery
	// credentials are absent. It routes to fallback exactly like a remote
	// failure and is never surfaced to callers.
	ErrNotConfigured = errors.New("remote content service not configured")

	// ErrUnknownContentType is returned when a caller asks for a content
	// type the resolver does not serve.
	ErrUnknownContentType = errors.New("unknown content type")
)

// RemoteCause classifies why a remote fetch failed. All causes route to the
// same fallback transition; the classification exists so logs and tests can
// distinguish them.
type RemoteCause string

// Remote failure causes.
const (
	CauseNetwork RemoteCause = "network"
	CauseTimeout RemoteCause = "timeout"
	CauseAuth    RemoteCause = "auth"
	CauseStatus  RemoteCause = "status"
	CauseDecode  RemoteCause = "decode"
)

// RemoteError wraps a classified remote fetch failure.
type RemoteError struct {
	Cause RemoteCause
	Err   error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote fetch failed (%s): %v", e.Cause, e.Err)
}

// Unwrap returns the underlying error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError creates a classified remote error.
func NewRemoteError(cause RemoteCause, err error) *RemoteError {
	return &RemoteError{Cause: cause, Err: err}
}

// RemoteCauseOf extracts the classified cause from an error chain.
// Configuration absence reports CauseAuth; anything unclassified reports
// CauseNetwork.
func RemoteCauseOf(err error) RemoteCause {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Cause
	}
	if errors.Is(err, ErrNotConfigured) {
		return CauseAuth
	}
	return CauseNetwork
}

// ValidationError reports that one entry failed required-field validation.
// It carries the field-level error strings so callers (and tests) can assert
// on why the entry was rejected.
type ValidationError struct {
	ContentType ContentType
	EntryID     string
	Errors      []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("entry %s (%s) failed validation: %s",
		e.EntryID, e.ContentType, strings.Join(e.Errors, "; "))
}
