package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for music operations
var (
	// ErrUnknownSource indicates a source identifier outside the supported set
	ErrUnknownSource = errors.New("unknown music source")

	// ErrAllSourcesFailed indicates every source in a fan-out search failed
	ErrAllSourcesFailed = errors.New("all music sources failed")

	// ErrBadEnvelope indicates a response whose status field is not the
	// source's success value
	ErrBadEnvelope = errors.New("unexpected response envelope")

	// ErrMissingTitle indicates a detail response carrying no song name
	// under any of the source's field aliases
	ErrMissingTitle = errors.New("song detail missing title")
)

// TransportError wraps a network failure, timeout, or non-success HTTP
// status from one source. Absorbed per-source during fan-out search,
// surfaced for single-target detail fetches.
type TransportError struct {
	Source SourceID
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError describes a malformed source response. Individual bad
// search items are dropped rather than reported; this type is only surfaced
// when an entire detail record is unusable.
type ValidationError struct {
	Source SourceID
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid response: %v", e.Source, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
