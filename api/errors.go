package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure surfaced by this SDK
type ErrorKind int

const (
	// UnknownError is the catch-all for unclassified failures
	UnknownError ErrorKind = iota

	// TransportError means no response was received (connectivity)
	TransportError

	// ServerError is a non-2xx response with a well-formed error body
	ServerError

	// DecodingError means the response did not match the expected shape
	DecodingError

	// InvalidChallenge means the challenge link was missing or failed validation
	InvalidChallenge

	// ChallengeFailed means the interactive authentication session errored
	ChallengeFailed

	// ChallengeCanceled means the user backed out of the challenge
	ChallengeCanceled
)

var kinds = [...]string{
	"unknown-error",
	"transport-error",
	"server-error",
	"decoding-error",
	"invalid-challenge",
	"challenge-failed",
	"challenge-canceled",
}

// String representation of `ErrorKind`
func (k ErrorKind) String() string {
	return kinds[k]
}

// Error is the typed error returned by every SDK operation
type Error struct {
	Kind        ErrorKind
	Description string
	Cause       error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: [%v]", e.Kind, e.Description, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Description)
}

// Unwrap exposes the underlying cause to errors.Is/As
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError builds a typed SDK error
func NewError(kind ErrorKind, description string, cause error) *Error {
	return &Error{Kind: kind, Description: description, Cause: cause}
}

// KindOf classifies an arbitrary error, returning UnknownError for anything
// that did not originate from this SDK
func KindOf(err error) ErrorKind {
	var sdkErr *Error
	if errors.As(err, &sdkErr) {
		return sdkErr.Kind
	}
	return UnknownError
}
