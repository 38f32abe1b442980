package service

import (
	"context"
	"errors"
	"net/url"
)

// ErrSessionCanceled is returned by an AuthenticationSession when the user
// backs out of the challenge. It is surfaced to delegates as cancellation,
// never as an error result.
var ErrSessionCanceled = errors.New("authentication session canceled by user")

// AuthenticationSession runs an interactive, user-facing authentication
// challenge. Start blocks until the user completes, cancels, or the provider
// fails, and reports exactly one outcome per call: the completion callback
// URL, ErrSessionCanceled, or another error.
//
// onPresented is invoked once with whether the challenge surface could be
// shown to the user; it exists for telemetry only and must not affect the
// outcome.
type AuthenticationSession interface {
	Start(ctx context.Context, challengeURL *url.URL, onPresented func(didPresent bool)) (*url.URL, error)
}
