// Package webauth provides a loopback-redirect implementation of the
// interactive authentication session: the challenge URL is handed to a
// browser with a redirect URI pointing at a short-lived local listener, and
// the session resolves when the provider redirects back or the context is
// canceled.
package webauth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/paypal/payments-sdk-go/config"
	"github.com/paypal/payments-sdk-go/service"
)

// Session runs one interactive authentication challenge per Start call. The
// zero value is not usable; construct with NewSession.
type Session struct {
	// ListenAddr is the loopback address to listen on for the redirect.
	// Port 0 picks a free port per challenge.
	ListenAddr string

	// OpenURL presents the challenge to the user. The default logs the URL
	// for the operator to open; host applications supply their own launcher.
	OpenURL func(challengeURL *url.URL) error
}

// NewSession builds a session from configuration
func NewSession(cfg *config.Config) *Session {
	return &Session{
		ListenAddr: cfg.WebauthListenAddr,
		OpenURL: func(challengeURL *url.URL) error {
			log.Info("authentication challenge ready", log.Data{"challenge_url": challengeURL.String()})
			return nil
		},
	}
}

// Start presents the challenge and blocks until the provider redirects back,
// the context is canceled, or presentation fails. Context cancellation is
// reported as user cancellation. Exactly one outcome is returned per call.
func (s *Session) Start(ctx context.Context, challengeURL *url.URL, onPresented func(didPresent bool)) (*url.URL, error) {
	listener, err := net.Listen("tcp", s.ListenAddr)
	if err != nil {
		if onPresented != nil {
			onPresented(false)
		}
		return nil, fmt.Errorf("error opening redirect listener: [%v]", err)
	}
	defer listener.Close()

	state := uuid.NewString()
	redirectURI := fmt.Sprintf("http://%s/return", listener.Addr().String())

	presented := *challengeURL
	query := presented.Query()
	query.Set("redirect_uri", redirectURI)
	query.Set("state", state)
	presented.RawQuery = query.Encode()

	results := make(chan *url.URL, 1)
	var deliverOnce sync.Once

	mux := http.NewServeMux()
	mux.HandleFunc("/return", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			log.Error(fmt.Errorf("redirect received with mismatched state"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body>Authentication complete. You may close this window.</body></html>")

		callback := *r.URL
		deliverOnce.Do(func() {
			results <- &callback
		})
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error(fmt.Errorf("redirect listener stopped: [%v]", err))
		}
	}()
	defer server.Shutdown(context.Background())

	openErr := s.OpenURL(&presented)
	if onPresented != nil {
		onPresented(openErr == nil)
	}
	if openErr != nil {
		return nil, fmt.Errorf("error presenting authentication challenge: [%v]", openErr)
	}

	select {
	case callbackURL := <-results:
		return callbackURL, nil
	case <-ctx.Done():
		return nil, service.ErrSessionCanceled
	}
}
