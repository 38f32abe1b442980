package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/paypal/payments-sdk-go/api"
	"github.com/paypal/payments-sdk-go/config"
	"github.com/paypal/payments-sdk-go/models"
)

// Telemetry event names emitted by the card flows
const (
	eventApproveStarted          = "card-payments:3ds:started"
	eventApproveSucceeded        = "card-payments:3ds:succeeded"
	eventApproveFailed           = "card-payments:3ds:failed"
	eventApproveCanceled         = "card-payments:3ds:challenge:user-canceled"
	eventConfirmSucceeded        = "card-payments:3ds:confirm-payment-source:succeeded"
	eventConfirmFailed           = "card-payments:3ds:confirm-payment-source:failed"
	eventChallengeRequired       = "card-payments:3ds:confirm-payment-source:challenge-required"
	eventChallengePresented      = "card-payments:3ds:challenge-presentation:succeeded"
	eventChallengePresentFailed  = "card-payments:3ds:challenge-presentation:failed"
	eventVaultStarted            = "card-payments:vault:started"
	eventVaultSucceeded          = "card-payments:vault:succeeded"
	eventVaultFailed             = "card-payments:vault:failed"
	eventVaultCanceled           = "card-payments:vault:challenge:user-canceled"
	eventVaultChallengeRequired  = "card-payments:vault:update-setup-token:challenge-required"
	eventPayPalCheckoutStarted   = "paypal-web-payments:checkout:started"
	eventPayPalCheckoutSucceeded = "paypal-web-payments:checkout:succeeded"
	eventPayPalCheckoutFailed    = "paypal-web-payments:checkout:failed"
	eventPayPalCheckoutCanceled  = "paypal-web-payments:checkout:user-canceled"
)

// AnalyticsService sends fire-and-forget telemetry to the tracking events
// API. Sending never blocks a payment flow and failures are swallowed after
// logging; they must not affect the primary result.
type AnalyticsService struct {
	Client      *api.Client
	ClientID    string
	Environment string
	SessionID   string
}

// NewAnalyticsService builds an analytics service for one SDK instance. The
// tracking endpoint only ingests events on the live host, regardless of the
// configured environment.
func NewAnalyticsService(cfg *config.Config) *AnalyticsService {
	return &AnalyticsService{
		Client:      api.NewClient("https://api.paypal.com", cfg.ClientID),
		ClientID:    cfg.ClientID,
		Environment: cfg.Environment,
		SessionID:   uuid.NewString(),
	}
}

// SendEvent emits one named event in the background
func (a *AnalyticsService) SendEvent(name, orderID string) {
	if a == nil {
		return
	}
	go func() {
		if err := a.performEventRequest(context.Background(), name, orderID); err != nil {
			log.Error(fmt.Errorf("error sending analytics event %s: [%v]", name, err))
		}
	}()
}

// performEventRequest issues the tracking call synchronously. Split out so
// tests can run it without racing the background goroutine.
func (a *AnalyticsService) performEventRequest(ctx context.Context, name, orderID string) error {
	event := models.AnalyticsEventRequest{
		Events: models.AnalyticsEvents{
			EventParams: models.AnalyticsEventParams{
				AppID:           "N/A",
				AppName:         "payments-sdk-go",
				PartnerClientID: a.ClientID,
				Component:       "ppcpclientsdk",
				Environment:     a.Environment,
				EventName:       name,
				EventSource:     "backend",
				OrderID:         orderID,
				SessionID:       a.SessionID,
				Timestamp:       strconv.FormatInt(time.Now().UnixMilli(), 10),
				TenantName:      "PayPal",
			},
		},
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error encoding analytics event: [%v]", err)
	}

	response, err := a.Client.Fetch(ctx, http.MethodPost, "/v1/tracking/events", body)
	if err != nil {
		return err
	}
	if !response.Successful() {
		return fmt.Errorf("error status [%v] back from tracking events API", response.StatusCode)
	}
	return nil
}
