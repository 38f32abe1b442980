package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/companieshouse/chs.go/log"
	"github.com/paypal/payments-sdk-go/api"
	"github.com/paypal/payments-sdk-go/config"
	"github.com/paypal/payments-sdk-go/models"
)

// PayPalWebCheckoutClient drives the browser-based PayPal approval flow for
// an existing order: it builds the checkout URL, runs the interactive
// session, and parses the approval out of the completion callback URL.
type PayPalWebCheckoutClient struct {
	WebBaseURL     string
	CallbackScheme string
	Session        AuthenticationSession
	Analytics      *AnalyticsService
}

// NewPayPalWebCheckoutClient wires a web checkout client against the
// configured environment
func NewPayPalWebCheckoutClient(cfg *config.Config, session AuthenticationSession) *PayPalWebCheckoutClient {
	return &PayPalWebCheckoutClient{
		WebBaseURL:     cfg.WebBaseURL(),
		CallbackScheme: cfg.CallbackScheme,
		Session:        session,
		Analytics:      NewAnalyticsService(cfg),
	}
}

// Start launches the PayPal web approval flow for the order in the request.
// The flow runs asynchronously; the delegate receives exactly one terminal
// notification.
func (c *PayPalWebCheckoutClient) Start(ctx context.Context, request *models.PayPalWebCheckoutRequest, delegate PayPalWebCheckoutDelegate) {
	fs := newFlowSession()
	log.Info("starting paypal web checkout flow", log.Data{"flow_id": fs.id, "order_id": request.OrderID})
	go c.start(ctx, fs, request, delegate)
}

func (c *PayPalWebCheckoutClient) start(ctx context.Context, fs *flowSession, request *models.PayPalWebCheckoutRequest, delegate PayPalWebCheckoutDelegate) {
	c.Analytics.SendEvent(eventPayPalCheckoutStarted, request.OrderID)
	recordFlowStarted(flowPayPalWeb)

	checkoutURL, err := c.checkoutURL(request)
	if err != nil {
		c.fail(fs, delegate, request.OrderID, err)
		return
	}

	callbackURL, err := c.Session.Start(ctx, checkoutURL, func(didPresent bool) {
		recordChallengePresentation(flowPayPalWeb, didPresent)
	})

	switch {
	case errors.Is(err, ErrSessionCanceled):
		c.Analytics.SendEvent(eventPayPalCheckoutCanceled, request.OrderID)
		recordFlowCompleted(flowPayPalWeb, outcomeCanceled)
		fs.deliver(delegate.OnPayPalCancel)
	case err != nil:
		c.fail(fs, delegate, request.OrderID, api.NewError(api.ChallengeFailed, "error during web checkout session", err))
	default:
		c.finish(fs, delegate, request.OrderID, callbackURL)
	}
}

// checkoutURL builds the buyer-facing approval URL, carrying the return URI
// and the native checkout marker
func (c *PayPalWebCheckoutClient) checkoutURL(request *models.PayPalWebCheckoutRequest) (*url.URL, error) {
	fundingSource := request.FundingSource
	if fundingSource == "" {
		fundingSource = models.FundingPayPal
	}

	checkoutURL, err := url.Parse(c.WebBaseURL + "/checkoutnow")
	if err != nil {
		return nil, api.NewError(api.UnknownError, "error constructing URL for PayPal request", err)
	}

	query := checkoutURL.Query()
	query.Set("token", request.OrderID)
	query.Set("fundingSource", string(fundingSource))
	query.Set("redirect_uri", fmt.Sprintf("%s://x-callback-url/paypal-sdk/paypal-checkout", c.CallbackScheme))
	query.Set("native_xo", "1")
	checkoutURL.RawQuery = query.Encode()

	return checkoutURL, nil
}

// finish extracts the approval from the callback URL. A callback missing the
// order token or payer ID is a malformed result, not a success.
func (c *PayPalWebCheckoutClient) finish(fs *flowSession, delegate PayPalWebCheckoutDelegate, orderID string, callbackURL *url.URL) {
	if callbackURL == nil {
		c.fail(fs, delegate, orderID, api.NewError(api.DecodingError, "result did not contain the expected data", nil))
		return
	}

	query := callbackURL.Query()
	token := query.Get("token")
	payerID := query.Get("PayerID")
	if token == "" || payerID == "" {
		c.fail(fs, delegate, orderID, api.NewError(api.DecodingError, "result did not contain the expected data", nil))
		return
	}

	c.Analytics.SendEvent(eventPayPalCheckoutSucceeded, orderID)
	recordFlowCompleted(flowPayPalWeb, outcomeSucceeded)
	fs.deliver(func() {
		delegate.OnPayPalSuccess(&models.PayPalWebCheckoutResult{OrderID: token, PayerID: payerID})
	})
}

func (c *PayPalWebCheckoutClient) fail(fs *flowSession, delegate PayPalWebCheckoutDelegate, orderID string, err error) {
	log.Error(fmt.Errorf("paypal web checkout flow failed for order [%s]: [%v]", orderID, err), log.Data{"flow_id": fs.id})
	c.Analytics.SendEvent(eventPayPalCheckoutFailed, orderID)
	recordFlowCompleted(flowPayPalWeb, outcomeFailed)
	fs.deliver(func() {
		delegate.OnPayPalError(err)
	})
}
