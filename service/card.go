package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/paypal/payments-sdk-go/api"
	"github.com/paypal/payments-sdk-go/config"
	"github.com/paypal/payments-sdk-go/models"
)

// CardClient orchestrates card approval and card vault flows: it confirms
// the payment source, decides whether a 3-D Secure challenge is required,
// runs the challenge through the authentication session, and delivers
// exactly one terminal result per invocation to the delegate.
//
// Concurrent invocations are independent; each owns its own flow session and
// the client does not serialize or dedupe them.
type CardClient struct {
	Orders    OrdersAPI
	Vault     VaultAPI
	Policy    ChallengePolicy
	Session   AuthenticationSession
	Analytics *AnalyticsService
}

// NewCardClient wires a CardClient against the configured environment. The
// authentication session is supplied by the caller; it is the platform-bound
// capability that presents the challenge to the user.
func NewCardClient(cfg *config.Config, session AuthenticationSession) *CardClient {
	return &CardClient{
		Orders:    &CheckoutOrdersService{Client: api.NewClient(cfg.APIBaseURL(), cfg.ClientID)},
		Vault:     &VaultService{Client: api.NewGraphQLClient(cfg.GraphQLURL()), ClientID: cfg.ClientID},
		Policy:    ChallengePolicy{TrustedAuthDomains: cfg.TrustedDomains()},
		Session:   session,
		Analytics: NewAnalyticsService(cfg),
	}
}

// ApproveOrder attaches the card to the order as its payment source,
// performing 3-D Secure verification when the backend requires it. The flow
// runs asynchronously; the delegate receives exactly one terminal
// notification. Capture or authorization of the approved order is the
// merchant server's job.
func (c *CardClient) ApproveOrder(ctx context.Context, request *models.CardRequest, delegate CardDelegate) {
	fs := newFlowSession()
	log.Info("starting card approve flow", log.Data{"flow_id": fs.id, "order_id": request.OrderID})
	go c.approveOrder(ctx, fs, request, delegate)
}

// VaultCard attaches the card to the setup token, performing 3-D Secure
// verification when the backend requires it. If the result reports an
// attempted challenge, verify the setup token status server-side before use.
func (c *CardClient) VaultCard(ctx context.Context, request *models.CardVaultRequest, delegate CardVaultDelegate) {
	fs := newFlowSession()
	log.Info("starting card vault flow", log.Data{"flow_id": fs.id, "setup_token_id": request.SetupTokenID})
	go c.vaultCard(ctx, fs, request, delegate)
}

func (c *CardClient) approveOrder(ctx context.Context, fs *flowSession, request *models.CardRequest, delegate CardDelegate) {
	c.Analytics.SendEvent(eventApproveStarted, request.OrderID)
	recordFlowStarted(flowCardApprove)

	outcome, err := c.Orders.ConfirmPaymentSource(ctx, request)
	if err != nil {
		c.Analytics.SendEvent(eventConfirmFailed, request.OrderID)
		c.failApprove(fs, delegate, request.OrderID, classify(err, "error confirming payment source"))
		return
	}

	decision := c.Policy.ForOrder(outcome)
	switch decision.Kind {
	case ChallengeNotRequired:
		c.Analytics.SendEvent(eventConfirmSucceeded, request.OrderID)
		c.succeedApprove(fs, delegate, &models.CardResult{
			OrderID:                              outcome.ID,
			Status:                               outcome.Status,
			DidAttemptThreeDSecureAuthentication: false,
		})

	case ChallengeInvalid:
		c.failApprove(fs, delegate, request.OrderID, api.NewError(api.InvalidChallenge, decision.Reason, nil))

	case ChallengeRequired:
		c.Analytics.SendEvent(eventChallengeRequired, request.OrderID)
		delegate.ThreeDSecureWillLaunch()

		_, err := c.Session.Start(ctx, decision.URL, func(didPresent bool) {
			c.recordPresentation(flowCardApprove, request.OrderID, didPresent)
		})

		delegate.ThreeDSecureDidFinish()

		switch {
		case errors.Is(err, ErrSessionCanceled):
			c.Analytics.SendEvent(eventApproveCanceled, request.OrderID)
			recordFlowCompleted(flowCardApprove, outcomeCanceled)
			fs.deliver(delegate.OnApproveCancel)
		case err != nil:
			c.failApprove(fs, delegate, request.OrderID, api.NewError(api.ChallengeFailed, "error during 3-D Secure authentication session", err))
		default:
			c.succeedApprove(fs, delegate, &models.CardResult{
				OrderID:                              outcome.ID,
				DidAttemptThreeDSecureAuthentication: true,
			})
		}
	}
}

func (c *CardClient) vaultCard(ctx context.Context, fs *flowSession, request *models.CardVaultRequest, delegate CardVaultDelegate) {
	c.Analytics.SendEvent(eventVaultStarted, request.SetupTokenID)
	recordFlowStarted(flowCardVault)

	details, err := c.Vault.UpdateSetupToken(ctx, request)
	if err != nil {
		c.failVault(fs, delegate, request.SetupTokenID, classify(err, "error updating setup token"))
		return
	}

	decision := c.Policy.ForVault(details)
	switch decision.Kind {
	case ChallengeNotRequired:
		c.succeedVault(fs, delegate, request.SetupTokenID, &models.CardVaultResult{
			SetupTokenID:                         details.ID,
			Status:                               details.Status,
			DidAttemptThreeDSecureAuthentication: false,
		})

	case ChallengeInvalid:
		c.failVault(fs, delegate, request.SetupTokenID, api.NewError(api.InvalidChallenge, decision.Reason, nil))

	case ChallengeRequired:
		c.Analytics.SendEvent(eventVaultChallengeRequired, request.SetupTokenID)
		delegate.ThreeDSecureWillLaunch()

		_, err := c.Session.Start(ctx, decision.URL, func(didPresent bool) {
			c.recordPresentation(flowCardVault, request.SetupTokenID, didPresent)
		})

		delegate.ThreeDSecureDidFinish()

		switch {
		case errors.Is(err, ErrSessionCanceled):
			c.Analytics.SendEvent(eventVaultCanceled, request.SetupTokenID)
			recordFlowCompleted(flowCardVault, outcomeCanceled)
			fs.deliver(delegate.OnVaultCancel)
		case err != nil:
			c.failVault(fs, delegate, request.SetupTokenID, api.NewError(api.ChallengeFailed, "error during 3-D Secure authentication session", err))
		default:
			c.succeedVault(fs, delegate, request.SetupTokenID, &models.CardVaultResult{
				SetupTokenID:                         details.ID,
				DidAttemptThreeDSecureAuthentication: true,
			})
		}
	}
}

func (c *CardClient) succeedApprove(fs *flowSession, delegate CardDelegate, result *models.CardResult) {
	c.Analytics.SendEvent(eventApproveSucceeded, result.OrderID)
	recordFlowCompleted(flowCardApprove, outcomeSucceeded)
	fs.deliver(func() {
		delegate.OnApproveSuccess(result)
	})
}

func (c *CardClient) failApprove(fs *flowSession, delegate CardDelegate, orderID string, err error) {
	log.Error(fmt.Errorf("card approve flow failed for order [%s]: [%v]", orderID, err), log.Data{"flow_id": fs.id})
	c.Analytics.SendEvent(eventApproveFailed, orderID)
	recordFlowCompleted(flowCardApprove, outcomeFailed)
	fs.deliver(func() {
		delegate.OnApproveError(err)
	})
}

func (c *CardClient) succeedVault(fs *flowSession, delegate CardVaultDelegate, setupTokenID string, result *models.CardVaultResult) {
	c.Analytics.SendEvent(eventVaultSucceeded, setupTokenID)
	recordFlowCompleted(flowCardVault, outcomeSucceeded)
	fs.deliver(func() {
		delegate.OnVaultSuccess(result)
	})
}

func (c *CardClient) failVault(fs *flowSession, delegate CardVaultDelegate, setupTokenID string, err error) {
	log.Error(fmt.Errorf("card vault flow failed for setup token [%s]: [%v]", setupTokenID, err), log.Data{"flow_id": fs.id})
	c.Analytics.SendEvent(eventVaultFailed, setupTokenID)
	recordFlowCompleted(flowCardVault, outcomeFailed)
	fs.deliver(func() {
		delegate.OnVaultError(err)
	})
}

func (c *CardClient) recordPresentation(flow, targetID string, didPresent bool) {
	recordChallengePresentation(flow, didPresent)
	if didPresent {
		c.Analytics.SendEvent(eventChallengePresented, targetID)
	} else {
		c.Analytics.SendEvent(eventChallengePresentFailed, targetID)
	}
}

// classify keeps typed SDK errors intact and wraps anything else as unknown
func classify(err error, description string) error {
	var sdkErr *api.Error
	if errors.As(err, &sdkErr) {
		return err
	}
	return api.NewError(api.UnknownError, description, err)
}
