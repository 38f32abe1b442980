package service

import (
	"net/url"
	"strings"

	"github.com/paypal/payments-sdk-go/models"
)

// ChallengeKind tags a ChallengeDecision
type ChallengeKind int

const (
	// ChallengeNotRequired means the outcome needs no step-up
	ChallengeNotRequired ChallengeKind = iota

	// ChallengeRequired means a challenge must be run at URL
	ChallengeRequired

	// ChallengeInvalid means the outcome demanded a challenge but the link
	// was missing or untrusted
	ChallengeInvalid
)

// Reasons attached to an invalid challenge decision
const (
	ReasonNoChallengeLink = "no challenge link in response"
	ReasonUntrustedURL    = "challenge URL is malformed or not on a trusted authentication domain"
)

// ChallengeDecision is the pure outcome of inspecting one confirmation
// response. URL is set only when Kind is ChallengeRequired.
type ChallengeDecision struct {
	Kind   ChallengeKind
	URL    *url.URL
	Reason string
}

// ChallengePolicy decides whether a confirmation outcome requires a step-up
// authentication challenge. It is stateless and deterministic; the trusted
// domain allow-list is the security boundary that keeps the orchestrator
// from opening an authentication surface on an untrusted host.
type ChallengePolicy struct {
	TrustedAuthDomains []string
}

// ForOrder inspects a confirm-payment-source outcome. Order challenges must
// carry the payer-action link relation and a flow=3ds query marker.
func (p ChallengePolicy) ForOrder(response *models.ConfirmPaymentSourceResponse) ChallengeDecision {
	if response.Status != models.StatusPayerActionRequired {
		return ChallengeDecision{Kind: ChallengeNotRequired}
	}
	return p.evaluate(findLink(response.Links, models.RelPayerAction), true)
}

// ForVault inspects an update-setup-token outcome. Vault challenges carry
// the approve link relation and need only host validation.
func (p ChallengePolicy) ForVault(details *models.SetupTokenDetails) ChallengeDecision {
	if details.Status != models.StatusPayerActionRequired {
		return ChallengeDecision{Kind: ChallengeNotRequired}
	}
	return p.evaluate(findLink(details.Links, models.RelApprove), false)
}

func (p ChallengePolicy) evaluate(href string, requireFlowMarker bool) ChallengeDecision {
	if href == "" {
		return ChallengeDecision{Kind: ChallengeInvalid, Reason: ReasonNoChallengeLink}
	}

	challengeURL, err := url.Parse(href)
	if err != nil || challengeURL.Scheme != "https" || challengeURL.Host == "" {
		return ChallengeDecision{Kind: ChallengeInvalid, Reason: ReasonUntrustedURL}
	}

	if requireFlowMarker && challengeURL.Query().Get("flow") != "3ds" {
		return ChallengeDecision{Kind: ChallengeInvalid, Reason: ReasonUntrustedURL}
	}

	if !p.hostTrusted(challengeURL.Hostname()) {
		return ChallengeDecision{Kind: ChallengeInvalid, Reason: ReasonUntrustedURL}
	}

	return ChallengeDecision{Kind: ChallengeRequired, URL: challengeURL}
}

// hostTrusted matches the host exactly or as a subdomain of an allow-listed
// domain. Substring matching is deliberately not used.
func (p ChallengePolicy) hostTrusted(host string) bool {
	host = strings.ToLower(host)
	for _, domain := range p.TrustedAuthDomains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain == "" {
			continue
		}
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func findLink(links []models.Link, rel string) string {
	for _, link := range links {
		if link.Rel == rel {
			return link.Href
		}
	}
	return ""
}
