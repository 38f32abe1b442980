package models

// Order statuses returned by the checkout orders API. Any other status string
// is passed through to the caller untouched.
const (
	StatusApproved            = "APPROVED"
	StatusPayerActionRequired = "PAYER_ACTION_REQUIRED"
)

// Link relations carrying the step-up challenge URL
const (
	RelPayerAction = "payer-action"
	RelApprove     = "approve"
)

// Link is a HATEOAS link returned by the backend
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// ConfirmPaymentSourceRequest is the body sent to the
// confirm-payment-source operation on an order
type ConfirmPaymentSourceRequest struct {
	PaymentSource ConfirmPaymentSource `json:"payment_source"`
}

// ConfirmPaymentSource wraps the card being attached to the order
type ConfirmPaymentSource struct {
	Card CardPaymentSource `json:"card"`
}

// CardPaymentSource is the outgoing card payment source, including the
// verification method and optional vault directive
type CardPaymentSource struct {
	Number         string          `json:"number"`
	Expiry         string          `json:"expiry"`
	SecurityCode   string          `json:"security_code"`
	Name           string          `json:"name,omitempty"`
	BillingAddress *Address        `json:"billing_address,omitempty"`
	Attributes     *CardAttributes `json:"attributes,omitempty"`
}

// CardAttributes carries SCA verification and vaulting directives
type CardAttributes struct {
	Verification *Verification   `json:"verification,omitempty"`
	Vault        *VaultDirective `json:"vault,omitempty"`
}

// Verification names the SCA method to apply
type Verification struct {
	Method string `json:"method"`
}

// VaultDirective asks the backend to vault the card after approval
type VaultDirective struct {
	StoreInVault string `json:"store_in_vault"`
}

// ConfirmPaymentSourceResponse is the outcome of one confirm-payment-source
// call. Not mutated after decoding.
type ConfirmPaymentSourceResponse struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	PaymentSource *PaymentSource `json:"payment_source,omitempty"`
	Links         []Link         `json:"links,omitempty"`
}

// PaymentSource describes the instrument attached to an order
type PaymentSource struct {
	Card *PaymentSourceCard `json:"card,omitempty"`
}

// PaymentSourceCard is the redacted card echoed back by the backend
type PaymentSourceCard struct {
	LastFourDigits       string                `json:"last_four_digits,omitempty"`
	Brand                string                `json:"brand,omitempty"`
	Type                 string                `json:"type,omitempty"`
	AuthenticationResult *AuthenticationResult `json:"authentication_result,omitempty"`
}

// AuthenticationResult is the result of a 3-D Secure challenge
type AuthenticationResult struct {
	LiabilityShift string             `json:"liability_shift,omitempty"`
	ThreeDSecure   *ThreeDSecureState `json:"three_d_secure,omitempty"`
}

// ThreeDSecureState holds the raw 3DS enrollment and authentication statuses
type ThreeDSecureState struct {
	EnrollmentStatus     string `json:"enrollment_status,omitempty"`
	AuthenticationStatus string `json:"authentication_status,omitempty"`
}
