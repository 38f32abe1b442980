package models

// CardResult is the terminal outcome of a successful card approval flow.
// Status is empty when a 3-D Secure challenge was performed; check the order
// status server-side before capture in that case.
type CardResult struct {
	OrderID                              string `json:"order_id"`
	Status                               string `json:"status,omitempty"`
	DidAttemptThreeDSecureAuthentication bool   `json:"did_attempt_three_d_secure_authentication"`
}

// CardVaultResult is the terminal outcome of a successful card vault flow.
// Status is empty when a challenge was performed; verify the setup token
// with /v3/vault/setup-tokens/{id} server-side in that case.
type CardVaultResult struct {
	SetupTokenID                         string `json:"setup_token_id"`
	Status                               string `json:"status,omitempty"`
	DidAttemptThreeDSecureAuthentication bool   `json:"did_attempt_three_d_secure_authentication"`
}

// PayPalWebCheckoutResult is the terminal outcome of an approved PayPal web
// checkout flow
type PayPalWebCheckoutResult struct {
	OrderID string `json:"order_id"`
	PayerID string `json:"payer_id"`
}
