package models

// SetupTokenDetails is the state of a vault setup token after an update
type SetupTokenDetails struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []Link `json:"links"`
}

// UpdateSetupTokenResponse is the payload of the UpdateVaultSetupToken
// GraphQL mutation
type UpdateSetupTokenResponse struct {
	UpdateVaultSetupToken SetupTokenDetails `json:"updateVaultSetupToken"`
}

// CreateSetupTokenRequest is sent by the demo merchant server to mint a new
// setup token before vaulting a card against it
type CreateSetupTokenRequest struct {
	PaymentSource SetupTokenPaymentSource `json:"payment_source"`
}

// SetupTokenPaymentSource selects the instrument type being vaulted
type SetupTokenPaymentSource struct {
	Card struct{} `json:"card"`
}

// SetupTokenResponse is the backend's representation of a setup token
type SetupTokenResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []Link `json:"links,omitempty"`
}
