package models

// Card holds the buyer's card details used as the payment source when
// approving an order or updating a vault setup token.
type Card struct {
	Number         string   `json:"number" validate:"required,numeric,min=12,max=19"`
	Expiry         string   `json:"expiry" validate:"required,len=7"`
	SecurityCode   string   `json:"security_code" validate:"required,numeric,min=3,max=4"`
	CardholderName string   `json:"name,omitempty"`
	BillingAddress *Address `json:"billing_address,omitempty"`
}

// Address is a billing address attached to a card
type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AdminArea1   string `json:"admin_area_1,omitempty"`
	AdminArea2   string `json:"admin_area_2,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code" validate:"required_with=PostalCode"`
}

// SCA controls when a strong customer authentication challenge is requested
// from the processor
type SCA string

// Supported SCA verification methods
const (
	SCAWhenRequired SCA = "SCA_WHEN_REQUIRED"
	SCAAlways       SCA = "SCA_ALWAYS"
)

// CardRequest is a single attempt to approve an order with a card. Immutable
// once constructed; create a new request per attempt.
type CardRequest struct {
	OrderID string `validate:"required"`
	Card    Card   `validate:"required"`
	SCA     SCA
	// Vault stores the card in the merchant's vault on successful approval
	Vault bool
}

// CardVaultRequest is a single attempt to attach a card to a vault setup token
type CardVaultRequest struct {
	SetupTokenID string `validate:"required"`
	Card         Card   `validate:"required"`
}
