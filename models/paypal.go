package models

// FundingSource selects which PayPal funding instrument the web checkout
// flow presents to the buyer
type FundingSource string

// Funding sources supported by the web checkout flow
const (
	FundingPayPal   FundingSource = "paypal"
	FundingPayLater FundingSource = "paylater"
	FundingCredit   FundingSource = "credit"
)

// PayPalWebCheckoutRequest launches a web approval flow for an existing order
type PayPalWebCheckoutRequest struct {
	OrderID       string `validate:"required"`
	FundingSource FundingSource
}
