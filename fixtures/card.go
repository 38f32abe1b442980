package fixtures

import "github.com/paypal/payments-sdk-go/models"

// ChallengeHref is a well-formed, allow-listed 3-D Secure challenge URL
const ChallengeHref = "https://www.sandbox.paypal.com/webapps/helios?action=authenticate&token=6WX01471SY074580E&flow=3ds"

// VaultChallengeHref is a well-formed, allow-listed vault approval URL
const VaultChallengeHref = "https://www.sandbox.paypal.com/webapps/helios?action=authenticate&token=6WX01471SY074580E"

// GetTestCard returns a card that passes request validation
func GetTestCard() models.Card {
	return models.Card{
		Number:       "4111111111111111",
		Expiry:       "2027-01",
		SecurityCode: "123",
	}
}

// GetConfirmPaymentSourceApproved returns an approved confirmation outcome
func GetConfirmPaymentSourceApproved(orderID string) *models.ConfirmPaymentSourceResponse {
	return &models.ConfirmPaymentSourceResponse{
		ID:     orderID,
		Status: models.StatusApproved,
		PaymentSource: &models.PaymentSource{
			Card: &models.PaymentSourceCard{
				LastFourDigits: "7321",
				Brand:          "VISA",
				Type:           "CREDIT",
			},
		},
	}
}

// GetConfirmPaymentSourceChallenge returns a confirmation outcome demanding
// a payer-action challenge at href
func GetConfirmPaymentSourceChallenge(orderID, href string) *models.ConfirmPaymentSourceResponse {
	return &models.ConfirmPaymentSourceResponse{
		ID:     orderID,
		Status: models.StatusPayerActionRequired,
		Links: []models.Link{
			{Rel: models.RelPayerAction, Href: href},
		},
	}
}

// GetSetupTokenApproved returns an approved setup token outcome
func GetSetupTokenApproved(setupTokenID string) *models.SetupTokenDetails {
	return &models.SetupTokenDetails{
		ID:     setupTokenID,
		Status: models.StatusApproved,
	}
}

// GetSetupTokenChallenge returns a setup token outcome demanding an approve
// challenge at href
func GetSetupTokenChallenge(setupTokenID, href string) *models.SetupTokenDetails {
	return &models.SetupTokenDetails{
		ID:     setupTokenID,
		Status: models.StatusPayerActionRequired,
		Links: []models.Link{
			{Rel: models.RelApprove, Href: href},
		},
	}
}
