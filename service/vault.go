package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/paypal/payments-sdk-go/api"
	"github.com/paypal/payments-sdk-go/models"
)

const updateSetupTokenQuery = `
mutation UpdateVaultSetupToken(
    $clientID: String!,
    $vaultSetupToken: String!,
    $paymentSource: PaymentSource
) {
    updateVaultSetupToken(
        clientId: $clientID
        vaultSetupToken: $vaultSetupToken
        paymentSource: $paymentSource
    ) {
        id,
        status,
        links {
            rel, href
        }
    }
}`

// VaultService coordinates calls to the vault GraphQL API
type VaultService struct {
	Client   *api.GraphQLClient
	ClientID string
}

// VaultAPI is the vault requestor consumed by the card client
type VaultAPI interface {
	UpdateSetupToken(ctx context.Context, request *models.CardVaultRequest) (*models.SetupTokenDetails, error)
}

type updateSetupTokenVariables struct {
	ClientID        string             `json:"clientID"`
	VaultSetupToken string             `json:"vaultSetupToken"`
	PaymentSource   vaultPaymentSource `json:"paymentSource"`
}

type vaultPaymentSource struct {
	Card models.Card `json:"card"`
}

// UpdateSetupToken attaches the card in the request to the setup token.
// Exactly one network call per invocation; no retries.
func (s *VaultService) UpdateSetupToken(ctx context.Context, request *models.CardVaultRequest) (*models.SetupTokenDetails, error) {
	if err := validator.New().Struct(request); err != nil {
		return nil, api.NewError(api.UnknownError, "invalid card vault request", err)
	}

	query := &api.GraphQLRequest{
		Query: updateSetupTokenQuery,
		Variables: updateSetupTokenVariables{
			ClientID:        s.ClientID,
			VaultSetupToken: request.SetupTokenID,
			PaymentSource:   vaultPaymentSource{Card: request.Card},
		},
		QueryName: "UpdateVaultSetupToken",
	}

	response, err := s.Client.Execute(ctx, query)
	if err != nil {
		return nil, err
	}

	envelope := &api.GraphQLResponse{}
	if err := api.Parse(response, envelope); err != nil {
		return nil, err
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, api.NewError(api.DecodingError, "GraphQL response contained no data", nil)
	}

	payload := &models.UpdateSetupTokenResponse{}
	if err := json.Unmarshal(envelope.Data, payload); err != nil {
		return nil, api.NewError(api.DecodingError, "error reading update setup token response", err)
	}
	if payload.UpdateVaultSetupToken.ID == "" {
		return nil, api.NewError(api.DecodingError, "update setup token response missing token details", nil)
	}

	details := payload.UpdateVaultSetupToken
	return &details, nil
}
