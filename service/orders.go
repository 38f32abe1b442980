package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/paypal/payments-sdk-go/api"
	"github.com/paypal/payments-sdk-go/models"
)

// CheckoutOrdersService coordinates calls to the v2/checkout/orders API
type CheckoutOrdersService struct {
	Client *api.Client
}

// OrdersAPI is the confirmation requestor consumed by the card client
type OrdersAPI interface {
	ConfirmPaymentSource(ctx context.Context, request *models.CardRequest) (*models.ConfirmPaymentSourceResponse, error)
}

// ConfirmPaymentSource attaches the card in the request to the order as its
// payment source. Exactly one network call per invocation; no retries.
// Idempotency is not guaranteed here - the backend decides whether a
// confirmation was already applied.
func (s *CheckoutOrdersService) ConfirmPaymentSource(ctx context.Context, request *models.CardRequest) (*models.ConfirmPaymentSourceResponse, error) {
	if err := validator.New().Struct(request); err != nil {
		return nil, api.NewError(api.UnknownError, "invalid card request", err)
	}

	body, err := json.Marshal(confirmPaymentSourceBody(request))
	if err != nil {
		return nil, api.NewError(api.UnknownError, "error encoding confirm payment source request", err)
	}

	path := fmt.Sprintf("/v2/checkout/orders/%s/confirm-payment-source", request.OrderID)
	response, err := s.Client.Fetch(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	outcome := &models.ConfirmPaymentSourceResponse{}
	if err := api.Parse(response, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

func confirmPaymentSourceBody(request *models.CardRequest) *models.ConfirmPaymentSourceRequest {
	source := models.CardPaymentSource{
		Number:         request.Card.Number,
		Expiry:         request.Card.Expiry,
		SecurityCode:   request.Card.SecurityCode,
		Name:           request.Card.CardholderName,
		BillingAddress: request.Card.BillingAddress,
	}

	attributes := &models.CardAttributes{}
	method := request.SCA
	if method == "" {
		method = models.SCAWhenRequired
	}
	attributes.Verification = &models.Verification{Method: string(method)}
	if request.Vault {
		attributes.Vault = &models.VaultDirective{StoreInVault: "ON_SUCCESS"}
	}
	source.Attributes = attributes

	return &models.ConfirmPaymentSourceRequest{
		PaymentSource: models.ConfirmPaymentSource{Card: source},
	}
}
