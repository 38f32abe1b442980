package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/paypal/payments-sdk-go/models"
	"github.com/paypal/payments-sdk-go/service"
	"github.com/paypal/payments-sdk-go/utils"
	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"
)

var amountFormat = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// CreateOrderRequest is the demo server's inbound order creation body
type CreateOrderRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Intent   string `json:"intent"`
}

// CreateOrderResponse echoes the created order back to the caller
type CreateOrderResponse struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Links  []models.Link `json:"links,omitempty"`
}

// ApproveOrderBody carries the buyer's card plus flow directives
type ApproveOrderBody struct {
	Card  models.Card `json:"card"`
	SCA   string      `json:"sca,omitempty"`
	Vault bool        `json:"vault,omitempty"`
}

// HandleCreateOrder creates an order through the merchant PayPal client
func (h *DemoHandlers) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	if h.PayPal == nil {
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("merchant credentials not configured"), http.StatusServiceUnavailable)
		return
	}
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var incoming CreateOrderRequest
	if err := json.NewDecoder(req.Body).Decode(&incoming); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	amount, err := validateAmount(incoming.Amount)
	if err != nil {
		log.ErrorR(req, err)
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
		return
	}

	currency := incoming.Currency
	if currency == "" {
		currency = "USD"
	}
	intent := paypal.OrderIntentCapture
	if incoming.Intent == "AUTHORIZE" {
		intent = paypal.OrderIntentAuthorize
	}

	order, err := h.PayPal.CreateOrder(
		req.Context(),
		intent,
		[]paypal.PurchaseUnitRequest{
			{
				Amount: &paypal.PurchaseUnitAmount{
					Value:    amount,
					Currency: currency,
				},
			},
		},
		nil,
		nil,
	)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating order: [%v]", err))
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	response := CreateOrderResponse{ID: order.ID, Status: order.Status}
	for _, link := range order.Links {
		response.Links = append(response.Links, models.Link{Rel: link.Rel, Href: link.Href, Method: link.Method})
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusCreated)
	log.InfoR(req, "Successful POST request for new order", log.Data{"order_id": order.ID, "status": http.StatusCreated})
}

// HandleApproveOrderWithCard runs the card approval flow against an existing
// order and reports its single terminal result as the HTTP response
func (h *DemoHandlers) HandleApproveOrderWithCard(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	orderID := vars["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var body ApproveOrderBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cardRequest := &models.CardRequest{
		OrderID: orderID,
		Card:    body.Card,
		SCA:     models.SCA(body.SCA),
		Vault:   body.Vault,
	}

	type outcome struct {
		result   *models.CardResult
		err      error
		canceled bool
	}
	results := make(chan outcome, 1)

	h.Cards.ApproveOrder(req.Context(), cardRequest, &service.CardCallbacks{
		OnSuccess: func(result *models.CardResult) { results <- outcome{result: result} },
		OnCancel:  func() { results <- outcome{canceled: true} },
		OnError:   func(err error) { results <- outcome{err: err} },
		OnWillLaunch: func() {
			log.InfoR(req, "launching 3-D Secure challenge", log.Data{"order_id": orderID})
		},
	})

	terminal := <-results
	switch {
	case terminal.canceled:
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("authentication canceled by user"), http.StatusOK)
	case terminal.err != nil:
		log.ErrorR(req, terminal.err)
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(terminal.err.Error()), utils.StatusForError(terminal.err))
	default:
		utils.WriteJSONWithStatus(w, req, terminal.result, http.StatusOK)
	}
}

// HandlePayPalCheckout runs the PayPal web approval flow for an existing
// order
func (h *DemoHandlers) HandlePayPalCheckout(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	orderID := vars["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fundingSource := models.FundingSource(req.URL.Query().Get("funding_source"))

	type outcome struct {
		result   *models.PayPalWebCheckoutResult
		err      error
		canceled bool
	}
	results := make(chan outcome, 1)

	h.PayPalWeb.Start(req.Context(), &models.PayPalWebCheckoutRequest{
		OrderID:       orderID,
		FundingSource: fundingSource,
	}, &service.PayPalWebCheckoutCallbacks{
		OnSuccess: func(result *models.PayPalWebCheckoutResult) { results <- outcome{result: result} },
		OnCancel:  func() { results <- outcome{canceled: true} },
		OnError:   func(err error) { results <- outcome{err: err} },
	})

	terminal := <-results
	switch {
	case terminal.canceled:
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("checkout canceled by user"), http.StatusOK)
	case terminal.err != nil:
		log.ErrorR(req, terminal.err)
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(terminal.err.Error()), utils.StatusForError(terminal.err))
	default:
		utils.WriteJSONWithStatus(w, req, terminal.result, http.StatusOK)
	}
}

// validateAmount enforces the backend's amount format before any network
// call and normalizes it to two decimal places
func validateAmount(amount string) (string, error) {
	if !amountFormat.MatchString(amount) {
		return "", fmt.Errorf("amount [%s] format incorrect", amount)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("amount [%s] format incorrect", amount)
	}
	return value.StringFixed(2), nil
}
