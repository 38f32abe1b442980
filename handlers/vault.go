package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/paypal/payments-sdk-go/api"
	"github.com/paypal/payments-sdk-go/models"
	"github.com/paypal/payments-sdk-go/service"
	"github.com/paypal/payments-sdk-go/utils"
)

// HandleCreateSetupToken mints a new vault setup token for a card
func (h *DemoHandlers) HandleCreateSetupToken(w http.ResponseWriter, req *http.Request) {
	body, err := json.Marshal(models.CreateSetupTokenRequest{})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error encoding setup token request: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response, err := h.VaultClient.Fetch(req.Context(), http.MethodPost, "/v3/vault/setup-tokens", body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating setup token: [%v]", err))
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	setupToken := &models.SetupTokenResponse{}
	if err := api.Parse(response, setupToken); err != nil {
		log.ErrorR(req, fmt.Errorf("error reading setup token response: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), utils.StatusForError(err))
		return
	}

	utils.WriteJSONWithStatus(w, req, setupToken, http.StatusCreated)
	log.InfoR(req, "Successful POST request for new setup token", log.Data{"setup_token_id": setupToken.ID, "status": http.StatusCreated})
}

// HandleVaultCard runs the card vault flow against an existing setup token
// and reports its single terminal result as the HTTP response
func (h *DemoHandlers) HandleVaultCard(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	setupTokenID := vars["setup_token_id"]
	if setupTokenID == "" {
		log.ErrorR(req, fmt.Errorf("setup token id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var card models.Card
	if err := json.NewDecoder(req.Body).Decode(&card); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	type outcome struct {
		result   *models.CardVaultResult
		err      error
		canceled bool
	}
	results := make(chan outcome, 1)

	h.Cards.VaultCard(req.Context(), &models.CardVaultRequest{
		SetupTokenID: setupTokenID,
		Card:         card,
	}, &service.CardVaultCallbacks{
		OnSuccess: func(result *models.CardVaultResult) { results <- outcome{result: result} },
		OnCancel:  func() { results <- outcome{canceled: true} },
		OnError:   func(err error) { results <- outcome{err: err} },
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
