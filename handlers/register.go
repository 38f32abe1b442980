package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/paypal/payments-sdk-go/api"
	"github.com/paypal/payments-sdk-go/config"
	"github.com/paypal/payments-sdk-go/service"
	"github.com/paypal/payments-sdk-go/webauth"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DemoHandlers holds the clients the demo merchant server drives
type DemoHandlers struct {
	PayPal      PayPalSDK
	Cards       *service.CardClient
	PayPalWeb   *service.PayPalWebCheckoutClient
	VaultClient *api.Client
	Config      config.Config
}

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	session := webauth.NewSession(&cfg)

	vaultClient := api.NewClient(cfg.APIBaseURL(), cfg.ClientID)
	vaultClient.ClientSecret = cfg.ClientSecret

	h := &DemoHandlers{
		Cards:       service.NewCardClient(&cfg, session),
		PayPalWeb:   service.NewPayPalWebCheckoutClient(&cfg, session),
		VaultClient: vaultClient,
		Config:      cfg,
	}

	// Order creation needs merchant credentials; the approval flows only
	// need the client ID, so they stay available either way
	if cfg.ClientSecret != "" {
		paypalSDK, err := GetPayPalClient(cfg)
		if err != nil {
			log.Error(err)
		} else {
			h.PayPal = paypalSDK
		}
	} else {
		log.Info("PAYPAL_CLIENT_SECRET not set; order creation endpoints disabled")
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")
	mainRouter.Handle("/metrics", promhttp.Handler()).Methods("GET").Name("get-metrics")

	demoRouter := mainRouter.PathPrefix("/demo").Subrouter()
	demoRouter.HandleFunc("/orders", h.HandleCreateOrder).Methods("POST").Name("create-order")
	demoRouter.HandleFunc("/orders/{order_id}/card", h.HandleApproveOrderWithCard).Methods("POST").Name("approve-order-with-card")
	demoRouter.HandleFunc("/orders/{order_id}/paypal", h.HandlePayPalCheckout).Methods("POST").Name("paypal-checkout")
	demoRouter.HandleFunc("/setup-tokens", h.HandleCreateSetupToken).Methods("POST").Name("create-setup-token")
	demoRouter.HandleFunc("/setup-tokens/{setup_token_id}/card", h.HandleVaultCard).Methods("POST").Name("vault-card")

	demoRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
