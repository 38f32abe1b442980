package handlers

import (
	"context"
	"fmt"

	"github.com/paypal/payments-sdk-go/config"
	"github.com/plutov/paypal/v4"
)

var client *paypal.Client

// GetPayPalClient returns a shared merchant-credentialed PayPal client for
// the configured environment
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if client != nil {
		return client, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.Environment)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.Environment)
	}

	c, err := paypal.NewClient(cfg.ClientID, cfg.ClientSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	client = c
	return c, nil
}

// PayPalSDK is an interface for all the PayPal client methods the demo
// server uses
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "sandbox":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
