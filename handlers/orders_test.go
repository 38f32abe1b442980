package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/paypal/payments-sdk-go/api"
	"github.com/paypal/payments-sdk-go/fixtures"
	"github.com/paypal/payments-sdk-go/service"
	"github.com/plutov/paypal/v4"
	. "github.com/smartystreets/goconvey/convey"
)

const approveBody = `{"card": {"number": "4111111111111111", "expiry": "2027-01", "security_code": "123"}}`

func createCardHandlers(orders service.OrdersAPI, session service.AuthenticationSession) *DemoHandlers {
	return &DemoHandlers{
		Cards: &service.CardClient{
			Orders:  orders,
			Policy:  service.ChallengePolicy{TrustedAuthDomains: []string{"paypal.com", "sandbox.paypal.com"}},
			Session: session,
		},
	}
}

func TestUnitHandleCreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Merchant credentials missing returns service unavailable", t, func() {
		h := &DemoHandlers{}
		req := httptest.NewRequest(http.MethodPost, "/demo/orders", strings.NewReader(`{"amount": "10.00"}`))
		w := httptest.NewRecorder()

		h.HandleCreateOrder(w, req)

		So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
	})

	Convey("Invalid request body returns bad request", t, func() {
		h := &DemoHandlers{PayPal: NewMockPayPalSDK(mockCtrl)}
		req := httptest.NewRequest(http.MethodPost, "/demo/orders", strings.NewReader("not json"))
		w := httptest.NewRecorder()

		h.HandleCreateOrder(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Invalid amount returns bad request", t, func() {
		h := &DemoHandlers{PayPal: NewMockPayPalSDK(mockCtrl)}
		req := httptest.NewRequest(http.MethodPost, "/demo/orders", strings.NewReader(`{"amount": "10.123"}`))
		w := httptest.NewRecorder()

		h.HandleCreateOrder(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "format incorrect")
	})

	Convey("Order creation failure returns bad gateway", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("error response from paypal"))

		h := &DemoHandlers{PayPal: mockSDK}
		req := httptest.NewRequest(http.MethodPost, "/demo/orders", strings.NewReader(`{"amount": "10.00"}`))
		w := httptest.NewRecorder()

		h.HandleCreateOrder(w, req)

		So(w.Code, ShouldEqual, http.StatusBadGateway)
	})

	Convey("Created order is echoed back", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockSDK.EXPECT().CreateOrder(gomock.Any(), paypal.OrderIntentCapture, gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return(&paypal.Order{ID: "testOrderId", Status: "CREATED"}, nil)

		h := &DemoHandlers{PayPal: mockSDK}
		req := httptest.NewRequest(http.MethodPost, "/demo/orders", strings.NewReader(`{"amount": "10.00"}`))
		w := httptest.NewRecorder()

		h.HandleCreateOrder(w, req)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Body.String(), ShouldContainSubstring, "testOrderId")
		So(w.Body.String(), ShouldContainSubstring, "CREATED")
	})
}

func TestUnitValidateAmount(t *testing.T) {
	Convey("Whole amounts normalize to two decimal places", t, func() {
		amount, err := validateAmount("10")

		So(err, ShouldBeNil)
		So(amount, ShouldEqual, "10.00")
	})

	Convey("Two decimal place amounts pass through", t, func() {
		amount, err := validateAmount("10.50")

		So(err, ShouldBeNil)
		So(amount, ShouldEqual, "10.50")
	})

	Convey("Other formats are rejected", t, func() {
		for _, bad := range []string{"10.1", "10.123", "-10.00", "ten", ""} {
			_, err := validateAmount(bad)
			So(err, ShouldNotBeNil)
		}
	})
}

func TestUnitHandleApproveOrderWithCard(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Missing order id returns bad request", t, func() {
		h := createCardHandlers(nil, nil)
		req := httptest.NewRequest(http.MethodPost, "/demo/orders//card", strings.NewReader(approveBody))
		w := httptest.NewRecorder()

		h.HandleApproveOrderWithCard(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Invalid request body returns bad request", t, func() {
		h := createCardHandlers(nil, nil)
		req := httptest.NewRequest(http.MethodPost, "/demo/orders/testOrderId/card", strings.NewReader("not json"))
		req = mux.SetURLVars(req, map[string]string{"order_id": "testOrderId"})
		w := httptest.NewRecorder()

		h.HandleApproveOrderWithCard(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Approved order returns the card result", t, func() {
		mockOrders := service.NewMockOrdersAPI(mockCtrl)
		mockOrders.EXPECT().ConfirmPaymentSource(gomock.Any(), gomock.Any()).
			Return(fixtures.GetConfirmPaymentSourceApproved("testOrderId"), nil)

		h := createCardHandlers(mockOrders, nil)
		req := httptest.NewRequest(http.MethodPost, "/demo/orders/testOrderId/card", strings.NewReader(approveBody))
		req = mux.SetURLVars(req, map[string]string{"order_id": "testOrderId"})
		w := httptest.NewRecorder()

		h.HandleApproveOrderWithCard(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "testOrderId")
		So(w.Body.String(), ShouldContainSubstring, "APPROVED")
	})

	Convey("Canceled challenge reports cancellation, not an error", t, func() {
		mockOrders := service.NewMockOrdersAPI(mockCtrl)
		mockOrders.EXPECT().ConfirmPaymentSource(gomock.Any(), gomock.Any()).
			Return(fixtures.GetConfirmPaymentSourceChallenge("testOrderId", fixtures.ChallengeHref), nil)

		mockSession := service.NewMockAuthenticationSession(mockCtrl)
		mockSession.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, service.ErrSessionCanceled)

		h := createCardHandlers(mockOrders, mockSession)
		req := httptest.NewRequest(http.MethodPost, "/demo/orders/testOrderId/card", strings.NewReader(approveBody))
		req = mux.SetURLVars(req, map[string]string{"order_id": "testOrderId"})
		w := httptest.NewRecorder()

		h.HandleApproveOrderWithCard(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "authentication canceled by user")
	})

	Convey("Backend rejection maps to bad gateway", t, func() {
		mockOrders := service.NewMockOrdersAPI(mockCtrl)
		mockOrders.EXPECT().ConfirmPaymentSource(gomock.Any(), gomock.Any()).
			Return(nil, api.NewError(api.ServerError, "error status [422] back from payments API", nil))

		h := createCardHandlers(mockOrders, nil)
		req := httptest.NewRequest(http.MethodPost, "/demo/orders/testOrderId/card", strings.NewReader(approveBody))
		req = mux.SetURLVars(req, map[string]string{"order_id": "testOrderId"})
		w := httptest.NewRecorder()

		h.HandleApproveOrderWithCard(w, req)

		So(w.Code, ShouldEqual, http.StatusBadGateway)
	})
}

func TestUnitHandlePayPalCheckout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Completed checkout returns the approval", t, func() {
		mockSession := service.NewMockAuthenticationSession(mockCtrl)
		mockSession.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *url.URL, _ func(bool)) (*url.URL, error) {
				return url.Parse("sdk.payments://x-callback-url/paypal-sdk/paypal-checkout?token=testOrderId&PayerID=testPayerId")
			})

		h := &DemoHandlers{
			PayPalWeb: &service.PayPalWebCheckoutClient{
				WebBaseURL:     "https://www.sandbox.paypal.com",
				CallbackScheme: "sdk.payments",
				Session:        mockSession,
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/demo/orders/testOrderId/paypal", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "testOrderId"})
		w := httptest.NewRecorder()

		h.HandlePayPalCheckout(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, "testPayerId")
	})

	Convey("Missing order id returns bad request", t, func() {
		h := &DemoHandlers{}
		req := httptest.NewRequest(http.MethodPost, "/demo/orders//paypal", nil)
		w := httptest.NewRecorder()

		h.HandlePayPalCheckout(w, req)

		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})
}
