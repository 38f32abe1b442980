package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

func TestUnitFetch(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	client := NewClient("https://api.sandbox.paypal.com", "testClientId")

	t.Run("returns the raw body and status", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, "https://api.sandbox.paypal.com/v2/checkout/orders/testOrderId",
			httpmock.NewStringResponder(http.StatusOK, `{"id": "testOrderId"}`))

		response, err := client.Fetch(context.Background(), http.MethodGet, "/v2/checkout/orders/testOrderId", nil)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.JSONEq(t, `{"id": "testOrderId"}`, string(response.Body))
		assert.True(t, response.Successful())
	})

	t.Run("sends JSON headers and basic auth", func(t *testing.T) {
		httpmock.Reset()
		var captured *http.Request
		httpmock.RegisterResponder(http.MethodPost, "https://api.sandbox.paypal.com/v1/tracking/events",
			func(req *http.Request) (*http.Response, error) {
				captured = req
				return httpmock.NewStringResponse(http.StatusOK, "{}"), nil
			})

		_, err := client.Fetch(context.Background(), http.MethodPost, "/v1/tracking/events", []byte("{}"))

		assert.NoError(t, err)
		assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", captured.Header.Get("Accept"))
		assert.Equal(t, "en_US", captured.Header.Get("Accept-Language"))
		user, _, ok := captured.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "testClientId", user)
	})

	t.Run("non-2xx responses are returned, not errors", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, "https://api.sandbox.paypal.com/v2/checkout/orders/testOrderId",
			httpmock.NewStringResponder(http.StatusNotFound, `{"name": "RESOURCE_NOT_FOUND"}`))

		response, err := client.Fetch(context.Background(), http.MethodGet, "/v2/checkout/orders/testOrderId", nil)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
		assert.False(t, response.Successful())
	})

	t.Run("connectivity failures are transport errors", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, "https://api.sandbox.paypal.com/v2/checkout/orders/testOrderId",
			httpmock.NewErrorResponder(context.DeadlineExceeded))

		response, err := client.Fetch(context.Background(), http.MethodGet, "/v2/checkout/orders/testOrderId", nil)

		assert.Nil(t, response)
		assert.Equal(t, TransportError, KindOf(err))
	})
}

func TestUnitGraphQLExecute(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	client := NewGraphQLClient("https://www.sandbox.paypal.com/graphql")

	t.Run("posts to the attributed URL with SDK headers", func(t *testing.T) {
		httpmock.Reset()
		var captured *http.Request
		httpmock.RegisterResponder(http.MethodPost, "https://www.sandbox.paypal.com/graphql?UpdateVaultSetupToken",
			func(req *http.Request) (*http.Response, error) {
				captured = req
				return httpmock.NewStringResponse(http.StatusOK, `{"data": {}}`), nil
			})

		response, err := client.Execute(context.Background(), &GraphQLRequest{
			Query:     "mutation UpdateVaultSetupToken { }",
			QueryName: "UpdateVaultSetupToken",
		})

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.Equal(t, "payments-sdk-go", captured.Header.Get("x-app-name"))
		assert.Equal(t, "https://www.sandbox.paypal.com/graphql", captured.Header.Get("Origin"))
	})

	t.Run("connectivity failures are transport errors", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, "https://www.sandbox.paypal.com/graphql",
			httpmock.NewErrorResponder(context.DeadlineExceeded))

		response, err := client.Execute(context.Background(), &GraphQLRequest{Query: "query { }"})

		assert.Nil(t, response)
		assert.Equal(t, TransportError, KindOf(err))
	})
}
