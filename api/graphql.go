package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// GraphQLRequest is a single query with its variables. Every GraphQL call is
// a POST with a JSON body.
type GraphQLRequest struct {
	Query     string      `json:"query"`
	Variables interface{} `json:"variables"`
	// QueryName is appended to the URL for request attribution only
	QueryName string `json:"-"`
}

// GraphQLResponse is the envelope every GraphQL response arrives in. Data is
// decoded by the caller into the operation's payload type.
type GraphQLResponse struct {
	Data json.RawMessage `json:"data"`
}

// GraphQLClient issues single GraphQL calls against the payments backend
type GraphQLClient struct {
	URL        string
	HTTPClient *http.Client
}

// NewGraphQLClient returns a GraphQLClient backed by http.DefaultClient
func NewGraphQLClient(url string) *GraphQLClient {
	return &GraphQLClient{
		URL:        url,
		HTTPClient: http.DefaultClient,
	}
}

// Execute posts the query and returns the raw response. Transport failures
// are TransportError; body and status interpretation is left to Parse.
func (c *GraphQLClient) Execute(ctx context.Context, query *GraphQLRequest) (*HTTPResponse, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, NewError(UnknownError, "error encoding GraphQL request body", err)
	}

	url := c.URL
	if query.QueryName != "" {
		url += "?" + query.QueryName
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, NewError(UnknownError, "error generating GraphQL request", err)
	}

	request.Header.Add("Content-Type", "application/json")
	request.Header.Add("Accept", "application/json")
	request.Header.Add("x-app-name", "payments-sdk-go")
	request.Header.Add("Origin", c.URL)

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, NewError(TransportError, "error sending GraphQL request to payments API", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewError(TransportError, "error reading GraphQL response from payments API", err)
	}

	return &HTTPResponse{StatusCode: resp.StatusCode, Body: responseBody}, nil
}
