package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPResponse is a raw response from the backend, before parsing
type HTTPResponse struct {
	StatusCode int
	Body       []byte
}

// Successful reports whether the response carries a 2xx status
func (r *HTTPResponse) Successful() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Client issues single REST calls against the payments backend. It performs
// exactly one network call per Fetch and never retries.
type Client struct {
	BaseURL  string
	ClientID string
	// ClientSecret is only set for merchant-credentialed calls; SDK calls
	// authenticate with the client ID alone
	ClientSecret string
	HTTPClient   *http.Client
}

// NewClient returns a Client backed by http.DefaultClient
func NewClient(baseURL, clientID string) *Client {
	return &Client{
		BaseURL:    baseURL,
		ClientID:   clientID,
		HTTPClient: http.DefaultClient,
	}
}

// Fetch performs one request and returns the raw response. Connectivity
// failures are reported as TransportError; non-2xx responses are returned
// to the caller for parsing, not treated as errors here.
func (c *Client) Fetch(ctx context.Context, method, path string, body []byte) (*HTTPResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, NewError(UnknownError, fmt.Sprintf("error generating request for %s", path), err)
	}

	request.Header.Add("Accept", "application/json")
	request.Header.Add("Accept-Language", "en_US")
	request.Header.Add("Content-Type", "application/json")
	request.SetBasicAuth(c.ClientID, c.ClientSecret)

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, NewError(TransportError, "error sending request to payments API", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewError(TransportError, "error reading response from payments API", err)
	}

	return &HTTPResponse{StatusCode: resp.StatusCode, Body: responseBody}, nil
}
