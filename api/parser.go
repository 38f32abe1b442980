package api

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse is the well-formed error body returned by the backend on
// non-2xx responses
type ErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Parse decodes a 2xx response into target, or classifies the failure.
// Non-2xx responses become ServerError; a 2xx body that does not match the
// expected shape becomes DecodingError.
func Parse(response *HTTPResponse, target interface{}) error {
	if !response.Successful() {
		errorBody := &ErrorResponse{}
		if err := json.Unmarshal(response.Body, errorBody); err != nil || errorBody.Message == "" {
			// Undecodable error body still classifies as a server failure
			return NewError(ServerError, fmt.Sprintf("error status [%v] back from payments API", response.StatusCode), nil)
		}
		return NewError(ServerError, fmt.Sprintf("error status [%v] back from payments API: [%s] %s", response.StatusCode, errorBody.Name, errorBody.Message), nil)
	}

	if err := json.Unmarshal(response.Body, target); err != nil {
		return NewError(DecodingError, "error reading response from payments API", err)
	}
	return nil
}
