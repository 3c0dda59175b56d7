package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
	Detail  interface{}
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("apiclient: status %d", e.Status)
	}
	return fmt.Sprintf("apiclient: status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// errorBody matches the failure envelope written by the API.
type errorBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   interface{} `json:"error"`
}

func decodeAPIError(status int, body []byte) error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Message == "" {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(status)
		}
		return &APIError{Status: status, Message: message}
	}
	return &APIError{Status: status, Message: parsed.Message, Detail: parsed.Error}
}
