package feroxsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/feroxapp/ferox/pkg/httpx"
)

// Error codes shared between the API and its clients.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeAccountInactive    = "account_inactive"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeInvalidCode        = "invalid_code"
	ErrorCodeInvalidState       = "invalid_state"
	ErrorCodeDeliveryFailed     = "delivery_failed"
	ErrorCodeServerError        = "server_error"
)

// APIError is the standard error envelope. It implements the error interface
// and is used both by the server (to write HTTP responses) and by the SDK
// client (to represent decoded errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// Predefined errors.
var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or missing auth token",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "the requested resource does not exist",
	}

	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "the resource conflicts with existing state",
	}

	ErrInvalidCode = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeInvalidCode,
		Description: "invalid or expired code",
	}

	ErrInvalidState = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeInvalidState,
		Description: "the operation is not valid in the current state",
	}

	ErrDeliveryFailed = &APIError{
		StatusCode:  http.StatusBadGateway,
		Code:        ErrorCodeDeliveryFailed,
		Description: "the code could not be delivered",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// AccountInactiveError is returned from login when credentials are valid but
// the account has not been activated yet. It carries the data a client needs
// to drive activation through the Discord bot.
type AccountInactiveError struct {
	AccountID      string `json:"account_id"`
	ActivationCode string `json:"activation_code,omitempty"`
}

// Error implements the error interface.
func (e *AccountInactiveError) Error() string {
	return fmt.Sprintf("%s: account %s is not active", ErrorCodeAccountInactive, e.AccountID)
}

// WriteError writes the account_inactive envelope with remediation fields.
func (e *AccountInactiveError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusForbidden, accountInactiveEnvelope{
		Code:           ErrorCodeAccountInactive,
		Description:    "account is not active",
		AccountID:      e.AccountID,
		ActivationCode: e.ActivationCode,
	})
}

type accountInactiveEnvelope struct {
	Code           string `json:"error"`
	Description    string `json:"error_description"`
	AccountID      string `json:"account_id"`
	ActivationCode string `json:"activation_code,omitempty"`
}

// parseErrorResponse decodes an error body into the richest matching type.
func parseErrorResponse(statusCode int, body []byte) error {
	var envelope struct {
		Code           string `json:"error"`
		Description    string `json:"error_description"`
		AccountID      string `json:"account_id"`
		ActivationCode string `json:"activation_code"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Code == "" {
		return &APIError{
			StatusCode:  statusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response (status %d)", statusCode),
		}
	}

	if envelope.Code == ErrorCodeAccountInactive {
		return &AccountInactiveError{
			AccountID:      envelope.AccountID,
			ActivationCode: envelope.ActivationCode,
		}
	}

	return &APIError{
		StatusCode:  statusCode,
		Code:        envelope.Code,
		Description: envelope.Description,
	}
}
