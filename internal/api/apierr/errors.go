package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/matchbook-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeMatchNotFound     = "MATCH_NOT_FOUND"
	CodeAlreadyInMatch    = "ALREADY_IN_MATCH"
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	CodeMatchNotActive    = "MATCH_NOT_ACTIVE"
	CodePlayerNotInMatch  = "PLAYER_NOT_IN_MATCH"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, ve.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrAlreadyInMatch):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInMatch, "Player is already in an active match"}}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusPaymentRequired, APIError{CodeInsufficientFunds, "Insufficient balance for entry fee"}}
	case errors.Is(err, model.ErrMatchNotActive):
		return &httpError{http.StatusConflict, APIError{CodeMatchNotActive, "Match is not active"}}
	case errors.Is(err, model.ErrPlayerNotInMatch):
		return &httpError{http.StatusBadRequest, APIError{CodePlayerNotInMatch, "Player is not part of this match"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
