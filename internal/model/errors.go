package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Match errors
	ErrMatchNotFound     = errors.New("match not found")
	ErrAlreadyInMatch    = errors.New("player is already in an active match")
	ErrInsufficientFunds = errors.New("insufficient funds for entry fee")
	ErrMatchNotActive    = errors.New("match is not active")
	ErrPlayerNotInMatch  = errors.New("player is not part of this match")
)

// ValidationError reports input fields that failed validation before
// any storage call was made
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError creates a ValidationError for the given fields
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
