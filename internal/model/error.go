package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeWrongType        = "WRONG_TYPE"
	ErrCodeInvalidPrice     = "INVALID_PRICE"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// ErrorKind classifies a DomainError for transport mapping.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
)

// Domain errors for business logic
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a client-caused error reported as a bad request.
func NewValidationError(code, message string) *DomainError {
	return NewDomainError(KindValidation, code, message)
}

// Common domain errors
var (
	ErrInvalidJSON     = NewValidationError(ErrCodeInvalidJSON, "Request body must be a valid JSON object.")
	ErrInvalidID       = NewValidationError(ErrCodeInvalidID, "Invalid product ID.")
	ErrProductNotFound = NewDomainError(KindNotFound, ErrCodeProductNotFound, "Product not found.")
)

// IsValidation reports whether err is, or wraps, a validation error.
func IsValidation(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == KindValidation
}

// IsNotFound reports whether err is, or wraps, a not-found error.
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == KindNotFound
}
