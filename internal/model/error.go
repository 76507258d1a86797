package model

import "fmt"

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInvalidDateFormat = "INVALID_DATE_FORMAT"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-logic error carrying a stable code that the HTTP
// layer translates into a response status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NotFound reports whether the error identifies a missing entity, as opposed
// to an invalid argument.
func (e *DomainError) NotFound() bool {
	switch e.Code {
	case ErrCodeCustomerNotFound, ErrCodeProductNotFound, ErrCodeOrderNotFound:
		return true
	}
	return false
}

// Common domain errors
var (
	ErrCustomerNotFound  = NewDomainError(ErrCodeCustomerNotFound, "Customer not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidDateFormat = NewDomainError(ErrCodeInvalidDateFormat, "Invalid delivery date format, expected YYYY-MM-DD")
	ErrInvalidStatus     = NewDomainError(ErrCodeInvalidStatus, "Status must be one of pending, in_progress, completed, cancelled")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidPrice      = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
)

// NewProductNotFoundError reports a missing product by id so the caller can
// tell which line of an order failed to resolve.
func NewProductNotFoundError(id string) *DomainError {
	return NewDomainError(ErrCodeProductNotFound, fmt.Sprintf("Product %s not found", id))
}

// NewMissingFieldError reports a required field absent from a request payload.
func NewMissingFieldError(field string) *DomainError {
	return NewDomainError(ErrCodeMissingField, fmt.Sprintf("Field %s is required", field))
}
