// Package errors defines the application error taxonomy: validation,
// not-found, conflict, policy and infrastructure errors, all implementing a
// common AppError interface the delivery layer can translate uniformly.
package errors

import (
	"fmt"
	"net/http"

	"librarium/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors: bad argument shape, reported to the immediate caller.
	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"identifier must be a positive integer",
		"",
	)

	ErrInvalidTitle = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TITLE",
		"title must be non-empty and within the allowed length",
		"",
	)

	ErrInvalidBarcode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BARCODE",
		"barcode must be non-empty and within the allowed length",
		"",
	)

	ErrInvalidISBN = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ISBN",
		"ISBN must be non-empty and within the allowed length",
		"",
	)

	ErrInvalidName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NAME",
		"username must be non-empty and within the allowed length",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"password must be non-empty and within the allowed length",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"email must be non-empty and within the allowed length",
		"",
	)

	ErrInvalidType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TYPE",
		"unknown entity type",
		"",
	)

	ErrInvalidAgeRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AGE_RATING",
		"age rating must be between 0 and 100",
		"",
	)

	ErrNullEntity = NewBaseError(
		http.StatusBadRequest,
		"NULL_ENTITY",
		"entity must not be nil",
		"",
	)

	ErrImmutableField = NewBaseError(
		http.StatusBadRequest,
		"IMMUTABLE_FIELD",
		"attempted to change an immutable field",
		"",
	)

	// Not-found errors: referenced entity absent, or soft-deleted when an
	// active one was required.
	ErrEntityNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"the referenced entity does not exist",
		"",
	)

	ErrNoAvailableCopy = NewBaseError(
		http.StatusNotFound,
		"NO_AVAILABLE_COPY",
		"no available copy of this title",
		"",
	)

	// Conflict errors: uniqueness violations.
	ErrDuplicateBarcode = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_BARCODE",
		"an item with this barcode is already registered",
		"",
	)

	ErrDuplicateUsername = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_USERNAME",
		"this username is already taken",
		"",
	)

	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_EMAIL",
		"this email is already registered",
		"",
	)

	// Policy errors: business-rule refusals.
	ErrItemNotRentable = NewBaseError(
		http.StatusUnprocessableEntity,
		"ITEM_NOT_RENTABLE",
		"items of this type may not be rented",
		"",
	)

	ErrRentalAlreadyReturned = NewBaseError(
		http.StatusConflict,
		"RENTAL_ALREADY_RETURNED",
		"this rental has already been returned",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"invalid username or password",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// RentalNotAllowedError is the policy refusal for createRental. It carries
// the member's counters so callers can show why the rental was refused.
type RentalNotAllowedError struct {
	Reason         string
	LateFee        float64
	CurrentRentals int
	AllowedRentals int
}

// Error implements the error interface
func (e *RentalNotAllowedError) Error() string {
	return fmt.Sprintf("rental not allowed: %s (lateFee=%.2f currentRentals=%d allowedRentals=%d)",
		e.Reason, e.LateFee, e.CurrentRentals, e.AllowedRentals)
}

// HTTPCode returns the HTTP status code
func (e *RentalNotAllowedError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *RentalNotAllowedError) ErrorCode() string {
	return "RENTAL_NOT_ALLOWED"
}

// Message returns the user-friendly error message
func (e *RentalNotAllowedError) Message() string {
	return "the user is not allowed to rent"
}

// Details returns detailed error information
func (e *RentalNotAllowedError) Details() string {
	return e.Error()
}

// DeletionBlockedError is the policy refusal for deleting a user that still
// has active rentals or an outstanding late fee.
type DeletionBlockedError struct {
	CurrentRentals int
	LateFee        float64
}

// Error implements the error interface
func (e *DeletionBlockedError) Error() string {
	return fmt.Sprintf("deletion blocked: currentRentals=%d lateFee=%.2f", e.CurrentRentals, e.LateFee)
}

// HTTPCode returns the HTTP status code
func (e *DeletionBlockedError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *DeletionBlockedError) ErrorCode() string {
	return "DELETION_BLOCKED"
}

// Message returns the user-friendly error message
func (e *DeletionBlockedError) Message() string {
	return "the user still has open rentals or fees"
}

// Details returns detailed error information
func (e *DeletionBlockedError) Details() string {
	return e.Error()
}

// DatabaseExecuteError represents a store-level failure. It is propagated to
// the caller as an infrastructure error rather than terminating the process.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
