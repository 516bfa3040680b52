package errors

import (
	"net/http"

	"holocron/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so derived copies
// still satisfy errors.Is against the predefined values below.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
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

// WithMessage replaces the user-facing message and keeps the code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Request errors
	ErrNoDataProvided = NewBaseError(
		http.StatusBadRequest,
		"NO_DATA_PROVIDED",
		"No data provided",
		"",
	)

	ErrUserIDRequired = NewBaseError(
		http.StatusBadRequest,
		"USER_ID_REQUIRED",
		"User ID is required",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrInvalidCatalogKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATALOG_KIND",
		"Unknown catalog type",
		"",
	)

	ErrInvalidReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFERENCE",
		"Referenced record does not exist",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email or username already registered",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Catalog errors
	ErrCatalogItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CATALOG_ITEM_NOT_FOUND",
		"Item not found",
		"",
	)

	ErrCatalogItemAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATALOG_ITEM_ALREADY_EXISTS",
		"An item with this url already exists",
		"",
	)

	// Favorite errors
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Item is not in favorites",
		"",
	)

	ErrFavoriteAlreadyExists = NewBaseError(
		http.StatusConflict,
		"FAVORITE_ALREADY_EXISTS",
		"Item is already in favorites",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// CatalogItemNotFound is ErrCatalogItemNotFound worded for kind, e.g. "Planet not found".
func CatalogItemNotFound(kindTitle string) *BaseError {
	return ErrCatalogItemNotFound.WithMessage(kindTitle + " not found")
}

// FavoriteNotFound is ErrFavoriteNotFound worded for kind, e.g. "Planet is not in favorites".
func FavoriteNotFound(kindTitle string) *BaseError {
	return ErrFavoriteNotFound.WithMessage(kindTitle + " is not in favorites")
}

// FavoriteAlreadyExists is ErrFavoriteAlreadyExists worded for kind.
func FavoriteAlreadyExists(kindTitle string) *BaseError {
	return ErrFavoriteAlreadyExists.WithMessage(kindTitle + " is already in favorites")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
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

// Unwrap exposes the driver error to errors.Is and errors.As.
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
