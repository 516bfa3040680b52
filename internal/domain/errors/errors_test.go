package errors

import (
	"net/http"
	"testing"

	"holocron/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDerivedCopies(t *testing.T) {
	err := CatalogItemNotFound("Planet")

	assert.Equal(t, "Planet not found", err.Message())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.True(t, errors.Is(err, ErrCatalogItemNotFound))
	assert.False(t, errors.Is(err, ErrUserNotFound))

	wrapped := err.WrapMessage("add favorite")
	assert.True(t, errors.Is(wrapped, ErrCatalogItemNotFound))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "CATALOG_ITEM_NOT_FOUND", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("url is required")

	assert.Equal(t, "Invalid input: url is required", err.Error())
	assert.Equal(t, "url is required", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseExecuteError(cause, "failed to list favorites")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to list favorites", err.Details())
}
