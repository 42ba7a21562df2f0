package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "temperature below absolute zero")
			},
			expected: "VALIDATION_ERROR: temperature below absolute zero",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(DatabaseError, "failed to save observation", cause)
			},
			expected: "DATABASE_ERROR: failed to save observation (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.setup().Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	err := NewExternalAPIError("failed to call OpenWeatherMap", cause)
	assert.Equal(t, cause, err.Unwrap())

	assert.Nil(t, NewNotFoundError("no rows").Unwrap())
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeDatabase, "DATABASE_ERROR"},
		{ErrorTypeExternalAPI, "EXTERNAL_API_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
		{ErrorType(99), "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypePredicates_SeeThroughWrapping(t *testing.T) {
	base := NewValidationError("unknown date filter")
	wrapped := fmt.Errorf("parse query: %w", base)

	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsDatabaseError(wrapped))
	assert.Equal(t, ValidationError, TypeOf(wrapped))
}

func TestTypePredicates(t *testing.T) {
	cause := fmt.Errorf("boom")

	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.True(t, IsDatabaseError(NewDatabaseError("x", cause)))
	assert.True(t, IsExternalAPIError(NewExternalAPIError("x", cause)))
	assert.True(t, IsConfigurationError(NewConfigurationError("x", nil)))

	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(cause))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(cause))
}
