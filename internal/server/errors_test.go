package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/wikiwally/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "query", Message: "is required"}
	assert.Equal(t, "validation error: query - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrInvalidPayload(t *testing.T) {
	err := &ErrInvalidPayload{Cause: assert.AnError}
	assert.Contains(t, err.Error(), "invalid payload")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "count", Message: "bad"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "Wrapped ErrValidation",
			err:      fmt.Errorf("decode: %w", &ErrValidation{Field: "body", Message: "bad"}),
			expected: http.StatusBadRequest,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestValidationError_FromValidator(t *testing.T) {
	req := types.OptionsRequest{Query: "x"}
	err := validationError(req.Validate())

	var validationErr *ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "RequestedBy", validationErr.Field)
	assert.Equal(t, "failed on the 'required' rule", validationErr.Message)
}

func TestValidationError_Other(t *testing.T) {
	err := validationError(assert.AnError)

	var validationErr *ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "body", validationErr.Field)
}
