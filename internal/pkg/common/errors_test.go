package common

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsCustomErrorUnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("no recipe matches %q: %w", "Tea", ErrRecipeNotFound)

	ce, ok := AsCustomError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeRecipeNotFound, ce.Code)
	assert.Equal(t, http.StatusNotFound, ce.Status)

	_, ok = AsCustomError(fmt.Errorf("plain error"))
	assert.False(t, ok)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("name is required")

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "name is required", err.Error())

	// 包裝後仍可識別
	assert.True(t, IsValidationError(fmt.Errorf("call failed: %w", err)))
	assert.False(t, IsValidationError(ErrInvalidRequest))
}

func TestPredefinedErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err    *CustomError
		code   string
		status int
	}{
		{ErrRecipeNotFound, "NOT_FOUND", http.StatusNotFound},
		{ErrUpstreamUnavailable, "UPSTREAM_UNAVAILABLE", http.StatusBadGateway},
		{ErrMalformedRecord, "MALFORMED_RECORD", http.StatusBadGateway},
		{ErrInvalidFilterType, "INVALID_FILTER_TYPE", http.StatusBadRequest},
		{ErrToolNotFound, "TOOL_NOT_FOUND", http.StatusNotFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.status, tt.err.Status)
	}
}
