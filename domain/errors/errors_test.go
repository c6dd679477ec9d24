package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	baseErr := fmt.Errorf("%w \"homepage\"", ErrUnknownField)
	err := &ConfigError{
		Field: "no-assertion-values",
		Err:   baseErr,
	}

	assert.Equal(t, `invalid policy configuration for 'no-assertion-values': unknown package field "homepage"`, err.Error())
	assert.True(t, errors.Is(err, ErrUnknownField))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "no-assertion-values", cfgErr.Field)
}

func TestConfigError_NoField(t *testing.T) {
	err := &ConfigError{Err: fmt.Errorf("bad policy")}
	assert.Equal(t, "invalid policy configuration: bad policy", err.Error())
}

func TestInputError(t *testing.T) {
	t.Run("Package", func(t *testing.T) {
		err := &InputError{Index: 3, Field: "name", Err: ErrMissingName}
		assert.Equal(t, "malformed package at index 3 (field 'name'): package name is required", err.Error())
		assert.True(t, errors.Is(err, ErrMissingName))
	})

	t.Run("Policy", func(t *testing.T) {
		err := &InputError{Index: -1, Field: "policy", Err: ErrNilPolicy}
		assert.Equal(t, "malformed input (field 'policy'): policy is required", err.Error())
	})

	t.Run("No field", func(t *testing.T) {
		err := &InputError{Index: -1, Err: fmt.Errorf("truncated")}
		assert.Equal(t, "malformed input: truncated", err.Error())
	})
}

func TestHandlerError(t *testing.T) {
	cause := &ConfigError{Field: "no-assertion-values", Err: ErrUnknownField}
	err := &HandlerError{Category: entities.CategoryNoAssertionValues, Err: cause}

	assert.Contains(t, err.Error(), "no-assertion-values check failed")
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.True(t, IsProcessingError(err))

	detail := err.ToErrorDetail()
	assert.Equal(t, "config", detail.Type)
	assert.Equal(t, err.Error(), detail.Message)
}

func TestHandlerError_Internal(t *testing.T) {
	err := &HandlerError{Category: entities.CategoryApprovedSuppliers, Err: fmt.Errorf("boom")}
	assert.False(t, IsProcessingError(err))

	detail := err.ToErrorDetail()
	assert.Equal(t, "internal", detail.Type)
	assert.Equal(t, "approved-suppliers", detail.Code)
}

func TestToErrorDetail(t *testing.T) {
	tests := []struct {
		err      error
		name     string
		wantType string
		wantCode string
	}{
		{name: "ConfigError", err: &ConfigError{Field: "approved-suppliers", Err: ErrEmptyEntry}, wantType: "config", wantCode: "approved-suppliers"},
		{name: "InputError", err: &InputError{Index: 0, Field: "name", Err: ErrMissingName}, wantType: "validation", wantCode: "name"},
		{name: "SchemaError", err: &SchemaError{Type: "Policy", Err: fmt.Errorf("x")}, wantType: "internal", wantCode: "schema"},
		{name: "Wrapped ConfigError", err: fmt.Errorf("run: %w", &ConfigError{Field: "f", Err: ErrUnknownField}), wantType: "config", wantCode: "f"},
		{name: "Generic error", err: fmt.Errorf("generic"), wantType: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := ToErrorDetail(tt.err)
			require.NotNil(t, detail)
			assert.Equal(t, tt.wantType, detail.Type)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestToErrorDetail_Nil(t *testing.T) {
	assert.Nil(t, ToErrorDetail(nil))
}

func TestToErrorDetail_InputErrorIndex(t *testing.T) {
	detail := ToErrorDetail(&InputError{Index: 7, Field: "name", Err: ErrMissingName})
	assert.Equal(t, 7, detail.Details["index"])

	detail = ToErrorDetail(&InputError{Index: -1, Field: "policy", Err: ErrNilPolicy})
	assert.Nil(t, detail.Details)
}

func TestToErrorDetail_Passthrough(t *testing.T) {
	original := entities.NewErrorDetail("config", "already structured").WithCode("X")
	assert.Same(t, original, ToErrorDetail(fmt.Errorf("wrap: %w", original)))
}
