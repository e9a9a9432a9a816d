package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("12345")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" a ", false},
		{"skill", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBlank(tt.in), "IsBlank(%q)", tt.in)
	}
}

func TestErrValidation_Wrapping(t *testing.T) {
	err := fmt.Errorf("submit: %w", ErrValidation)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestValidationError(t *testing.T) {
	var err error = NewValidationError("MissingCategory", "Please select a category.")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Please select a category.", err.Error())

	var ve *ValidationError
	if assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &ve) {
		assert.Equal(t, "MissingCategory", ve.Reason)
	}

	bare := &ValidationError{Reason: "X"}
	assert.Equal(t, "validation error: X", bare.Error())
}
