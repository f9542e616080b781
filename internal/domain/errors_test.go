package domain

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "is required", ErrEmptyTitle)

	if got, want := err.Error(), "title is required: validation failed: title cannot be empty"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should unwrap to ErrValidation")
	}

	bare := NewValidationError("status", "is invalid", nil)
	if got, want := bare.Error(), "status is invalid"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if errors.Is(bare, ErrValidation) {
		t.Error("ValidationError without cause should not match ErrValidation")
	}
}
