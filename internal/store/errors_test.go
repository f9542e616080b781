package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrTaskNotFound",
			err:      ErrTaskNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrTaskNotFound",
			err:      fmt.Errorf("failed to find task: %w", ErrTaskNotFound),
			expected: true,
		},
		{
			name:     "StoreError wrapping ErrTaskNotFound",
			err:      NewStoreError("task", "delete", "no such id", ErrTaskNotFound),
			expected: true,
		},
		{
			name:     "ErrInvalidEntity",
			err:      ErrInvalidEntity,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	withCause := NewStoreError("task", "create", "validation failed", ErrInvalidEntity)
	assert.Equal(t, "create operation on task failed: validation failed: invalid entity", withCause.Error())
	assert.ErrorIs(t, withCause, ErrInvalidEntity)

	var storeErr *StoreError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", withCause), &storeErr))
	assert.Equal(t, "create", storeErr.Operation)

	noCause := NewStoreError("task", "update", "conflict", nil)
	assert.Equal(t, "update operation on task failed: conflict", noCause.Error())
	assert.Nil(t, noCause.Unwrap())
}
