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
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrCardNotFound", err: ErrCardNotFound, expected: true},
		{
			name:     "wrapped ErrAnswerNotFound",
			err:      fmt.Errorf("failed to load answer: %w", ErrAnswerNotFound),
			expected: true,
		},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStoreError("answer", "upsert", "failed to write answer", cause)

	assert.Equal(t, "upsert operation on answer failed: failed to write answer: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	var storeErr *StoreError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &storeErr))
	assert.Equal(t, "answer", storeErr.Entity)

	bare := NewStoreError("card", "list", "no rows", nil)
	assert.Equal(t, "list operation on card failed: no rows", bare.Error())
}
