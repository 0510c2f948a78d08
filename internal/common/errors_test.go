package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "database busy", err: fmt.Errorf("write failed: %w", ErrDatabaseBusy), want: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "marked retryable", err: &RetryableError{Err: errors.New("boom"), Retryable: true}, want: true},
		{name: "marked permanent", err: &RetryableError{Err: errors.New("boom"), Retryable: false}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	err := NewUserError("Catalog is empty; run 'partsense catalog seed' first", ErrEmptyCatalog)

	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Contains(t, err.Error(), "catalog seed")

	bare := NewUserError("Give me a query to classify", nil)
	assert.Equal(t, "Give me a query to classify", bare.Error())
}
