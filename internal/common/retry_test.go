package common

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/partsense/partsense/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetryRecoversFromBusy(t *testing.T) {
	opts := service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond}

	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return &RetryableError{Err: ErrDatabaseBusy, Retryable: true}
		}
		return nil
	}, opts)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryStopsOnPermanentError(t *testing.T) {
	opts := service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond}

	permanent := errors.New("constraint violation")
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return permanent
	}, opts)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	opts := service.RetryOptions{MaxAttempts: 2, InitialDelay: time.Millisecond}

	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return fmt.Errorf("insert: %w", ErrDatabaseBusy)
	}, opts)

	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 2, attempts)
}

func TestWithRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error {
		return &RetryableError{Err: ErrDatabaseBusy, Retryable: true}
	}, service.RetryOptions{MaxAttempts: 5, InitialDelay: time.Second})

	assert.ErrorIs(t, err, context.Canceled)
}
