package httpserver

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solenne/gift-registry-backend/interfaces"
)

func TestRetryTransientEventuallySucceeds(t *testing.T) {
	attempts := 0
	retries := 0

	got, err := retryTransient(context.Background(), time.Millisecond, func() { retries++ }, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", fmt.Errorf("%w: rate limited", interfaces.ErrTransient)
		}
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", got)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 2, retries)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	attempts := 0

	_, err := retryTransient(context.Background(), time.Millisecond, nil, func() (int, error) {
		attempts++
		return 0, interfaces.ErrOutOfRange
	})

	require.ErrorIs(t, err, interfaces.ErrOutOfRange)
	assert.Equal(t, 1, attempts)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	attempts := 0

	_, err := retryTransient(context.Background(), time.Millisecond, nil, func() (int, error) {
		attempts++
		return 0, fmt.Errorf("%w: connection reset", interfaces.ErrTransient)
	})

	require.ErrorIs(t, err, interfaces.ErrTransient)
	assert.Equal(t, maxStoreAttempts, attempts)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := retryTransient(ctx, time.Second, nil, func() (int, error) {
		return 0, fmt.Errorf("%w: unavailable", interfaces.ErrTransient)
	})

	assert.True(t, errors.Is(err, context.Canceled) || interfaces.IsTransient(err))
}
