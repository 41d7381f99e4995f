package httpserver

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/solenne/gift-registry-backend/interfaces"
)

// maxStoreAttempts bounds how often a single store call is tried. Only
// failures classified as transient are retried; everything else fails the
// call immediately.
const maxStoreAttempts = 3

// retryTransient runs op with exponential backoff, doubling the delay after
// each transient failure, up to maxStoreAttempts attempts in total. The
// context bounds the overall wait.
func retryTransient[T any](ctx context.Context, baseDelay time.Duration, onRetry func(), op func() (T, error)) (T, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = baseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	wrapped := func() (T, error) {
		v, err := op()
		if err != nil && !interfaces.IsTransient(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	notify := func(error, time.Duration) {
		if onRetry != nil {
			onRetry()
		}
	}

	return backoff.RetryNotifyWithData(wrapped, backoff.WithContext(backoff.WithMaxRetries(bo, maxStoreAttempts-1), ctx), notify)
}
