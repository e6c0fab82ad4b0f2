package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the transparent retry of stale writes.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy retries a stale write three times, starting at 20ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, InitialInterval: 20 * time.Millisecond, MaxInterval: 200 * time.Millisecond}
}

// RetryOnStaleWrite runs op again while it fails with a stale write. Each
// attempt must re-read the aggregate, which every command handler does. Any
// other error stops immediately. When the retries run out the last stale write
// error is returned.
func RetryOnStaleWrite[T any](ctx context.Context, policy RetryPolicy, op func() (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.InitialInterval
	b.MaxInterval = policy.MaxInterval
	b.MaxElapsedTime = 0

	return backoff.RetryWithData(func() (T, error) {
		res, err := op()
		if err != nil && !errors.Is(err, errs.ErrStaleWrite) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}, backoff.WithContext(backoff.WithMaxRetries(b, policy.MaxRetries), ctx))
}
