package engine

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/d1nch8g/pmxout/assign"
)

// RetryPolicy bounds the retries of transient remote failures.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first one. Zero
	// disables retrying.
	MaxRetries  int
	Initial     time.Duration
	MaxInterval time.Duration
}

// DefaultRetryPolicy is used when no policy is configured.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:  5,
	Initial:     200 * time.Millisecond,
	MaxInterval: 5 * time.Second,
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	initial := p.Initial
	if initial <= 0 {
		initial = DefaultRetryPolicy.Initial
	}
	maxInterval := p.MaxInterval
	if maxInterval <= 0 {
		maxInterval = DefaultRetryPolicy.MaxInterval
	}
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(initial),
		backoff.WithMaxInterval(maxInterval),
		backoff.WithMaxElapsedTime(0),
	)
	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)
}

// Do runs fn until it succeeds, fails with a non-transient error, or the
// policy gives up. onRetry, if set, is called before every retry.
func (p RetryPolicy) Do(ctx context.Context, fn func(context.Context) error, onRetry func(error, time.Duration)) error {
	op := func() error {
		err := fn(ctx)
		if err != nil && !assign.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.RetryNotify(op, p.backOff(ctx), onRetry)
}
