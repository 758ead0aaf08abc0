package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/d1nch8g/pmxout/assign"
)

var fast = RetryPolicy{MaxRetries: 2, Initial: time.Millisecond, MaxInterval: time.Millisecond}

func TestRetryPolicy_TransientThenSuccess(t *testing.T) {
	calls, retries := 0, 0
	err := fast.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return rpcErr(assign.ErrConnection)
		}
		return nil
	}, func(error, time.Duration) { retries++ })

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, retries)
}

func TestRetryPolicy_PermanentStopsAtOnce(t *testing.T) {
	calls := 0
	err := fast.Do(context.Background(), func(context.Context) error {
		calls++
		return rpcErr(assign.ErrRPC)
	}, nil)

	assert.ErrorIs(t, err, assign.ErrRPC)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_ZeroRetries(t *testing.T) {
	calls := 0
	p := RetryPolicy{Initial: time.Millisecond}
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return rpcErr(assign.ErrConnection)
	}, nil)

	assert.ErrorIs(t, err, assign.ErrConnection)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := RetryPolicy{MaxRetries: 100, Initial: time.Hour, MaxInterval: time.Hour}
	err := p.Do(ctx, func(context.Context) error {
		cancel()
		return rpcErr(assign.ErrConnection)
	}, nil)

	assert.True(t, errors.Is(err, context.Canceled))
}
