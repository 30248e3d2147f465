package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, WithMaxAttempts(5), WithBackoff(Fixed(time.Millisecond)))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := Do(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	}, WithMaxAttempts(3), WithBackoff(Fixed(time.Millisecond)))
	assert.Equal(t, boom, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	calls := 0
	fatal := errors.New("fatal")
	err := Do(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	}, WithMaxAttempts(5), WithRetryIf(func(err error) bool {
		return !errors.Is(err, fatal)
	}))
	assert.Equal(t, fatal, err)
	assert.Equal(t, 1, calls)
}

func TestDoRespectsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Do(ctx, func(ctx context.Context) error {
		return errors.New("never retried")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExponentialBackoff(t *testing.T) {
	b := Exponential(10*time.Millisecond, 50*time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, b.Next(0))
	assert.Equal(t, 20*time.Millisecond, b.Next(1))
	assert.Equal(t, 40*time.Millisecond, b.Next(2))
	assert.Equal(t, 50*time.Millisecond, b.Next(3)) // capped
}

func TestFullJitter(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := FullJitter(10 * time.Millisecond)
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.Less(t, d, 10*time.Millisecond)
	}
	assert.Equal(t, time.Duration(0), FullJitter(0))
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, IsRetryableError(nil))
	assert.False(t, IsRetryableError(context.Canceled))
	assert.False(t, IsRetryableError(context.DeadlineExceeded))
	assert.True(t, IsRetryableError(errors.New("anything else")))
}
