package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Health(ctx context.Context) error { return f(ctx) }

func TestProber_Available_Success(t *testing.T) {
	prober := NewProber(checkerFunc(func(ctx context.Context) error {
		return nil
	}), time.Second, false)

	assert.True(t, prober.Available(context.Background()))
}

func TestProber_Available_FailureCollapsesToFalse(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network error", errors.New("connection refused")},
		{"non-2xx", errors.New("HTTP 503: Service Unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := NewProber(checkerFunc(func(ctx context.Context) error {
				return tt.err
			}), time.Second, false)

			assert.False(t, prober.Available(context.Background()))
		})
	}
}

// A health check that never responds must not hang the prober past its
// timeout bound.
func TestProber_TimeoutBound(t *testing.T) {
	prober := NewProber(checkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}), 50*time.Millisecond, false)

	start := time.Now()
	available := prober.Available(context.Background())
	elapsed := time.Since(start)

	assert.False(t, available)
	assert.Less(t, elapsed, time.Second, "prober must resolve within timeout plus epsilon")
}

// A synchronous panic while issuing the check is treated the same as a
// network failure.
func TestProber_SynchronousPanicCollapsesToFalse(t *testing.T) {
	prober := NewProber(checkerFunc(func(ctx context.Context) error {
		panic("malformed URL")
	}), time.Second, false)

	assert.False(t, prober.Available(context.Background()))
}

func TestProber_DefaultTimeout(t *testing.T) {
	prober := NewProber(checkerFunc(func(ctx context.Context) error { return nil }), 0, false)
	assert.Equal(t, DefaultTimeout, prober.timeout)
}
