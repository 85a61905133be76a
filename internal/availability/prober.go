package availability

import (
	"context"
	"log"
	"time"
)

// DefaultTimeout bounds a single health probe
const DefaultTimeout = 5 * time.Second

// HealthChecker is the health-check call the prober wraps
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Prober reduces a timeout-bounded health check to a boolean routing
// signal. The failure reason is intentionally discarded; callers only
// need to know whether the backend is reachable.
type Prober struct {
	checker  HealthChecker
	timeout  time.Duration
	debugLog bool
}

// NewProber creates a prober. A non-positive timeout falls back to
// DefaultTimeout.
func NewProber(checker HealthChecker, timeout time.Duration, debugLog bool) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{checker: checker, timeout: timeout, debugLog: debugLog}
}

// Available reports whether the backend answered the health check within
// the timeout. Any failure, including a panic while issuing the check,
// collapses to false.
func (p *Prober) Available(ctx context.Context) (available bool) {
	defer func() {
		if r := recover(); r != nil {
			if p.debugLog {
				log.Printf("[Prober] health check panicked: %v", r)
			}
			available = false
		}
	}()

	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.checker.Health(probeCtx); err != nil {
		if p.debugLog {
			log.Printf("[Prober] backend unavailable: %v", err)
		}
		return false
	}
	return true
}
