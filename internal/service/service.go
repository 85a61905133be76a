// Package service contains the per-domain fallback orchestrators. Every
// operation routes between the remote backend and the local store with
// the same decision procedure: if the backend path is disabled the call
// goes local; otherwise the availability prober is consulted and any
// remote failure degrades to the local store. Payment is the one
// exception and never falls back.
package service

import (
	"context"
	"log"
)

// Remote is the slice of the API client the services consume
type Remote interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Prober reports whether the remote backend is reachable
type Prober interface {
	Available(ctx context.Context) bool
}

// Router makes the per-call remote-vs-local decision shared by all
// domain services. The decision is never cached across calls.
type Router struct {
	backendEnabled func() bool
	prober         Prober
	debugLog       func() bool
}

// NewRouter creates a router. backendEnabled and debugLog are read per
// call so feature-flag flips take effect without a restart.
func NewRouter(backendEnabled func() bool, prober Prober, debugLog func() bool) *Router {
	if debugLog == nil {
		debugLog = func() bool { return false }
	}
	return &Router{backendEnabled: backendEnabled, prober: prober, debugLog: debugLog}
}

// UseRemote reports whether this call should attempt the remote path
func (r *Router) UseRemote(ctx context.Context) bool {
	if !r.backendEnabled() {
		return false
	}
	return r.prober.Available(ctx)
}

// BackendEnabled reports the raw feature flag, without probing
func (r *Router) BackendEnabled() bool {
	return r.backendEnabled()
}

// fellBack records a remote failure that was recovered locally. The
// error is diagnostic only and never surfaces to the caller.
func (r *Router) fellBack(op string, err error) {
	if r.debugLog() {
		log.Printf("[Service] %s: remote call failed, using local store: %v", op, err)
	}
}

// notify runs a best-effort secondary effect. A failure is captured in
// the log and never affects the primary result.
func notify(what string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("[Service] %s notification failed: %v", what, err)
	}
}
