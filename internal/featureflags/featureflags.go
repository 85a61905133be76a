package featureflags

import (
	"context"
	"fmt"

	"github.com/rollout/rox-go/v5/server"
)

// Container holds the flags the storefront reads at runtime. Defaults
// are seeded from configuration; when a Rollout API key is configured
// the values can be flipped remotely without a restart.
type Container struct {
	// BackendEnabled gates the remote backend path; when off, every
	// non-payment call goes straight to the local store.
	BackendEnabled server.RoxFlag

	// DebugLog enables diagnostic logging of probe and fallback errors
	DebugLog server.RoxFlag
}

var (
	rox    *server.Rox
	values *Container
)

// Init registers the flag container and, when apiKey is non-empty,
// connects to Rollout. Callers should treat a returned error as
// non-fatal: the flags keep serving their defaults.
func Init(ctx context.Context, apiKey string, backendEnabled, debugLog bool) error {
	values = &Container{
		BackendEnabled: server.NewRoxFlag(backendEnabled),
		DebugLog:       server.NewRoxFlag(debugLog),
	}

	if apiKey == "" {
		return nil
	}

	rox = server.NewRox()
	rox.Register("storefront", values)

	done := rox.Setup(apiKey, server.NewRoxOptions(server.RoxOptionsBuilder{}))
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("feature flag setup: %w", ctx.Err())
	}
}

// Values returns the flag container. Init must have been called first.
func Values() *Container {
	return values
}

// Shutdown releases the Rollout connection if one was established
func Shutdown() {
	if rox != nil {
		<-rox.Shutdown()
		rox = nil
	}
}
