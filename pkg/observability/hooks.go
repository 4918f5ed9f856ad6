// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about route runs: loading the lookup table, evaluating
// permutations, and writing outputs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface per event category
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// Hooks are registered by main, not by libraries, so the core packages stay
// free of observability frameworks and import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRunHooks(&myRunHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Run().OnEvaluateStart(ctx, intermediates, total)
//	// ... enumerate routes ...
//	observability.Run().OnEvaluateComplete(ctx, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RunHooks receives events from the route pipeline.
type RunHooks interface {
	// OnLoad records that a lookup table of the given size was loaded.
	OnLoad(ctx context.Context, source string, locations int, duration time.Duration, err error)

	// Evaluate events. total is the expected number of routes (N!).
	OnEvaluateStart(ctx context.Context, intermediates int, total uint64)
	OnEvaluateComplete(ctx context.Context, rows uint64, duration time.Duration, err error)

	// OnWrite records an output artifact (route table, summary, diagram).
	OnWrite(ctx context.Context, kind, path string, err error)
}

// NoopRunHooks is a no-op implementation of RunHooks.
type NoopRunHooks struct{}

func (NoopRunHooks) OnLoad(context.Context, string, int, time.Duration, error)        {}
func (NoopRunHooks) OnEvaluateStart(context.Context, int, uint64)                     {}
func (NoopRunHooks) OnEvaluateComplete(context.Context, uint64, time.Duration, error) {}
func (NoopRunHooks) OnWrite(context.Context, string, string, error)                   {}

var (
	runHooks RunHooks = NoopRunHooks{}
	hooksMu  sync.RWMutex
)

// SetRunHooks registers custom run hooks.
// This should be called once at application startup before any run starts.
// A nil argument is ignored.
func SetRunHooks(h RunHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		runHooks = h
	}
}

// Run returns the registered run hooks.
func Run() RunHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return runHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	runHooks = NoopRunHooks{}
}
