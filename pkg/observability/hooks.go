// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about label generation.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myGenerationHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generation().OnRenderStart(ctx, format)
//	// ... render ...
//	observability.Generation().OnRenderComplete(ctx, format, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// GenerationHooks receives events from the label generation pipeline.
type GenerationHooks interface {
	// OnGenerateStart fires once per request, after options validation.
	OnGenerateStart(ctx context.Context, labelType string, formats []string)

	// OnRenderStart fires when a format begins rendering.
	OnRenderStart(ctx context.Context, format string)

	// OnRenderComplete fires when a format finishes. size is the artifact
	// byte count, zero on failure.
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)

	// OnGenerateComplete fires once per request with the overall outcome.
	OnGenerateComplete(ctx context.Context, labelType string, rendered, failed int, duration time.Duration, err error)
}

// noopGenerationHooks discards all events.
type noopGenerationHooks struct{}

func (noopGenerationHooks) OnGenerateStart(context.Context, string, []string) {}
func (noopGenerationHooks) OnRenderStart(context.Context, string)             {}
func (noopGenerationHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}
func (noopGenerationHooks) OnGenerateComplete(context.Context, string, int, int, time.Duration, error) {
}

var (
	mu              sync.RWMutex
	generationHooks GenerationHooks = noopGenerationHooks{}
)

// SetGenerationHooks registers the generation hooks implementation.
// Pass nil to restore the no-op default. Call at startup, before any
// generation runs; registration is not synchronized with in-flight runs.
func SetGenerationHooks(h GenerationHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		generationHooks = noopGenerationHooks{}
		return
	}
	generationHooks = h
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	mu.RLock()
	defer mu.RUnlock()
	return generationHooks
}
