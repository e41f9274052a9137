// Package observability provides hooks for metrics, tracing, and logging.
//
// The drawing pipeline reports what it does through a small set of hook
// interfaces. Nothing is recorded by default; embedders register their own
// implementation at startup to forward events to whatever backend they use.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDrawHooks(&myDrawHooks{})
//	    // ... run application
//	}
//
// The pipeline emits events around each stage:
//
//	observability.Draw().OnRenderStart(ctx, title, formats)
//	// ... render ...
//	observability.Draw().OnRenderComplete(ctx, title, formats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Draw Hooks
// =============================================================================

// DrawHooks receives events from the drawing pipeline.
type DrawHooks interface {
	// OnBuild records a finished diagram declaration.
	OnBuild(ctx context.Context, title string, nodes, edges, clusters int)

	// Render events
	OnRenderStart(ctx context.Context, title string, formats []string)
	OnRenderComplete(ctx context.Context, title string, formats []string, duration time.Duration, err error)

	// OnWrite records one output file written to disk.
	OnWrite(ctx context.Context, path string, size int)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopDrawHooks is a no-op implementation of DrawHooks.
type NoopDrawHooks struct{}

func (NoopDrawHooks) OnBuild(context.Context, string, int, int, int)                           {}
func (NoopDrawHooks) OnRenderStart(context.Context, string, []string)                          {}
func (NoopDrawHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {}
func (NoopDrawHooks) OnWrite(context.Context, string, int)                                     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	drawHooks DrawHooks = NoopDrawHooks{}
	hooksMu   sync.RWMutex
)

// SetDrawHooks registers custom draw hooks.
// This should be called once at application startup before any diagram is drawn.
func SetDrawHooks(h DrawHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		drawHooks = h
	}
}

// Draw returns the registered draw hooks.
func Draw() DrawHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return drawHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	drawHooks = NoopDrawHooks{}
}
