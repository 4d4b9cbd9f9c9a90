// Package observability provides hooks for metrics, tracing, and logging.
//
// The layout tree and the renderers report what they do through small hook
// interfaces instead of importing a metrics or tracing backend. Consumers
// register implementations at startup; until then every hook is a no-op.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTreeHooks(&myTreeHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tree().OnAttach(parent.Name(), child.Name(), depth)
//	observability.Render().OnRenderStart(ctx, "svg", nodeCount)
//
// Tree hooks take no context: tree operations are synchronous and never
// block, so there is nothing to cancel or trace across.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Tree Hooks
// =============================================================================

// TreeHooks receives events from layout tree mutations and queries.
type TreeHooks interface {
	// OnAttach records a child attached under parent at the given depth.
	OnAttach(parent, child string, depth int)

	// OnShift records a position delta applied to a branch of visited nodes.
	OnShift(node string, dx, dy int, visited int)

	// OnLookup records a depth-first search over visited nodes.
	OnLookup(key string, found bool, visited int)

	// OnDeleteBranch records reclamation of a branch of released nodes.
	OnDeleteBranch(node string, released int)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the tree renderers.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, nodeCount int)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTreeHooks is a no-op implementation of TreeHooks.
type NoopTreeHooks struct{}

func (NoopTreeHooks) OnAttach(string, string, int)  {}
func (NoopTreeHooks) OnShift(string, int, int, int) {}
func (NoopTreeHooks) OnLookup(string, bool, int)    {}
func (NoopTreeHooks) OnDeleteBranch(string, int)    {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	treeHooks   TreeHooks   = NoopTreeHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetTreeHooks registers custom tree hooks.
// This should be called once at application startup before any tree is built.
func SetTreeHooks(h TreeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		treeHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Tree returns the registered tree hooks.
func Tree() TreeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return treeHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	treeHooks = NoopTreeHooks{}
	renderHooks = NoopRenderHooks{}
}
