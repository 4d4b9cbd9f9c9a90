package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layouttree/pkg/observability"
)

// logHooks reports tree and render events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.TreeHooks   = logHooks{}
	_ observability.RenderHooks = logHooks{}
)

func (h logHooks) OnAttach(parent, child string, depth int) {
	h.logger.Debug("attach", "parent", parent, "child", child, "depth", depth)
}

func (h logHooks) OnShift(node string, dx, dy int, visited int) {
	h.logger.Debug("shift", "node", node, "dx", dx, "dy", dy, "visited", visited)
}

func (h logHooks) OnLookup(key string, found bool, visited int) {
	h.logger.Debug("lookup", "key", key, "found", found, "visited", visited)
}

func (h logHooks) OnDeleteBranch(node string, released int) {
	h.logger.Debug("delete branch", "node", node, "released", released)
}

func (h logHooks) OnRenderStart(_ context.Context, format string, nodeCount int) {
	h.logger.Debug("render start", "format", format, "nodes", nodeCount)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "bytes", size, "took", d.Round(time.Microsecond))
}

// registerHooks routes observability events to logger.
func registerHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetTreeHooks(h)
	observability.SetRenderHooks(h)
}
