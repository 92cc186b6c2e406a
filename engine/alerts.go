package engine

import (
	"context"
	"time"

	"github.com/katalvlaran/cerberon/alerttree"
)

// TraceAlerts lists the alerts of tree in inorder, preorder, postorder and
// breadth-first order.
func (e *Engine) TraceAlerts(ctx context.Context, tree alerttree.Node) (t alerttree.Traversals, err error) {
	defer func(start time.Time) { e.observe(OpTraceAlerts, start, resultOf(err), err) }(time.Now())

	return alerttree.Analyze(tree, alerttree.WithContext(ctx))
}
