// File: api.go
// Role: Build orchestrates constructors over one shared accumulator.
// Determinism:
//   - Nodes appear in first-declaration order; edges in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cerberon/core"
)

// Constructor adds one topology to the description under construction.
// Constructors validate their parameters first and never panic.
type Constructor func(d *draft, cfg config) error

// draft accumulates nodes and edges; a node ID is declared once.
type draft struct {
	desc     core.Description
	declared map[core.NodeID]struct{}
}

func (d *draft) node(i int, cfg config) {
	id := core.NodeID(i)
	if _, ok := d.declared[id]; ok {
		return
	}
	d.declared[id] = struct{}{}
	d.desc.Nodes = append(d.desc.Nodes, core.NewNodeSpec(id, cfg.labelFn(i), cfg.group))
}

func (d *draft) nodes(n int, cfg config) {
	for i := 1; i <= n; i++ {
		d.node(i, cfg)
	}
}

func (d *draft) edge(u, v int, cfg config) {
	d.desc.Edges = append(d.desc.Edges, core.NewEdgeSpec(core.NodeID(u), core.NodeID(v), cfg.weight(), ""))
}

// Build resolves opts and applies cons in order.
//
// Errors: constructor errors are wrapped as "Build: %w"; a nil constructor
// yields ErrConstructFailed.
func Build(opts []Option, cons ...Constructor) (core.Description, error) {
	cfg := newConfig(opts...)
	d := &draft{declared: make(map[core.NodeID]struct{})}

	for i, fn := range cons {
		if fn == nil {
			return core.Description{}, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return core.Description{}, fmt.Errorf("Build: %w", err)
		}
	}

	return d.desc, nil
}
