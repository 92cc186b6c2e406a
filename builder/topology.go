// File: topology.go
// Role: Fixed and random topologies. Nodes are numbered 1..n.
// Determinism:
//   - Edge emission order is documented per constructor.

package builder

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// Path emits 1→2→…→n (n ≥ 2).
func Path(n int) Constructor {
	return func(d *draft, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodPath, n, ErrTooFewVertices)
		}
		d.nodes(n, cfg)
		for i := 1; i < n; i++ {
			d.edge(i, i+1, cfg)
		}
		return nil
	}
}

// Cycle emits 1→2→…→n→1 (n ≥ 3).
func Cycle(n int) Constructor {
	return func(d *draft, cfg config) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d < 3: %w", methodCycle, n, ErrTooFewVertices)
		}
		d.nodes(n, cfg)
		for i := 1; i < n; i++ {
			d.edge(i, i+1, cfg)
		}
		d.edge(n, 1, cfg)
		return nil
	}
}

// Star emits hub 1→i for i = 2..n (n ≥ 2).
func Star(n int) Constructor {
	return func(d *draft, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodStar, n, ErrTooFewVertices)
		}
		d.nodes(n, cfg)
		for i := 2; i <= n; i++ {
			d.edge(1, i, cfg)
		}
		return nil
	}
}

// Complete emits one edge i→j for every pair i < j, row by row (n ≥ 1).
// Build the description undirected for a full mesh.
func Complete(n int) Constructor {
	return func(d *draft, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewVertices)
		}
		d.nodes(n, cfg)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				d.edge(i, j, cfg)
			}
		}
		return nil
	}
}

// Grid emits a rows×cols 4-neighborhood lattice. Node (r, c) with zero-based
// coordinates has ID r*cols+c+1; each node emits its right then its down edge.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		d.nodes(rows*cols, cfg)
		id := func(r, c int) int { return r*cols + c + 1 }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.edge(id(r, c), id(r, c+1), cfg)
				}
				if r+1 < rows {
					d.edge(id(r, c), id(r+1, c), cfg)
				}
			}
		}
		return nil
	}
}

// RandomSparse emits each ordered pair i→j (i ≠ j) with probability p,
// scanning i then j ascending. p of 0 or 1 needs no RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		d.nodes(n, cfg)
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				if i == j {
					continue
				}
				switch {
				case p == 0:
				case p == 1 || cfg.rng.Float64() < p:
					d.edge(i, j, cfg)
				}
			}
		}
		return nil
	}
}
