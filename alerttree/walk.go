// File: walk.go
// Role: Depth-first and breadth-first orders over a Node tree.
// Determinism:
//   - Children are visited in document order.

package alerttree

import "fmt"

// walker holds the state of one traversal.
type walker struct {
	opts Options
	out  []string
}

// Walk returns the node names of root in the given order.
//
// Errors: ErrUnknownOrder, ErrOptionViolation, an OnVisit error, or the
// context error on cancellation.
func Walk(root Node, order Order, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{opts: o}
	var err error
	switch order {
	case InOrder:
		err = w.inorder(root, 0)
	case PreOrder:
		err = w.preorder(root, 0)
	case PostOrder:
		err = w.postorder(root, 0)
	case BreadthFirst:
		err = w.breadthFirst(root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
	if err != nil {
		return nil, err
	}

	return w.out, nil
}

// Analyze runs every Order over root.
func Analyze(root Node, opts ...Option) (Traversals, error) {
	var t Traversals
	for _, order := range Orders {
		names, err := Walk(root, order, opts...)
		if err != nil {
			return Traversals{}, fmt.Errorf("%s: %w", order, err)
		}
		switch order {
		case InOrder:
			t.InOrder = names
		case PreOrder:
			t.PreOrder = names
		case PostOrder:
			t.PostOrder = names
		case BreadthFirst:
			t.BFS = names
		}
	}
	return t, nil
}

// pruned reports whether depth lies beyond MaxDepth.
func (w *walker) pruned(depth int) bool {
	return w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth
}

// emit appends n after the cancellation check and the hook.
func (w *walker) emit(n Node, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n.Name, depth); err != nil {
			return fmt.Errorf("alerttree: OnVisit hook for %q: %w", n.Name, err)
		}
	}
	w.out = append(w.out, n.Name)
	return nil
}

// inorder: first child subtree, node, remaining children.
func (w *walker) inorder(n Node, depth int) error {
	if w.pruned(depth) {
		return nil
	}
	if len(n.Children) > 0 {
		if err := w.inorder(n.Children[0], depth+1); err != nil {
			return err
		}
	}
	if err := w.emit(n, depth); err != nil {
		return err
	}
	for i := 1; i < len(n.Children); i++ {
		if err := w.inorder(n.Children[i], depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) preorder(n Node, depth int) error {
	if w.pruned(depth) {
		return nil
	}
	if err := w.emit(n, depth); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := w.preorder(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) postorder(n Node, depth int) error {
	if w.pruned(depth) {
		return nil
	}
	for _, c := range n.Children {
		if err := w.postorder(c, depth+1); err != nil {
			return err
		}
	}
	return w.emit(n, depth)
}

type queued struct {
	node  Node
	depth int
}

func (w *walker) breadthFirst(root Node) error {
	queue := []queued{{node: root}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if err := w.emit(cur.node, cur.depth); err != nil {
			return err
		}
		if w.pruned(cur.depth + 1) {
			continue
		}
		for _, c := range cur.node.Children {
			queue = append(queue, queued{node: c, depth: cur.depth + 1})
		}
	}
	return nil
}
