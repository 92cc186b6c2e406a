// File: types.go
// Role: Node (decoded alert tree), Order, Traversals, options and sentinel errors.

package alerttree

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrMalformed indicates a tree node without a "node" or "root" name.
	ErrMalformed = errors.New("alerttree: malformed tree")

	// ErrUnknownOrder is returned by Walk for an unsupported Order.
	ErrUnknownOrder = errors.New("alerttree: unknown traversal order")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("alerttree: invalid option")
)

// Node is one alert and the alerts it escalates to.
type Node struct {
	Name     string `yaml:"node"`
	Children []Node `yaml:"children,omitempty"`
}

// rawNode accepts either key for the name.
type rawNode struct {
	Node     *string `yaml:"node"`
	Root     *string `yaml:"root"`
	Children []Node  `yaml:"children"`
}

// UnmarshalYAML decodes {node|root, children}.
func (n *Node) UnmarshalYAML(v *yaml.Node) error {
	var raw rawNode
	if err := v.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.Node != nil:
		n.Name = *raw.Node
	case raw.Root != nil:
		n.Name = *raw.Root
	default:
		return fmt.Errorf("%w: line %d: missing node or root", ErrMalformed, v.Line)
	}
	n.Children = raw.Children
	return nil
}

// Order selects a traversal.
type Order string

const (
	InOrder      Order = "inorder"
	PreOrder     Order = "preorder"
	PostOrder    Order = "postorder"
	BreadthFirst Order = "bfs"
)

// Orders lists every supported Order.
var Orders = []Order{InOrder, PreOrder, PostOrder, BreadthFirst}

// Traversals holds the four orders of one tree.
type Traversals struct {
	InOrder   []string `yaml:"inorder"`
	PreOrder  []string `yaml:"preorder"`
	PostOrder []string `yaml:"postorder"`
	BFS       []string `yaml:"bfs"`
}

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per visited node.
	Ctx context.Context

	// OnVisit is called for every node as it is emitted, with its depth
	// (root = 0). Returning an error aborts the walk with that error.
	OnVisit func(name string, depth int) error

	// MaxDepth, if > 0, skips nodes deeper than this. 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context, no hook and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth bounds the depth of emitted nodes. Negative values are
// recorded and surface as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
