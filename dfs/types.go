// Package dfs defines types and options for depth-first path search,
// including cancellation, a pre-order hook and depth limiting.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cerberon/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Path.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("dfs: invalid option")
)

// Option configures optional behavior of DFS traversal.
// Use with Path(g, start, end, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered
	// (pre-order), with its depth along the current path.
	// Returning an error aborts the search with that error.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops descending past paths of this many edges.
	// A value of 0 disables the limit (same meaning as in package bfs).
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no hook and no
// depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth bounds the number of edges of any explored path.
//
//	limit > 0: limit to depth limit
//	limit == 0: no depth limit
//	limit < 0: invalid option → ErrOptionViolation
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}
