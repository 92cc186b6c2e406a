package sorting

import "cmp"

// StepKind names a recorded sorting step.
type StepKind string

const (
	// StepSplit: a merge-sort segment was halved into Left and Right.
	StepSplit StepKind = "split"
	// StepMerge: sorted Left and Right were merged into Result.
	StepMerge StepKind = "merge"
	// StepPartition: a quick-sort segment was bucketed around its pivot.
	StepPartition StepKind = "partition"
	// StepCombine: sorted buckets were concatenated into Result.
	StepCombine StepKind = "combine"
)

// Side tells which quick-sort bucket a segment came from.
type Side string

const (
	SideRoot  Side = "root"
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Step is one entry of a sort trace. Slices are private copies.
//
// Merge sort fills Left/Right (and Result on merge). Quick sort fills
// Side, and either Left/Middle/Right (partition) or Result (combine);
// Middle holds the elements whose key equals the pivot's.
type Step[T any] struct {
	Kind   StepKind
	Level  int
	Side   Side
	Left   []T
	Middle []T
	Right  []T
	Result []T
}

// Option configures a sort.
type Option[T any] func(*options[T])

type options[T any] struct {
	trace func(Step[T])
}

// WithTrace registers fn to receive every split/merge or
// partition/combine step in execution order.
func WithTrace[T any](fn func(Step[T])) Option[T] {
	return func(o *options[T]) { o.trace = fn }
}

func resolve[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options[T]) emit(s Step[T]) {
	if o.trace != nil {
		o.trace(s)
	}
}

// Identity is a key function for sequences of ordered values.
func Identity[T any](v T) T { return v }

func byKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// clone copies s; nil stays nil.
func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
