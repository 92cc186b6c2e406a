package sorting

import "cmp"

// MergeSort returns a new slice holding seq ordered by key. seq is not
// modified.
//
// The sort is stable: elements with equal keys keep their input order.
// Keys are compared with cmp.Compare, so NaN sorts before every other float.
//
// Complexity: O(n log n) time, O(n log n) allocations.
func MergeSort[T any, K cmp.Ordered](seq []T, key func(T) K, opts ...Option[T]) []T {
	return MergeSortFunc(seq, byKey(key), opts...)
}

// MergeSortFunc is MergeSort with a three-way comparison (negative, zero or
// positive, as cmp.Compare) instead of a key, for composite orders.
func MergeSortFunc[T any](seq []T, compare func(a, b T) int, opts ...Option[T]) []T {
	o := resolve(opts)
	return mergeSort(clone(seq), compare, o, 0)
}

func mergeSort[T any](arr []T, compare func(a, b T) int, o options[T], level int) []T {
	if len(arr) <= 1 {
		return arr
	}

	mid := len(arr) / 2
	left, right := clone(arr[:mid]), clone(arr[mid:])
	o.emit(Step[T]{Kind: StepSplit, Level: level, Left: clone(left), Right: clone(right)})

	left = mergeSort(left, compare, o, level+1)
	right = mergeSort(right, compare, o, level+1)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// <= keeps the left element on ties
		if compare(left[i], right[j]) <= 0 {
			arr[k] = left[i]
			i++
		} else {
			arr[k] = right[j]
			j++
		}
		k++
	}
	k += copy(arr[k:], left[i:])
	copy(arr[k:], right[j:])

	o.emit(Step[T]{Kind: StepMerge, Level: level, Left: clone(left), Right: clone(right), Result: clone(arr)})

	return arr
}
