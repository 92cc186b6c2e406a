package sorting

import "cmp"

// QuickSort returns a new slice holding seq ordered by key. seq is not
// modified.
//
// Each segment is split three ways around the key of its middle element
// (less, equal, greater) and the outer buckets are sorted recursively.
// The sort is NOT stable: this implementation happens to keep equal keys
// in input order, but callers must not rely on it; use MergeSort when
// stability matters.
//
// Complexity: O(n log n) expected, O(n²) worst case.
func QuickSort[T any, K cmp.Ordered](seq []T, key func(T) K, opts ...Option[T]) []T {
	return QuickSortFunc(seq, byKey(key), opts...)
}

// QuickSortFunc is QuickSort with a three-way comparison instead of a key.
func QuickSortFunc[T any](seq []T, compare func(a, b T) int, opts ...Option[T]) []T {
	o := resolve(opts)
	return quickSort(clone(seq), compare, o, 0, SideRoot)
}

func quickSort[T any](arr []T, compare func(a, b T) int, o options[T], level int, side Side) []T {
	if len(arr) <= 1 {
		return arr
	}

	pivot := arr[len(arr)/2]
	var left, middle, right []T
	for _, x := range arr {
		switch c := compare(x, pivot); {
		case c < 0:
			left = append(left, x)
		case c > 0:
			right = append(right, x)
		default:
			middle = append(middle, x)
		}
	}
	o.emit(Step[T]{Kind: StepPartition, Level: level, Side: side,
		Left: clone(left), Middle: clone(middle), Right: clone(right)})

	left = quickSort(left, compare, o, level+1, SideLeft)
	right = quickSort(right, compare, o, level+1, SideRight)

	result := make([]T, 0, len(arr))
	result = append(result, left...)
	result = append(result, middle...)
	result = append(result, right...)
	o.emit(Step[T]{Kind: StepCombine, Level: level, Side: side, Result: clone(result)})

	return result
}
