package sorting

import "cmp"

// Probe records one comparison of a search. For binary search Low and High
// bound the window being searched; for linear search both equal Index.
type Probe[T any] struct {
	Low   int
	High  int
	Index int
	Value T
}

// SearchResult is the outcome of BinarySearch or LinearSearch.
// Index is -1 when the target is absent.
type SearchResult[T any] struct {
	Found  bool
	Index  int
	Probes []Probe[T]
}

// BinarySearch looks for target in sorted (ascending) and records every probe.
//
// Complexity: O(log n).
func BinarySearch[T cmp.Ordered](sorted []T, target T) SearchResult[T] {
	res := SearchResult[T]{Index: -1}
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		res.Probes = append(res.Probes, Probe[T]{Low: lo, High: hi, Index: mid, Value: sorted[mid]})
		switch c := cmp.Compare(sorted[mid], target); {
		case c == 0:
			res.Found, res.Index = true, mid
			return res
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return res
}

// LinearSearch scans seq front to back for target and records every probe.
// seq need not be sorted.
//
// Complexity: O(n).
func LinearSearch[T comparable](seq []T, target T) SearchResult[T] {
	res := SearchResult[T]{Index: -1}
	for i, v := range seq {
		res.Probes = append(res.Probes, Probe[T]{Low: i, High: i, Index: i, Value: v})
		if v == target {
			res.Found, res.Index = true, i
			return res
		}
	}

	return res
}
