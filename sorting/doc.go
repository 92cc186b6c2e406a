// Package sorting provides traceable generic sorts and searches.
//
// MergeSort and QuickSort order any slice by a caller-supplied key and
// return a fresh slice. MergeSort is stable; QuickSort makes no stability
// promise. Both accept WithTrace to observe their split/merge or
// partition/combine steps, e.g. for visualisation. MergeSortFunc and
// QuickSortFunc take a three-way comparison for composite orders.
//
// BinarySearch and LinearSearch report every probe they make so the two
// strategies can be compared on the same input.
package sorting
