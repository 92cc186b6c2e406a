package logrank

import (
	"cmp"
	"strings"

	"github.com/katalvlaran/cerberon/sorting"
)

// SlowFraction is the share of entries, by descending response time,
// reported as slow by FlagSlow.
const SlowFraction = 0.10

// RankByTime orders entries by time of day, then severity, then raw line.
func RankByTime(entries []Entry, opts ...sorting.Option[Entry]) []Entry {
	return sorting.MergeSortFunc(entries, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.TimeOfDay, b.TimeOfDay),
			cmp.Compare(a.Severity, b.Severity),
			strings.Compare(a.Line, b.Line),
		)
	}, opts...)
}

// RankBySeverity orders entries from INFO to CRITICAL, then by time of day,
// then by raw line.
func RankBySeverity(entries []Entry, opts ...sorting.Option[Entry]) []Entry {
	return sorting.MergeSortFunc(entries, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Severity, b.Severity),
			cmp.Compare(a.TimeOfDay, b.TimeOfDay),
			strings.Compare(a.Line, b.Line),
		)
	}, opts...)
}

// FlagSlow sorts the entries that carry a response time in ascending order
// (equal times by raw line) and splits off the slowest SlowFraction as Slow. The split index is
// floor(0.9·n), so fewer than ten entries may leave Slow with a single
// element, and an empty input leaves every slice empty.
func FlagSlow(entries []Entry, opts ...sorting.Option[Entry]) SlowReport {
	timed := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.HasResponseTime {
			timed = append(timed, e)
		}
	}

	sorted := sorting.QuickSortFunc(timed, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.ResponseTime, b.ResponseTime), strings.Compare(a.Line, b.Line))
	}, opts...)
	cut := int((1 - SlowFraction) * float64(len(sorted)))

	return SlowReport{
		Sorted: sorted,
		Normal: sorted[:cut:cut],
		Slow:   sorted[cut:],
	}
}
