// Package logrank parses security log lines and ranks them.
//
// Lines have the shape
//
//	2024-03-01 14:02:11 ERROR db timeout 1500ms
//
// where the trailing duration is optional. RankByTime and RankBySeverity use
// sorting.MergeSortFunc with a total order (primary key, then the other of
// time and severity, then the raw line); FlagSlow uses sorting.QuickSortFunc
// and reports the slowest tenth of the timed entries.
package logrank
