package engine

import (
	"io"
	"time"

	"github.com/katalvlaran/cerberon/logrank"
	"github.com/katalvlaran/cerberon/sorting"
)

// LogRanking is the log analyzer output.
type LogRanking struct {
	ByTime       []logrank.Entry `yaml:"sorted_by_time"`
	BySeverity   []logrank.Entry `yaml:"sorted_by_severity"`
	TimeSort     time.Duration   `yaml:"time_sort_duration"`
	SeveritySort time.Duration   `yaml:"severity_sort_duration"`
}

// SearchOutcome summarises one search strategy.
type SearchOutcome struct {
	Found    bool          `yaml:"found"`
	Index    int           `yaml:"index"`
	Probes   int           `yaml:"steps"`
	Duration time.Duration `yaml:"time"`
}

// SearchComparison contrasts binary and linear search on the same input.
type SearchComparison struct {
	Binary SearchOutcome `yaml:"binary"`
	Linear SearchOutcome `yaml:"linear"`
}

// RankLogs parses r and orders its entries by time of day and by severity.
func (e *Engine) RankLogs(r io.Reader) (rank LogRanking, err error) {
	defer func(t time.Time) { e.observe(OpRankLogs, t, resultOf(err), err) }(time.Now())

	entries, err := logrank.Parse(r)
	if err != nil {
		return LogRanking{}, err
	}

	t := time.Now()
	rank.ByTime = logrank.RankByTime(entries)
	rank.TimeSort = time.Since(t)

	t = time.Now()
	rank.BySeverity = logrank.RankBySeverity(entries)
	rank.SeveritySort = time.Since(t)

	return rank, nil
}

// FlagSlowLogs parses r and splits off the slowest tenth of timed entries.
func (e *Engine) FlagSlowLogs(r io.Reader) (rep logrank.SlowReport, err error) {
	defer func(t time.Time) { e.observe(OpFlagSlowLogs, t, resultOf(err), err) }(time.Now())

	entries, err := logrank.Parse(r)
	if err != nil {
		return logrank.SlowReport{}, err
	}

	return logrank.FlagSlow(entries), nil
}

// CompareSearch sorts candidates and looks for target with both binary and
// linear search.
func (e *Engine) CompareSearch(candidates []string, target string) SearchComparison {
	start := time.Now()
	sorted := sorting.MergeSort(candidates, sorting.Identity[string])

	t := time.Now()
	b := sorting.BinarySearch(sorted, target)
	bd := time.Since(t)

	t = time.Now()
	l := sorting.LinearSearch(sorted, target)
	ld := time.Since(t)

	e.observe(OpCompareSearch, start, resultOK, nil)

	return SearchComparison{
		Binary: SearchOutcome{Found: b.Found, Index: b.Index, Probes: len(b.Probes), Duration: bd},
		Linear: SearchOutcome{Found: l.Found, Index: l.Index, Probes: len(l.Probes), Duration: ld},
	}
}
