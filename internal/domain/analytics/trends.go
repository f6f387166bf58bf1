package analytics

import (
	"time"

	"job-insight/internal/domain/job"
)

const (
	// DefaultTrendDays is the trailing window of the posting-trend
	// histogram.
	DefaultTrendDays = 30
	// DefaultRecentDays is the trailing window of the recent-postings
	// filter.
	DefaultRecentDays = 7
)

// TrendPoint is one calendar day of the posting histogram.
type TrendPoint struct {
	Date  string // YYYY-MM-DD, UTC
	Count int
}

// PostingTrends builds a per-day posting histogram for the trailing window
// of days ending at now, oldest day first. Every day appears, zero counts
// included. Jobs with implausible posting dates are not counted.
func PostingTrends(jobs []job.Job, now time.Time, days int) []TrendPoint {
	if days <= 0 {
		days = DefaultTrendDays
	}

	now = now.UTC()
	out := make([]TrendPoint, 0, days)
	index := make(map[string]int, days)
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i).Format(time.DateOnly)
		index[d] = len(out)
		out = append(out, TrendPoint{Date: d})
	}

	for _, j := range jobs {
		if !j.HasValidPostingDate(now) {
			continue
		}
		t, _ := j.PostedAt()
		if i, ok := index[t.UTC().Format(time.DateOnly)]; ok {
			out[i].Count++
		}
	}
	return out
}

// RecentPostings returns the jobs posted within the trailing window of
// days ending at now, preserving input order. The implausible-date rule
// applies here too: a record dated more than 5 years back never counts as
// recent regardless of window.
func RecentPostings(jobs []job.Job, now time.Time, days int) []job.Job {
	if days <= 0 {
		days = DefaultRecentDays
	}
	cutoff := now.AddDate(0, 0, -days)

	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.HasValidPostingDate(now) {
			continue
		}
		t, _ := j.PostedAt()
		if !t.Before(cutoff) {
			out = append(out, j)
		}
	}
	return out
}
