package analytics

import (
	"strings"

	"job-insight/internal/domain/job"
)

const (
	WorkplaceRemote       = "Remote"
	WorkplaceHybrid       = "Hybrid"
	WorkplaceOnsite       = "Onsite"
	WorkplaceNotSpecified = "Not Specified"
)

// ClassifyWorkplace decides Remote / Hybrid / Onsite from title and
// description wording. Checks run in priority order and the first match
// wins, so a posting mentioning both "remote" and "hybrid" counts as
// Remote.
func ClassifyWorkplace(j job.Job) string {
	title := strings.ToLower(j.Title)
	desc := strings.ToLower(j.Description)

	switch {
	case strings.Contains(title, "remote") ||
		containsAny(desc, "remote work", "work from home"):
		return WorkplaceRemote
	case strings.Contains(desc, "hybrid"):
		return WorkplaceHybrid
	case containsAny(desc, "onsite", "on-site", "in office"):
		return WorkplaceOnsite
	default:
		return WorkplaceNotSpecified
	}
}

// RemoteVsOnsite counts jobs per workplace type, keeping only non-zero
// buckets in Remote, Onsite, Hybrid, Not Specified order.
func RemoteVsOnsite(jobs []job.Job) []Bucket {
	counts := map[string]int{}
	for _, j := range jobs {
		counts[ClassifyWorkplace(j)]++
	}

	out := make([]Bucket, 0, 4)
	for _, t := range []string{WorkplaceRemote, WorkplaceOnsite, WorkplaceHybrid, WorkplaceNotSpecified} {
		if counts[t] > 0 {
			out = append(out, Bucket{Label: t, Count: counts[t]})
		}
	}
	return out
}
