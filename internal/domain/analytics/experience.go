package analytics

import (
	"strings"

	"job-insight/internal/domain/job"
)

const (
	LevelNoExperience = "No Experience"
	LevelEntry        = "Entry Level"
	LevelMid          = "Mid Level"
	LevelSenior       = "Senior Level"
	LevelNotSpecified = "Not Specified"
)

// ClassifyExperience maps a job's experience requirement to a level
// label. The descriptor fields are checked in priority order: explicit
// no-experience flag, then required months, then the free-text minimum
// experience phrase.
func ClassifyExperience(j job.Job) string {
	exp := j.Experience
	if exp == nil {
		return LevelNotSpecified
	}

	if exp.NoExperienceRequired {
		return LevelNoExperience
	}

	if exp.RequiredMonths != nil {
		months := *exp.RequiredMonths
		switch {
		case months <= 12:
			return LevelEntry
		case months <= 36:
			return LevelMid
		default:
			return LevelSenior
		}
	}

	if s := strings.ToLower(exp.MinimumExperience); s != "" {
		switch {
		case containsAny(s, "no experience", "entry"):
			return LevelEntry
		case containsAny(s, "mid", "intermediate"):
			return LevelMid
		case containsAny(s, "senior", "experienced"):
			return LevelSenior
		}
	}

	return LevelNotSpecified
}

// ExperienceLevels counts jobs per experience level, returning only
// non-zero buckets sorted descending by count. Ties keep the canonical
// junior-to-senior order.
func ExperienceLevels(jobs []job.Job) []Bucket {
	c := newCounter()
	for _, lvl := range []string{LevelNoExperience, LevelEntry, LevelMid, LevelSenior, LevelNotSpecified} {
		if _, ok := c.counts[lvl]; !ok {
			c.counts[lvl] = 0
			c.order = append(c.order, lvl)
		}
	}
	for _, j := range jobs {
		c.add(ClassifyExperience(j))
	}

	all := c.sortedDesc()
	out := make([]Bucket, 0, len(all))
	for _, b := range all {
		if b.Count > 0 {
			out = append(out, b)
		}
	}
	return out
}
