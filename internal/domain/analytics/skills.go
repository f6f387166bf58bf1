package analytics

import "job-insight/internal/domain/job"

// DefaultTopSkills caps the required-skills ranking.
const DefaultTopSkills = 10

// RequiredSkills flattens every job's required-skill list and ranks the
// distinct skill strings by frequency, descending, top 10.
func RequiredSkills(jobs []job.Job) []Bucket {
	c := newCounter()
	for _, j := range jobs {
		for _, s := range j.RequiredSkills {
			if s == "" {
				continue
			}
			c.add(s)
		}
	}
	out := c.sortedDesc()
	if len(out) > DefaultTopSkills {
		out = out[:DefaultTopSkills]
	}
	return out
}
