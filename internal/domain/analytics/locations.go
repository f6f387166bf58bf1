package analytics

import "job-insight/internal/domain/job"

const UnknownLocation = "Unknown"

// DefaultTopLocations is the number of locations returned when the caller
// does not ask for a specific limit.
const DefaultTopLocations = 5

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LocationKey builds the composite display key for a job: "City, State"
// when both are present, otherwise the most specific field available.
func LocationKey(j job.Job) string {
	city := deref(j.City)
	state := deref(j.State)
	switch {
	case city != "" && state != "":
		return city + ", " + state
	case state != "":
		return state
	case city != "":
		return city
	case deref(j.Country) != "":
		return deref(j.Country)
	default:
		return UnknownLocation
	}
}

// TopLocations ranks job locations by posting count, descending, truncated
// to limit (DefaultTopLocations when limit <= 0).
func TopLocations(jobs []job.Job, limit int) []Bucket {
	if limit <= 0 {
		limit = DefaultTopLocations
	}
	c := newCounter()
	for _, j := range jobs {
		c.add(LocationKey(j))
	}
	out := c.sortedDesc()
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
