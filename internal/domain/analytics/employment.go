package analytics

import "job-insight/internal/domain/job"

const EmploymentTypeNotSpecified = "Not specified"

// EmploymentTypes groups jobs by their literal employment-type string
// ("FULLTIME", "CONTRACTOR", ...), counting records without one under
// "Not specified". Result is sorted descending by count.
func EmploymentTypes(jobs []job.Job) []Bucket {
	c := newCounter()
	for _, j := range jobs {
		t := deref(j.EmploymentType)
		if t == "" {
			t = EmploymentTypeNotSpecified
		}
		c.add(t)
	}
	return c.sortedDesc()
}
