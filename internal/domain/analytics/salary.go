package analytics

import (
	"math"

	"job-insight/internal/domain/job"
)

// salaryBands are the fixed chart buckets. Each band is half-open: a job
// whose average salary lands exactly on an upper bound belongs to the next
// band up.
var salaryBands = []struct {
	label string
	upper float64 // exclusive; 0 means unbounded
}{
	{"< $50k", 50000},
	{"$50k - $75k", 75000},
	{"$75k - $100k", 100000},
	{"$100k - $125k", 125000},
	{"$125k - $150k", 150000},
	{"> $150k", 0},
}

// SalaryRanges buckets jobs by average salary into the six fixed bands.
// Jobs without any salary bound are skipped entirely. All six bands are
// always returned, zero counts included; presentation layers may drop the
// empty ones.
func SalaryRanges(jobs []job.Job) []Bucket {
	out := make([]Bucket, len(salaryBands))
	for i, b := range salaryBands {
		out[i] = Bucket{Label: b.label}
	}

	for _, j := range jobs {
		avg, ok := j.AverageSalary()
		if !ok {
			continue
		}
		for i, b := range salaryBands {
			if b.upper == 0 || avg < b.upper {
				out[i].Count++
				break
			}
		}
	}
	return out
}

// AverageSalary is the rounded mean of per-job average salaries across
// jobs carrying at least one salary bound, 0 when none qualify.
func AverageSalary(jobs []job.Job) int {
	var total float64
	n := 0
	for _, j := range jobs {
		avg, ok := j.AverageSalary()
		if !ok {
			continue
		}
		total += avg
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(total / float64(n)))
}
