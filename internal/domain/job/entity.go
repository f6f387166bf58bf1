package job

import "time"

// ExperienceRequirement mirrors the job API's experience descriptor. The
// three fields are mutually exclusive in practice; interpretation priority
// is NoExperienceRequired, then RequiredMonths, then MinimumExperience.
type ExperienceRequirement struct {
	NoExperienceRequired bool
	RequiredMonths       *int
	MinimumExperience    string
}

type Job struct {
	ID             string
	Title          string
	Employer       string
	EmployerSite   *string
	Description    string
	EmploymentType *string
	City           *string
	State          *string
	Country        *string
	ApplyLink      *string
	SalaryMin      *float64
	SalaryMax      *float64
	SalaryCurrency *string
	SalaryPeriod   *string
	PostedAtUTC    *time.Time
	RequiredSkills []string
	Experience     *ExperienceRequirement
}

// AverageSalary reports the midpoint of the salary bounds. When only one
// bound is present it stands in for the other. ok is false when the job
// carries no salary data at all; such jobs are excluded from salary
// aggregates rather than counted as zero.
func (j Job) AverageSalary() (float64, bool) {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return (*j.SalaryMin + *j.SalaryMax) / 2, true
	case j.SalaryMin != nil:
		return *j.SalaryMin, true
	case j.SalaryMax != nil:
		return *j.SalaryMax, true
	default:
		return 0, false
	}
}

// PostedAt returns the posting time, ok=false when the record has none.
func (j Job) PostedAt() (time.Time, bool) {
	if j.PostedAtUTC == nil || j.PostedAtUTC.IsZero() {
		return time.Time{}, false
	}
	return *j.PostedAtUTC, true
}

// HasValidPostingDate reports whether the posting date is plausible.
// Upstream data occasionally carries epoch-era timestamps; anything dated
// more than 5 years before now's year is excluded from date-based
// aggregates.
func (j Job) HasValidPostingDate(now time.Time) bool {
	t, ok := j.PostedAt()
	if !ok {
		return false
	}
	return t.Year() >= now.Year()-5
}
