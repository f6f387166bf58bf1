package dto

import (
	"time"

	"job-insight/internal/domain/job"
)

// JobResponse is the wire shape of one job posting. Optional fields keep
// their pointers so absent upstream data serializes as null rather than
// zero values.
type JobResponse struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"job_title"`
	Employer       string   `json:"employer_name"`
	EmployerSite   *string  `json:"employer_website,omitempty"`
	Description    string   `json:"job_description"`
	EmploymentType *string  `json:"job_employment_type,omitempty"`
	City           *string  `json:"job_city,omitempty"`
	State          *string  `json:"job_state,omitempty"`
	Country        *string  `json:"job_country,omitempty"`
	ApplyLink      *string  `json:"job_apply_link,omitempty"`
	SalaryMin      *float64 `json:"job_salary_min,omitempty"`
	SalaryMax      *float64 `json:"job_salary_max,omitempty"`
	SalaryCurrency *string  `json:"job_salary_currency,omitempty"`
	SalaryPeriod   *string  `json:"job_salary_period,omitempty"`
	PostedAt       string   `json:"job_posted_at_datetime_utc,omitempty"`
	RequiredSkills []string `json:"job_required_skills,omitempty"`
}

func FromJob(j job.Job) JobResponse {
	posted := ""
	if t, ok := j.PostedAt(); ok {
		posted = t.UTC().Format(time.RFC3339)
	}
	return JobResponse{
		JobID:          j.ID,
		Title:          j.Title,
		Employer:       j.Employer,
		EmployerSite:   j.EmployerSite,
		Description:    j.Description,
		EmploymentType: j.EmploymentType,
		City:           j.City,
		State:          j.State,
		Country:        j.Country,
		ApplyLink:      j.ApplyLink,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		SalaryCurrency: j.SalaryCurrency,
		SalaryPeriod:   j.SalaryPeriod,
		PostedAt:       posted,
		RequiredSkills: j.RequiredSkills,
	}
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

// JobSearchResponse wraps the job list with the data-source status so the
// dashboard can surface "using sample data" banners.
type JobSearchResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Count   int           `json:"count"`
	Jobs    []JobResponse `json:"jobs"`
}
