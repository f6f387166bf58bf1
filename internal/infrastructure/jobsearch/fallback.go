package jobsearch

import (
	"time"

	"job-insight/internal/domain/job"
)

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }

type fallbackSeed struct {
	id       string
	employer string
	site     string
	title    string
	desc     string
	city     string
	state    string
	salMin   float64
	salMax   float64
	daysAgo  int
}

var fallbackSeeds = []fallbackSeed{
	{
		id: "fallback-1", employer: "Tech Solutions Inc.", site: "https://techsolutions.example.com",
		title: "Senior Frontend Developer",
		desc:  "We are looking for a skilled Frontend Developer with experience in React, TypeScript, and modern web technologies.",
		city:  "San Francisco", state: "CA", salMin: 120000, salMax: 150000, daysAgo: 3,
	},
	{
		id: "fallback-2", employer: "Data Insights Corp", site: "https://datainsights.example.com",
		title: "Data Engineer",
		desc:  "Join our team as a Data Engineer to build scalable data pipelines and infrastructure.",
		city:  "New York", state: "NY", salMin: 130000, salMax: 160000, daysAgo: 5,
	},
	{
		id: "fallback-3", employer: "Cloud Systems LLC", site: "https://cloudsystems.example.com",
		title: "DevOps Engineer",
		desc:  "Looking for a DevOps Engineer to help automate our infrastructure and deployment processes.",
		city:  "Austin", state: "TX", salMin: 125000, salMax: 155000, daysAgo: 2,
	},
	{
		id: "fallback-4", employer: "Mobile Innovations", site: "https://mobileinnovations.example.com",
		title: "Mobile Developer",
		desc:  "Join our team to build cutting-edge mobile applications for iOS and Android.",
		city:  "Seattle", state: "WA", salMin: 115000, salMax: 145000, daysAgo: 7,
	},
	{
		id: "fallback-5", employer: "AI Research Group", site: "https://airesearch.example.com",
		title: "Machine Learning Engineer",
		desc:  "We're seeking a Machine Learning Engineer to develop and deploy AI models for our products.",
		city:  "Boston", state: "MA", salMin: 140000, salMax: 180000, daysAgo: 1,
	},
	{
		id: "fallback-6", employer: "Security Solutions", site: "https://securitysolutions.example.com",
		title: "Cybersecurity Analyst",
		desc:  "Join our team to protect our systems and data from security threats.",
		city:  "Chicago", state: "IL", salMin: 110000, salMax: 140000, daysAgo: 4,
	},
	{
		id: "fallback-7", employer: "Web Platforms Inc", site: "https://webplatforms.example.com",
		title: "Backend Developer",
		desc:  "Looking for a Backend Developer with experience in Node.js, Express, and databases.",
		city:  "Denver", state: "CO", salMin: 115000, salMax: 145000, daysAgo: 6,
	},
	{
		id: "fallback-8", employer: "Product Design Co", site: "https://productdesign.example.com",
		title: "UX/UI Designer",
		desc:  "Join our design team to create beautiful and intuitive user experiences.",
		city:  "Portland", state: "OR", salMin: 105000, salMax: 135000, daysAgo: 8,
	},
}

// FallbackJobs is the fixed sample set served when the upstream API is
// unavailable, rate limited, or returns nothing. Posting dates are
// derived from now so recency charts stay meaningful.
func FallbackJobs(now time.Time) []job.Job {
	out := make([]job.Job, 0, len(fallbackSeeds))
	for _, s := range fallbackSeeds {
		posted := now.UTC().AddDate(0, 0, -s.daysAgo)
		out = append(out, job.Job{
			ID:             s.id,
			Title:          s.title,
			Employer:       s.employer,
			EmployerSite:   strPtr(s.site),
			Description:    s.desc,
			EmploymentType: strPtr("FULLTIME"),
			City:           strPtr(s.city),
			State:          strPtr(s.state),
			Country:        strPtr("United States"),
			SalaryMin:      f64Ptr(s.salMin),
			SalaryMax:      f64Ptr(s.salMax),
			SalaryCurrency: strPtr("USD"),
			SalaryPeriod:   strPtr("YEAR"),
			PostedAtUTC:    &posted,
		})
	}
	return out
}
