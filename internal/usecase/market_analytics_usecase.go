package usecase

import (
	"context"
	"time"

	"job-insight/internal/domain/analytics"
	"job-insight/internal/infrastructure/jobsearch"
)

type MarketSummaryParams struct {
	Search     jobsearch.Params
	Role       string
	TrendDays  int
	RecentDays int
}

// MarketSummary is the full chart payload for one dashboard render:
// every aggregate computed over the (optionally role-filtered) job set.
type MarketSummary struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	TotalJobs      int      `json:"total_jobs"`
	RecentPostings int      `json:"recent_postings"`
	AverageSalary  int      `json:"average_salary"`
	RoleOptions    []string `json:"role_options"`

	TopLocations     []analytics.Bucket     `json:"top_locations"`
	SalaryRanges     []analytics.Bucket     `json:"salary_ranges"`
	EmploymentTypes  []analytics.Bucket     `json:"employment_types"`
	ExperienceLevels []analytics.Bucket     `json:"experience_levels"`
	RemoteVsOnsite   []analytics.Bucket     `json:"remote_vs_onsite"`
	RequiredSkills   []analytics.Bucket     `json:"required_skills"`
	PostingTrends    []analytics.TrendPoint `json:"posting_trends"`
}

type MarketAnalyticsUsecase interface {
	Summary(ctx context.Context, params MarketSummaryParams) (MarketSummary, error)
	RoleOptions(ctx context.Context, params jobsearch.Params) ([]string, error)
}

type MarketAnalytics struct {
	search JobSearchUsecase
	now    func() time.Time
}

func NewMarketAnalyticsUsecase(search JobSearchUsecase) *MarketAnalytics {
	return &MarketAnalytics{search: search, now: time.Now}
}

func (u *MarketAnalytics) Summary(ctx context.Context, params MarketSummaryParams) (MarketSummary, error) {
	res, err := u.search.Search(ctx, params.Search)
	if err != nil {
		return MarketSummary{}, err
	}

	now := u.now()

	// Role options always come from the unfiltered set so the dropdown
	// doesn't collapse to the selected role.
	options := analytics.RoleOptions(res.Jobs)
	jobs := analytics.FilterByRole(res.Jobs, params.Role)

	return MarketSummary{
		Status:  res.Status,
		Message: res.Message,

		TotalJobs:      len(jobs),
		RecentPostings: len(analytics.RecentPostings(jobs, now, params.RecentDays)),
		AverageSalary:  analytics.AverageSalary(jobs),
		RoleOptions:    options,

		TopLocations:     analytics.TopLocations(jobs, 0),
		SalaryRanges:     analytics.SalaryRanges(jobs),
		EmploymentTypes:  analytics.EmploymentTypes(jobs),
		ExperienceLevels: analytics.ExperienceLevels(jobs),
		RemoteVsOnsite:   analytics.RemoteVsOnsite(jobs),
		RequiredSkills:   analytics.RequiredSkills(jobs),
		PostingTrends:    analytics.PostingTrends(jobs, now, params.TrendDays),
	}, nil
}

func (u *MarketAnalytics) RoleOptions(ctx context.Context, params jobsearch.Params) ([]string, error) {
	res, err := u.search.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	return analytics.RoleOptions(res.Jobs), nil
}
