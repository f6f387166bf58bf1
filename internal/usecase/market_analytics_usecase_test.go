package usecase

import (
	"context"
	"testing"
	"time"

	"job-insight/internal/domain/analytics"
	"job-insight/internal/domain/job"
)

func TestMarketAnalyticsUsecase_Summary(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -2)
	old := now.AddDate(0, 0, -20)
	min := 120000.0
	max := 150000.0
	ft := "FULLTIME"

	client := &stubClient{jobs: []job.Job{
		{ID: "1", Title: "Senior Frontend Developer", PostedAtUTC: &recent, SalaryMin: &min, SalaryMax: &max, EmploymentType: &ft},
		{ID: "2", Title: "DevOps Engineer", PostedAtUTC: &old},
		{ID: "3", Title: "UX Designer", PostedAtUTC: &recent},
	}}
	uc := NewMarketAnalyticsUsecase(NewJobSearchUsecase(client, nil, 0, nil))
	uc.now = func() time.Time { return now }

	sum, err := uc.Summary(context.Background(), MarketSummaryParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.TotalJobs != 3 {
		t.Fatalf("total jobs = %d, want 3", sum.TotalJobs)
	}
	if sum.RecentPostings != 2 {
		t.Fatalf("recent postings = %d, want 2", sum.RecentPostings)
	}
	if sum.AverageSalary != 135000 {
		t.Fatalf("average salary = %d, want 135000", sum.AverageSalary)
	}
	if len(sum.RoleOptions) != 4 || sum.RoleOptions[0] != analytics.AllRoles {
		t.Fatalf("role options = %v", sum.RoleOptions)
	}
	if len(sum.PostingTrends) != analytics.DefaultTrendDays {
		t.Fatalf("trend days = %d", len(sum.PostingTrends))
	}
	if len(sum.SalaryRanges) != 6 {
		t.Fatalf("salary ranges = %v", sum.SalaryRanges)
	}
}

func TestMarketAnalyticsUsecase_RoleFilter(t *testing.T) {
	client := &stubClient{jobs: []job.Job{
		{ID: "1", Title: "Backend Developer"},
		{ID: "2", Title: "UX Designer"},
	}}
	uc := NewMarketAnalyticsUsecase(NewJobSearchUsecase(client, nil, 0, nil))

	sum, err := uc.Summary(context.Background(), MarketSummaryParams{Role: analytics.RoleDesigner})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.TotalJobs != 1 {
		t.Fatalf("filtered total = %d, want 1", sum.TotalJobs)
	}
	// Options still reflect the whole set.
	if len(sum.RoleOptions) != 3 {
		t.Fatalf("role options = %v", sum.RoleOptions)
	}
}
