package jobsearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Search_MapsWireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-RapidAPI-Key") != "test-key" {
			t.Fatalf("missing api key header")
		}
		if got := r.URL.Query().Get("query"); got != "golang developer" {
			t.Fatalf("query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"data": [{
				"job_id": "j1",
				"employer_name": "Acme",
				"job_title": "Go Developer",
				"job_description": "Build services in Go.",
				"job_city": "Austin",
				"job_state": "TX",
				"job_country": "US",
				"job_employment_type": "FULLTIME",
				"job_salary_min": 100000,
				"job_salary_max": 140000,
				"job_posted_at_datetime_utc": "2026-08-28T10:00:00Z",
				"job_required_skills": ["Go", "Docker"],
				"job_required_experience": {"required_experience_in_months": 24}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", time.Second, nil)
	jobs, err := c.Search(context.Background(), Params{Query: "golang developer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	j := jobs[0]
	if j.ID != "j1" || j.Title != "Go Developer" || j.Employer != "Acme" {
		t.Fatalf("unexpected job: %+v", j)
	}
	if j.SalaryMin == nil || *j.SalaryMin != 100000 {
		t.Fatalf("salary min not mapped: %+v", j.SalaryMin)
	}
	if avg, ok := j.AverageSalary(); !ok || avg != 120000 {
		t.Fatalf("average salary = %v %v", avg, ok)
	}
	if j.PostedAtUTC == nil || j.PostedAtUTC.Day() != 28 {
		t.Fatalf("posted date not parsed: %+v", j.PostedAtUTC)
	}
	if j.Experience == nil || j.Experience.RequiredMonths == nil || *j.Experience.RequiredMonths != 24 {
		t.Fatalf("experience not mapped: %+v", j.Experience)
	}
	if len(j.RequiredSkills) != 2 {
		t.Fatalf("skills not mapped: %v", j.RequiredSkills)
	}
}

func TestClient_Search_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", time.Second, nil)
	_, err := c.Search(context.Background(), Params{Query: "x"})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestClient_Search_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", time.Second, nil)
	if _, err := c.Search(context.Background(), Params{Query: "x"}); err == nil {
		t.Fatalf("expected error for 502")
	}
}

func TestClient_Search_MissingKey(t *testing.T) {
	c := NewClient("http://unused", "", "", time.Second, nil)
	_, err := c.Search(context.Background(), Params{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFallbackJobs(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	jobs := FallbackJobs(now)
	if len(jobs) != 8 {
		t.Fatalf("expected 8 fallback jobs, got %d", len(jobs))
	}
	for _, j := range jobs {
		if j.ID == "" || j.Title == "" || j.Description == "" {
			t.Fatalf("incomplete fallback job: %+v", j)
		}
		if _, ok := j.AverageSalary(); !ok {
			t.Fatalf("fallback job %s lacks salary data", j.ID)
		}
		if !j.HasValidPostingDate(now) {
			t.Fatalf("fallback job %s has implausible posting date", j.ID)
		}
	}
}
