package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"job-insight/internal/domain/job"
)

// ErrRateLimited signals an upstream 429. Callers fall back to the sample
// set and arm a cooldown instead of propagating an HTTP error.
var ErrRateLimited = errors.New("job search API rate limited")

// ErrNotConfigured is returned when no API key is present; the service
// then runs on fallback data only.
var ErrNotConfigured = errors.New("job search API key not configured")

type Params struct {
	Query    string
	Page     int
	NumPages int
}

type Client interface {
	Search(ctx context.Context, params Params) ([]job.Job, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	apiHost string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL, apiKey, apiHost string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = "https://jsearch.p.rapidapi.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		apiHost: strings.TrimSpace(apiHost),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type searchResponse struct {
	Status string    `json:"status"`
	Data   []wireJob `json:"data"`
}

type wireJob struct {
	JobID             string          `json:"job_id"`
	EmployerName      string          `json:"employer_name"`
	EmployerWebsite   *string         `json:"employer_website"`
	JobTitle          string          `json:"job_title"`
	JobDescription    string          `json:"job_description"`
	JobCity           *string         `json:"job_city"`
	JobState          *string         `json:"job_state"`
	JobCountry        *string         `json:"job_country"`
	JobApplyLink      *string         `json:"job_apply_link"`
	JobEmploymentType *string         `json:"job_employment_type"`
	JobSalaryMin      *float64        `json:"job_salary_min"`
	JobSalaryMax      *float64        `json:"job_salary_max"`
	JobSalaryCurrency *string         `json:"job_salary_currency"`
	JobSalaryPeriod   *string         `json:"job_salary_period"`
	JobPostedAtUTC    string          `json:"job_posted_at_datetime_utc"`
	JobRequiredSkills []string        `json:"job_required_skills"`
	JobRequiredExp    *wireExperience `json:"job_required_experience"`
}

type wireExperience struct {
	NoExperienceRequired bool   `json:"no_experience_required"`
	RequiredMonths       *int   `json:"required_experience_in_months"`
	MinimumExperience    string `json:"minimum_experience"`
}

func (c *httpClient) Search(ctx context.Context, params Params) ([]job.Job, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil job search client")
	}
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	query := strings.TrimSpace(params.Query)
	if query == "" {
		query = "developer jobs in us"
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}
	numPages := params.NumPages
	if numPages <= 0 {
		numPages = 10
	}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("num_pages", strconv.Itoa(numPages))
	q.Set("country", "us")
	q.Set("date_posted", "all")

	endpoint := c.baseURL + "/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	if c.apiHost != "" {
		req.Header.Set("X-RapidAPI-Host", c.apiHost)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		if c.logger != nil {
			c.logger.Printf("[JobSearch] rate limit exceeded (429) query=%q", query)
		}
		return nil, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("job search request failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if c.logger != nil {
			c.logger.Printf("[JobSearch] search error query=%q status=%d", query, resp.StatusCode)
		}
		return nil, err
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	jobs := make([]job.Job, 0, len(out.Data))
	for _, w := range out.Data {
		jobs = append(jobs, w.toDomain())
	}
	return jobs, nil
}

func (w wireJob) toDomain() job.Job {
	j := job.Job{
		ID:             w.JobID,
		Title:          w.JobTitle,
		Employer:       w.EmployerName,
		EmployerSite:   w.EmployerWebsite,
		Description:    w.JobDescription,
		EmploymentType: w.JobEmploymentType,
		City:           w.JobCity,
		State:          w.JobState,
		Country:        w.JobCountry,
		ApplyLink:      w.JobApplyLink,
		SalaryMin:      w.JobSalaryMin,
		SalaryMax:      w.JobSalaryMax,
		SalaryCurrency: w.JobSalaryCurrency,
		SalaryPeriod:   w.JobSalaryPeriod,
		RequiredSkills: w.JobRequiredSkills,
	}
	if ts := strings.TrimSpace(w.JobPostedAtUTC); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			t = t.UTC()
			j.PostedAtUTC = &t
		}
	}
	if w.JobRequiredExp != nil {
		j.Experience = &job.ExperienceRequirement{
			NoExperienceRequired: w.JobRequiredExp.NoExperienceRequired,
			RequiredMonths:       w.JobRequiredExp.RequiredMonths,
			MinimumExperience:    w.JobRequiredExp.MinimumExperience,
		}
	}
	return j
}

var _ Client = (*httpClient)(nil)
