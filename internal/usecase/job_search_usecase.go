package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"job-insight/internal/domain/job"
	"job-insight/internal/infrastructure/jobsearch"
)

const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

const (
	msgRateLimited   = "API rate limit exceeded. Using sample data instead. Please try again later."
	msgNoResults     = "No jobs found for your search query"
	msgFetchFailed   = "Failed to fetch job data"
	msgNotConfigured = "Job search API not configured. Using sample data."
)

// DefaultCooldown is how long the service stays on fallback data after an
// upstream 429.
const DefaultCooldown = 5 * time.Minute

// SearchResult is the dashboard-facing search outcome. Upstream failures
// are not errors at this level: the jobs slice is always populated (with
// the fallback set if need be) and Status/Message report what happened.
type SearchResult struct {
	Jobs    []job.Job `json:"jobs"`
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
}

type JobSearchUsecase interface {
	Search(ctx context.Context, params jobsearch.Params) (SearchResult, error)
}

type JobSearch struct {
	client   jobsearch.Client
	cache    SearchCache
	cooldown time.Duration
	logger   *log.Logger
	now      func() time.Time
}

func NewJobSearchUsecase(client jobsearch.Client, cache SearchCache, cooldown time.Duration, logger *log.Logger) *JobSearch {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &JobSearch{client: client, cache: cache, cooldown: cooldown, logger: logger, now: time.Now}
}

func (u *JobSearch) Search(ctx context.Context, params jobsearch.Params) (SearchResult, error) {
	if params.Page < 0 || params.NumPages < 0 {
		return SearchResult{}, ErrInvalidInput
	}

	cacheKey := JobsSearchCacheKey(params)
	if u.cache != nil {
		var cached SearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit && len(cached.Jobs) > 0 {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}

		cooling, err := u.cache.Exists(ctx, CooldownKey)
		if err == nil && cooling {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Rate-limit cooldown active, serving fallback")
			}
			return u.fallback(StatusWarning, msgRateLimited), nil
		}
	}

	jobs, err := u.client.Search(ctx, params)
	switch {
	case errors.Is(err, jobsearch.ErrRateLimited):
		u.armCooldown(ctx)
		return u.fallback(StatusWarning, msgRateLimited), nil
	case errors.Is(err, jobsearch.ErrNotConfigured):
		return u.fallback(StatusWarning, msgNotConfigured), nil
	case err != nil:
		if u.logger != nil {
			u.logger.Printf("[Jobs] upstream fetch failed: %v", err)
		}
		return u.fallback(StatusError, msgFetchFailed), nil
	case len(jobs) == 0:
		return u.fallback(StatusWarning, msgNoResults), nil
	}

	res := SearchResult{Jobs: jobs, Status: StatusOK}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, res, 0); err == nil && u.logger != nil {
			u.logger.Printf("[Jobs] Cache SET: %s", cacheKey)
		}
	}
	return res, nil
}

func (u *JobSearch) fallback(status, message string) SearchResult {
	return SearchResult{
		Jobs:    jobsearch.FallbackJobs(u.now()),
		Status:  status,
		Message: message,
	}
}

func (u *JobSearch) armCooldown(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if ok, err := u.cache.SetIfNotExists(ctx, CooldownKey, "1", u.cooldown); err == nil && ok {
		if u.logger != nil {
			u.logger.Printf("[Jobs] Rate-limit cooldown armed for %s", u.cooldown)
		}
	}
}
