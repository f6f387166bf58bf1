package integration

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-insight/internal/config"
	"job-insight/internal/delivery/http/middleware"
	"job-insight/internal/delivery/http/routes"
	"job-insight/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type jobsData struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count"`
	Jobs    []struct {
		JobID    string `json:"job_id"`
		JobTitle string `json:"job_title"`
	} `json:"jobs"`
}

type matchData struct {
	Status string `json:"status"`
	Resume struct {
		Skills   []string `json:"skills"`
		ATSScore *struct {
			Overall int `json:"overall"`
		} `json:"ats_score"`
	} `json:"resume"`
	Matches []struct {
		JobID           string `json:"job_id"`
		MatchScore      int    `json:"match_score"`
		MatchPercentage int    `json:"match_percentage"`
	} `json:"matches"`
}

const upstreamPayload = `{
	"status": "OK",
	"data": [
		{
			"job_id": "it-1",
			"employer_name": "Acme",
			"job_title": "React Developer",
			"job_description": "Build dashboards with React and TypeScript.",
			"job_country": "US",
			"job_employment_type": "FULLTIME",
			"job_salary_min": 100000,
			"job_salary_max": 140000,
			"job_posted_at_datetime_utc": "2026-08-29T00:00:00.000Z",
			"job_required_skills": ["React", "TypeScript"]
		},
		{
			"job_id": "it-2",
			"employer_name": "Globex",
			"job_title": "Head Chef",
			"job_description": "Run the kitchen.",
			"job_country": "US"
		}
	]
}`

func newTestApp(t *testing.T, baseURL, apiKey string) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "job-insight", Environment: "test", HTTPPort: "0"},
		JobSearch: config.JobSearchConfig{
			BaseURL: baseURL,
			APIKey:  apiKey,
			Timeout: 5 * time.Second,
		},
	}

	// Point at a port nothing listens on so the cache degrades to a
	// bypass instead of touching a real redis.
	store := cache.NewRedis(cache.Options{Host: "127.0.0.1", Port: "1"}, nil)

	app := fiber.New(fiber.Config{})
	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	routes.NewRegistry(cfg, store).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request) semanticResponse {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return sr
}

func TestDashboardAPI_Healthz(t *testing.T) {
	app := newTestApp(t, "", "")

	sr := doJSON(t, app, httptest.NewRequest("GET", "/healthz", nil))
	if sr.Status != 200 {
		t.Fatalf("healthz: expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}
	if sr.Message != "ok" {
		t.Fatalf("healthz: expected message=ok, got %s", sr.Message)
	}
}

func TestDashboardAPI_Jobs_Upstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamPayload))
	}))
	defer upstream.Close()

	app := newTestApp(t, upstream.URL, "test-key")

	sr := doJSON(t, app, httptest.NewRequest("GET", "/api/v1/jobs?query=react", nil))
	if sr.Status != 200 {
		t.Fatalf("jobs: expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var data jobsData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("jobs: data unmarshal error: %v", err)
	}
	if data.Status != "ok" {
		t.Fatalf("jobs: expected data status=ok, got %s", data.Status)
	}
	if data.Count != 2 || len(data.Jobs) != 2 {
		t.Fatalf("jobs: expected 2 jobs, got count=%d len=%d", data.Count, len(data.Jobs))
	}
	if data.Jobs[0].JobID != "it-1" || data.Jobs[0].JobTitle != "React Developer" {
		t.Fatalf("jobs: unexpected first job: %+v", data.Jobs[0])
	}
}

func TestDashboardAPI_Jobs_FallbackWithoutKey(t *testing.T) {
	app := newTestApp(t, "", "")

	sr := doJSON(t, app, httptest.NewRequest("GET", "/api/v1/jobs", nil))
	if sr.Status != 200 {
		t.Fatalf("jobs fallback: expected status=200, got %d", sr.Status)
	}

	var data jobsData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("jobs fallback: data unmarshal error: %v", err)
	}
	if data.Status != "warning" {
		t.Fatalf("jobs fallback: expected data status=warning, got %s", data.Status)
	}
	if data.Count != 8 {
		t.Fatalf("jobs fallback: expected the 8 sample jobs, got %d", data.Count)
	}
}

func TestDashboardAPI_Jobs_BadPage(t *testing.T) {
	app := newTestApp(t, "", "")

	sr := doJSON(t, app, httptest.NewRequest("GET", "/api/v1/jobs?page=abc", nil))
	if sr.Status != 400 {
		t.Fatalf("expected status=400 for non-numeric page, got %d", sr.Status)
	}
}

func TestDashboardAPI_MarketSummary(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamPayload))
	}))
	defer upstream.Close()

	app := newTestApp(t, upstream.URL, "test-key")

	sr := doJSON(t, app, httptest.NewRequest("GET", "/api/v1/analytics/market", nil))
	if sr.Status != 200 {
		t.Fatalf("market: expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var data struct {
		TotalJobs     int      `json:"total_jobs"`
		AverageSalary int      `json:"average_salary"`
		RoleOptions   []string `json:"role_options"`
		SalaryRanges  []struct {
			Label string `json:"label"`
			Count int    `json:"count"`
		} `json:"salary_ranges"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("market: data unmarshal error: %v", err)
	}
	if data.TotalJobs != 2 {
		t.Fatalf("market: total_jobs = %d, want 2", data.TotalJobs)
	}
	if data.AverageSalary != 120000 {
		t.Fatalf("market: average_salary = %d, want 120000", data.AverageSalary)
	}
	if len(data.RoleOptions) == 0 || data.RoleOptions[0] != "All Roles" {
		t.Fatalf("market: role_options = %v", data.RoleOptions)
	}
	if len(data.SalaryRanges) != 6 {
		t.Fatalf("market: expected 6 salary bands, got %d", len(data.SalaryRanges))
	}
}

func TestDashboardAPI_ResumeMatch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamPayload))
	}))
	defer upstream.Close()

	app := newTestApp(t, upstream.URL, "test-key")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("resume", "cv.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("resume body")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/resume/match", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	sr := doJSON(t, app, req)
	if sr.Status != 200 {
		t.Fatalf("match: expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var data matchData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("match: data unmarshal error: %v", err)
	}
	if len(data.Resume.Skills) == 0 {
		t.Fatalf("match: expected parsed resume skills")
	}
	if data.Resume.ATSScore == nil || data.Resume.ATSScore.Overall != 76 {
		t.Fatalf("match: unexpected ats score: %+v", data.Resume.ATSScore)
	}
	if len(data.Matches) != 2 {
		t.Fatalf("match: expected 2 matches, got %d", len(data.Matches))
	}
	if data.Matches[0].JobID != "it-1" {
		t.Fatalf("match: expected the React job first, got %s", data.Matches[0].JobID)
	}
	for i := 1; i < len(data.Matches); i++ {
		if data.Matches[i].MatchScore > data.Matches[i-1].MatchScore {
			t.Fatalf("match: expected match_score descending at idx=%d", i)
		}
	}
}

func TestDashboardAPI_ResumeMatch_MissingFile(t *testing.T) {
	app := newTestApp(t, "", "")

	req := httptest.NewRequest("POST", "/api/v1/resume/match", nil)
	sr := doJSON(t, app, req)
	if sr.Status != 400 {
		t.Fatalf("expected status=400 without resume file, got %d", sr.Status)
	}
}

func TestDashboardAPI_Advice_NotConfigured(t *testing.T) {
	app := newTestApp(t, "", "")

	b, _ := json.Marshal(map[string]string{"type": "careerAdvice", "prompt": "hi"})
	req := httptest.NewRequest("POST", "/api/v1/ai/advice", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	// Server errors are masked by the error middleware.
	sr := doJSON(t, app, req)
	if sr.Status != 500 {
		t.Fatalf("expected status=500 without a gemini key, got %d", sr.Status)
	}
}
