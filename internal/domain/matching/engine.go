package matching

import (
	"math"
	"sort"
	"strings"

	"job-insight/internal/domain/job"
	"job-insight/internal/domain/resume"
)

// Term weights. Experience phrases are the strongest signal: a resume
// whose past titles appear verbatim in a posting is a better fit than one
// sharing a single skill keyword.
const (
	skillWeight      = 2
	experienceWeight = 3
	educationWeight  = 1
	keywordWeight    = 1
)

// MatchedJob is a job annotated with its relevance to a parsed resume.
type MatchedJob struct {
	Job             job.Job
	MatchScore      int
	MatchedKeywords []string
}

// Match scores every job against the resume and returns all of them
// sorted descending by score. The sort is stable, jobs scoring 0 are
// kept, and matched terms are de-duplicated in first-occurrence order.
//
// The score is strictly additive: each resume term found as a
// case-insensitive substring of the job's title or description (education
// phrases check the description only) contributes its weight exactly
// once.
func Match(jobs []job.Job, parsed resume.Parsed) []MatchedJob {
	out := make([]MatchedJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, scoreJob(j, parsed))
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].MatchScore > out[k].MatchScore
	})
	return out
}

func scoreJob(j job.Job, parsed resume.Parsed) MatchedJob {
	title := strings.ToLower(j.Title)
	desc := strings.ToLower(j.Description)

	score := 0
	var matched []string
	seen := make(map[string]bool)

	record := func(term string, weight int) {
		score += weight
		if !seen[term] {
			seen[term] = true
			matched = append(matched, term)
		}
	}

	inTitleOrDesc := func(term string) bool {
		t := strings.ToLower(term)
		return t != "" && (strings.Contains(title, t) || strings.Contains(desc, t))
	}

	for _, skill := range parsed.Skills {
		if inTitleOrDesc(skill) {
			record(skill, skillWeight)
		}
	}
	for _, exp := range parsed.Experience {
		if inTitleOrDesc(exp) {
			record(exp, experienceWeight)
		}
	}
	for _, edu := range parsed.Education {
		e := strings.ToLower(edu)
		if e != "" && strings.Contains(desc, e) {
			record(edu, educationWeight)
		}
	}
	for _, kw := range parsed.Keywords {
		if inTitleOrDesc(kw) {
			record(kw, keywordWeight)
		}
	}

	return MatchedJob{Job: j, MatchScore: score, MatchedKeywords: matched}
}

// MatchPercentage maps a raw score onto a capped 0-100 display value.
// Presentation only; ranking always uses the raw score.
func MatchPercentage(score int) int {
	pct := int(math.Round(float64(score) / 20 * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
