package analytics

import (
	"testing"

	"job-insight/internal/domain/job"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func located(city, state, country string) job.Job {
	j := job.Job{Title: "Engineer"}
	if city != "" {
		j.City = strPtr(city)
	}
	if state != "" {
		j.State = strPtr(state)
	}
	if country != "" {
		j.Country = strPtr(country)
	}
	return j
}

func TestLocationKey_Fallbacks(t *testing.T) {
	cases := []struct {
		j    job.Job
		want string
	}{
		{located("Austin", "TX", "United States"), "Austin, TX"},
		{located("", "TX", "United States"), "TX"},
		{located("Austin", "", "United States"), "Austin"},
		{located("", "", "United States"), "United States"},
		{located("", "", ""), UnknownLocation},
	}
	for _, c := range cases {
		if got := LocationKey(c.j); got != c.want {
			t.Fatalf("LocationKey = %q, want %q", got, c.want)
		}
	}
}

func TestTopLocations_RankingAndLimit(t *testing.T) {
	jobs := []job.Job{
		located("Austin", "TX", ""),
		located("Austin", "TX", ""),
		located("Denver", "CO", ""),
		located("Boston", "MA", ""),
		located("Boston", "MA", ""),
		located("Boston", "MA", ""),
	}
	got := TopLocations(jobs, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(got))
	}
	if got[0].Label != "Boston, MA" || got[0].Count != 3 {
		t.Fatalf("top location should be Boston, MA (3), got %v", got[0])
	}
	if got[1].Label != "Austin, TX" || got[1].Count != 2 {
		t.Fatalf("second location should be Austin, TX (2), got %v", got[1])
	}

	total := 0
	for _, b := range TopLocations(jobs, 0) {
		if b.Count < 0 {
			t.Fatalf("negative count in %v", b)
		}
		total += b.Count
	}
	if total != len(jobs) {
		t.Fatalf("counts should sum to job count, got %d", total)
	}
}

func TestTopLocations_StableTies(t *testing.T) {
	jobs := []job.Job{
		located("Austin", "TX", ""),
		located("Denver", "CO", ""),
	}
	got := TopLocations(jobs, 5)
	if got[0].Label != "Austin, TX" || got[1].Label != "Denver, CO" {
		t.Fatalf("tied counts must keep first-encountered order, got %v", got)
	}
}

func TestEmploymentTypes(t *testing.T) {
	ft := strPtr("FULLTIME")
	jobs := []job.Job{
		{Title: "A", EmploymentType: ft},
		{Title: "B", EmploymentType: ft},
		{Title: "C"},
	}
	got := EmploymentTypes(jobs)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %v", got)
	}
	if got[0].Label != "FULLTIME" || got[0].Count != 2 {
		t.Fatalf("expected FULLTIME=2 first, got %v", got[0])
	}
	if got[1].Label != EmploymentTypeNotSpecified || got[1].Count != 1 {
		t.Fatalf("expected Not specified=1, got %v", got[1])
	}
}

func TestExperienceLevels(t *testing.T) {
	jobs := []job.Job{
		{Title: "A", Experience: &job.ExperienceRequirement{NoExperienceRequired: true}},
		{Title: "B", Experience: &job.ExperienceRequirement{RequiredMonths: intPtr(12)}},
		{Title: "C", Experience: &job.ExperienceRequirement{RequiredMonths: intPtr(13)}},
		{Title: "D", Experience: &job.ExperienceRequirement{RequiredMonths: intPtr(36)}},
		{Title: "E", Experience: &job.ExperienceRequirement{RequiredMonths: intPtr(37)}},
		{Title: "F", Experience: &job.ExperienceRequirement{MinimumExperience: "Senior professionals only"}},
		{Title: "G", Experience: &job.ExperienceRequirement{MinimumExperience: "fresh graduates welcome"}},
		{Title: "H"},
	}

	wantByLabel := map[string]int{
		LevelNoExperience: 1,
		LevelEntry:        1,
		LevelMid:          2,
		LevelSenior:       2,
		LevelNotSpecified: 2,
	}
	got := ExperienceLevels(jobs)
	if len(got) != len(wantByLabel) {
		t.Fatalf("expected %d buckets, got %v", len(wantByLabel), got)
	}
	for _, b := range got {
		if wantByLabel[b.Label] != b.Count {
			t.Fatalf("bucket %q = %d, want %d", b.Label, b.Count, wantByLabel[b.Label])
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Fatalf("buckets not sorted descending: %v", got)
		}
	}
}

func TestExperienceLevels_EmptyAndZeroFiltered(t *testing.T) {
	if got := ExperienceLevels(nil); len(got) != 0 {
		t.Fatalf("expected no buckets for empty input, got %v", got)
	}
	got := ExperienceLevels([]job.Job{
		{Title: "A", Experience: &job.ExperienceRequirement{RequiredMonths: intPtr(48)}},
	})
	if len(got) != 1 || got[0].Label != LevelSenior {
		t.Fatalf("expected only Senior Level, got %v", got)
	}
}

func TestClassifyWorkplace_Priority(t *testing.T) {
	cases := []struct {
		j    job.Job
		want string
	}{
		{job.Job{Title: "Remote Backend Developer", Description: "hybrid schedule"}, WorkplaceRemote},
		{job.Job{Title: "Backend Developer", Description: "Work from home friendly"}, WorkplaceRemote},
		{job.Job{Title: "Backend Developer", Description: "Hybrid, 2 days in office per week"}, WorkplaceHybrid},
		{job.Job{Title: "Backend Developer", Description: "This is an on-site position"}, WorkplaceOnsite},
		{job.Job{Title: "Backend Developer", Description: "Great team"}, WorkplaceNotSpecified},
	}
	for _, c := range cases {
		if got := ClassifyWorkplace(c.j); got != c.want {
			t.Fatalf("ClassifyWorkplace(%q/%q) = %q, want %q", c.j.Title, c.j.Description, got, c.want)
		}
	}
}

func TestRemoteVsOnsite_NonZeroOnly(t *testing.T) {
	jobs := []job.Job{
		{Title: "Remote Developer", Description: ""},
		{Title: "Developer", Description: "onsite role"},
		{Title: "Developer", Description: "onsite role"},
	}
	got := RemoteVsOnsite(jobs)
	if len(got) != 2 {
		t.Fatalf("expected 2 non-zero buckets, got %v", got)
	}
	if got[0].Label != WorkplaceRemote || got[1].Label != WorkplaceOnsite {
		t.Fatalf("unexpected bucket order: %v", got)
	}
	if got[1].Count != 2 {
		t.Fatalf("expected 2 onsite jobs, got %v", got[1])
	}
}

func TestRequiredSkills_TopTen(t *testing.T) {
	jobs := make([]job.Job, 0, 12)
	for i := 0; i < 12; i++ {
		skills := []string{"Go"}
		if i < 4 {
			skills = append(skills, "Kubernetes")
		}
		skills = append(skills, "Skill"+string(rune('A'+i)))
		jobs = append(jobs, job.Job{Title: "Engineer", RequiredSkills: skills})
	}
	got := RequiredSkills(jobs)
	if len(got) != DefaultTopSkills {
		t.Fatalf("expected top %d skills, got %d", DefaultTopSkills, len(got))
	}
	if got[0].Label != "Go" || got[0].Count != 12 {
		t.Fatalf("expected Go=12 first, got %v", got[0])
	}
	if got[1].Label != "Kubernetes" || got[1].Count != 4 {
		t.Fatalf("expected Kubernetes=4 second, got %v", got[1])
	}
}

func TestRequiredSkills_EmptyInputs(t *testing.T) {
	if got := RequiredSkills(nil); len(got) != 0 {
		t.Fatalf("expected no skills, got %v", got)
	}
	if got := RequiredSkills([]job.Job{{Title: "A"}}); len(got) != 0 {
		t.Fatalf("jobs without skill lists contribute nothing, got %v", got)
	}
}
