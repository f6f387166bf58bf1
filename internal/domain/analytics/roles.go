package analytics

import (
	"strings"

	"job-insight/internal/domain/job"
)

// AllRoles is the synthetic filter option that disables role filtering.
const AllRoles = "All Roles"

const (
	RoleFrontendDeveloper  = "Frontend Developer"
	RoleBackendDeveloper   = "Backend Developer"
	RoleFullstackDeveloper = "Fullstack Developer"
	RoleDevOpsEngineer     = "DevOps Engineer"
	RoleDataEngineer       = "Data Engineer"
	RoleSoftwareEngineer   = "Software Engineer"
	RoleDeveloper          = "Developer"
	RoleDesigner           = "Designer"
	RoleProductManager     = "Product Manager"
	RoleDataScientist      = "Data Scientist"
	RoleDataAnalyst        = "Data Analyst"
	RoleOther              = "Other"
)

type roleRule struct {
	name  string
	match func(title string) bool
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isEngineering(title string) bool {
	return containsAny(title, "developer", "engineer")
}

// roleRules is the single source of truth for role classification. Both
// role extraction and role filtering walk this list in order; the first
// matching rule wins, so a title containing both "frontend" and
// "developer" classifies as Frontend Developer, never plain Developer.
var roleRules = []roleRule{
	{RoleFrontendDeveloper, func(t string) bool {
		return isEngineering(t) && containsAny(t, "frontend", "front-end", "front end")
	}},
	{RoleBackendDeveloper, func(t string) bool {
		return isEngineering(t) && containsAny(t, "backend", "back-end", "back end")
	}},
	{RoleFullstackDeveloper, func(t string) bool {
		return isEngineering(t) && containsAny(t, "fullstack", "full-stack", "full stack")
	}},
	{RoleDevOpsEngineer, func(t string) bool {
		return isEngineering(t) && strings.Contains(t, "devops") ||
			strings.Contains(t, "engineer") && strings.Contains(t, "operations")
	}},
	{RoleDataEngineer, func(t string) bool {
		return isEngineering(t) && strings.Contains(t, "data")
	}},
	{RoleSoftwareEngineer, func(t string) bool {
		return isEngineering(t) && strings.Contains(t, "software")
	}},
	{RoleDeveloper, isEngineering},
	{RoleDesigner, func(t string) bool {
		return containsAny(t, "designer", "ux", "ui")
	}},
	{RoleProductManager, func(t string) bool {
		return containsAny(t, "product manager", "product owner")
	}},
	{RoleDataScientist, func(t string) bool {
		return containsAny(t, "data scientist", "machine learning")
	}},
	{RoleDataAnalyst, func(t string) bool {
		return containsAny(t, "analyst", "analytics")
	}},
	{RoleOther, func(string) bool { return true }},
}

// ClassifyRole maps a job title to exactly one role label.
func ClassifyRole(title string) string {
	t := strings.ToLower(title)
	for _, r := range roleRules {
		if r.match(t) {
			return r.name
		}
	}
	return RoleOther
}

// Roles returns the distinct role classifications present in the job set,
// in first-seen order.
func Roles(jobs []job.Job) []string {
	seen := make(map[string]bool, len(roleRules))
	out := make([]string, 0, len(roleRules))
	for _, j := range jobs {
		role := ClassifyRole(j.Title)
		if seen[role] {
			continue
		}
		seen[role] = true
		out = append(out, role)
	}
	return out
}

// RoleOptions is Roles prefixed with the AllRoles sentinel, ready for a
// filter dropdown.
func RoleOptions(jobs []job.Job) []string {
	return append([]string{AllRoles}, Roles(jobs)...)
}

// FilterByRole keeps only jobs whose title classifies as role. The
// AllRoles sentinel (or an empty role) is a pass-through. Filtering is
// idempotent: re-applying the same role leaves the result unchanged.
func FilterByRole(jobs []job.Job, role string) []job.Job {
	if role == "" || role == AllRoles {
		return jobs
	}
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if ClassifyRole(j.Title) == role {
			out = append(out, j)
		}
	}
	return out
}
