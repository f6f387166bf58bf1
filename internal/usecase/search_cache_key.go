package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"job-insight/internal/infrastructure/jobsearch"
)

// CooldownKey is armed (with a TTL) after an upstream 429; while it
// exists the service serves the fallback set without calling out.
const CooldownKey = "jobs:cooldown"

type searchCacheKeyInput struct {
	Query    string `json:"query"`
	Page     int    `json:"page"`
	NumPages int    `json:"num_pages"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func JobsSearchCacheKey(params jobsearch.Params) string {
	in := searchCacheKeyInput{
		Query:    normalizeSearchValue(params.Query),
		Page:     params.Page,
		NumPages: params.NumPages,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}
