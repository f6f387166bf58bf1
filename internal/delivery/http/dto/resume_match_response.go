package dto

import (
	"job-insight/internal/domain/resume"
	"job-insight/internal/usecase"
)

type ATSScoreResponse struct {
	Overall  int            `json:"overall"`
	Sections map[string]int `json:"sections"`
	Feedback []string       `json:"feedback"`
}

type ParsedResumeResponse struct {
	Skills     []string          `json:"skills"`
	Experience []string          `json:"experience"`
	Education  []string          `json:"education"`
	Keywords   []string          `json:"keywords"`
	ATSScore   *ATSScoreResponse `json:"ats_score,omitempty"`
}

type MatchedJobResponse struct {
	JobResponse
	MatchScore      int      `json:"match_score"`
	MatchPercentage int      `json:"match_percentage"`
	MatchedKeywords []string `json:"matched_keywords"`
}

type ResumeMatchResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message,omitempty"`
	Resume  ParsedResumeResponse `json:"resume"`
	Matches []MatchedJobResponse `json:"matches"`
}

func FromResumeMatch(res usecase.ResumeMatchResult) ResumeMatchResponse {
	out := ResumeMatchResponse{
		Status:  res.Status,
		Message: res.Message,
		Resume:  fromParsedResume(res.Resume),
		Matches: make([]MatchedJobResponse, 0, len(res.Matches)),
	}
	for _, m := range res.Matches {
		out.Matches = append(out.Matches, MatchedJobResponse{
			JobResponse:     FromJob(m.Job),
			MatchScore:      m.MatchScore,
			MatchPercentage: m.MatchPercentage,
			MatchedKeywords: m.MatchedKeywords,
		})
	}
	return out
}

func fromParsedResume(p resume.Parsed) ParsedResumeResponse {
	out := ParsedResumeResponse{
		Skills:     p.Skills,
		Experience: p.Experience,
		Education:  p.Education,
		Keywords:   p.Keywords,
	}
	if p.ATS != nil {
		out.ATSScore = &ATSScoreResponse{
			Overall: p.ATS.Overall,
			Sections: map[string]int{
				"format":     p.ATS.Sections.Format,
				"keywords":   p.ATS.Sections.Keywords,
				"skills":     p.ATS.Sections.Skills,
				"experience": p.ATS.Sections.Experience,
			},
			Feedback: p.ATS.Feedback,
		}
	}
	return out
}
