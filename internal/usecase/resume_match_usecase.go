package usecase

import (
	"context"
	"errors"

	"job-insight/internal/domain/matching"
	"job-insight/internal/domain/resume"
	"job-insight/internal/infrastructure/jobsearch"
	"job-insight/internal/infrastructure/resumeparse"
)

// MatchedJobItem pairs a scored job with its display percentage.
type MatchedJobItem struct {
	matching.MatchedJob
	MatchPercentage int
}

type ResumeMatchResult struct {
	Resume  resume.Parsed
	Status  string
	Message string
	Matches []MatchedJobItem
}

type ResumeMatchUsecase interface {
	MatchResume(ctx context.Context, up resumeparse.Upload, params jobsearch.Params) (ResumeMatchResult, error)
}

type ResumeMatch struct {
	parser resumeparse.Parser
	search JobSearchUsecase
}

func NewResumeMatchUsecase(parser resumeparse.Parser, search JobSearchUsecase) *ResumeMatch {
	return &ResumeMatch{parser: parser, search: search}
}

func (u *ResumeMatch) MatchResume(ctx context.Context, up resumeparse.Upload, params jobsearch.Params) (ResumeMatchResult, error) {
	parsed, err := u.parser.Parse(ctx, up)
	if err != nil {
		if errors.Is(err, resumeparse.ErrEmptyUpload) || errors.Is(err, resumeparse.ErrUnsupportedFile) {
			return ResumeMatchResult{}, ErrInvalidResume
		}
		return ResumeMatchResult{}, ErrInternal
	}

	res, err := u.search.Search(ctx, params)
	if err != nil {
		return ResumeMatchResult{}, err
	}

	ranked := matching.Match(res.Jobs, parsed)
	matches := make([]MatchedJobItem, 0, len(ranked))
	for _, m := range ranked {
		matches = append(matches, MatchedJobItem{
			MatchedJob:      m,
			MatchPercentage: matching.MatchPercentage(m.MatchScore),
		})
	}

	return ResumeMatchResult{
		Resume:  parsed,
		Status:  res.Status,
		Message: res.Message,
		Matches: matches,
	}, nil
}
