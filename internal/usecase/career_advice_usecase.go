package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-insight/internal/infrastructure/ai"
)

const (
	AdviceResumeImprovement  = "resumeImprovement"
	AdviceJobApplicationTips = "jobApplicationTips"
	AdviceCareerAdvice       = "careerAdvice"
	AdviceInDemandSkills     = "inDemandSkills"
)

// defaultSkills is the last-resort answer when the model response cannot
// be turned into a skill list.
var defaultSkills = []string{
	"JavaScript", "React", "Python", "SQL",
	"Communication", "Problem Solving", "Cloud Computing", "Data Analysis",
}

const maxSkills = 8

type AdviceRequest struct {
	Prompt string
	Type   string

	// careerAdvice parameters
	Role       string
	Experience string

	// inDemandSkills parameters
	JobTitles       []string
	JobDescriptions []string
}

type AdviceResult struct {
	Text   string
	Skills []string // populated for inDemandSkills only
}

type CareerAdviceUsecase interface {
	Advise(ctx context.Context, req AdviceRequest) (AdviceResult, error)
}

type CareerAdvice struct {
	gen ai.TextGenerator
}

func NewCareerAdviceUsecase(gen ai.TextGenerator) *CareerAdvice {
	return &CareerAdvice{gen: gen}
}

func (u *CareerAdvice) Advise(ctx context.Context, req AdviceRequest) (AdviceResult, error) {
	prompt := buildPrompt(req)
	if strings.TrimSpace(prompt) == "" {
		return AdviceResult{}, ErrInvalidInput
	}

	text, err := u.gen.GenerateText(ctx, prompt)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return AdviceResult{}, ErrAdviceNotConfigured
		}
		return AdviceResult{}, ErrAdviceUnavailable
	}

	out := AdviceResult{Text: text}
	if req.Type == AdviceInDemandSkills {
		out.Skills = CleanSkillList(text)
	}
	return out, nil
}

func buildPrompt(req AdviceRequest) string {
	switch req.Type {
	case AdviceResumeImprovement:
		return fmt.Sprintf(`You are an expert resume reviewer and career coach. Analyze the following resume and provide:
1. Three specific improvements to make it more ATS-friendly
2. Two suggestions to better highlight achievements
3. One tip for formatting or structure

Resume:
%s

Format your response in clear, concise bullet points.`, req.Prompt)

	case AdviceJobApplicationTips:
		return fmt.Sprintf(`You are an expert career coach. Based on the following job description, provide:
1. Three key skills to emphasize in a cover letter
2. Two suggestions for tailoring a resume to this position
3. One tip for the interview process

Job Description:
%s

Format your response in clear, concise bullet points.`, req.Prompt)

	case AdviceCareerAdvice:
		if strings.TrimSpace(req.Prompt) != "" {
			return req.Prompt
		}
		if req.Role == "" {
			return ""
		}
		return fmt.Sprintf("Provide career advice for a %s with %s experience.", req.Role, req.Experience)

	case AdviceInDemandSkills:
		role := req.Role
		if role == "" {
			role = "technical roles"
		}
		titles := req.JobTitles
		if len(titles) > 5 {
			titles = titles[:5]
		}
		sampleTitles := strings.Join(titles, "\n- ")
		if sampleTitles == "" {
			sampleTitles = "Software Developer"
		}
		descs := req.JobDescriptions
		if len(descs) > 2 {
			descs = descs[:2]
		}
		sampleDescriptions := strings.Join(descs, "\n\n")
		if sampleDescriptions == "" {
			sampleDescriptions = "No descriptions provided"
		}
		return fmt.Sprintf(`You are an expert job market analyst. Based on the following job titles and descriptions for %s, provide a list of the top 8 most in-demand technical and soft skills.

Sample job titles:
- %s

Sample job descriptions:
%s

Return ONLY a simple array of skills as plain text, with each skill separated by commas.
Do not include any markdown formatting, code blocks, or explanation.
Example format: JavaScript, React, Python, SQL, Communication, Problem Solving, Cloud Computing, Data Analysis`, role, sampleTitles, sampleDescriptions)

	default:
		return req.Prompt
	}
}

// CleanSkillList turns a model response into at most 8 skill strings,
// tolerating markdown fences, JSON-ish arrays, quotes and newline
// separators. Falls back to a static list when nothing usable remains.
func CleanSkillList(response string) []string {
	s := strings.ReplaceAll(response, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.Trim(strings.TrimSpace(s), "[]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	out := make([]string, 0, maxSkills)
	for _, f := range fields {
		f = strings.TrimSpace(f)
		f = strings.Trim(f, `"'`)
		f = strings.TrimSpace(f)
		if len(f) <= 1 {
			continue
		}
		out = append(out, f)
		if len(out) == maxSkills {
			break
		}
	}

	if len(out) == 0 {
		return append([]string(nil), defaultSkills...)
	}
	return out
}
