package resumeparse

import (
	"context"
	"errors"
	"strings"

	"job-insight/internal/domain/resume"
)

// Real resume parsing is out of scope; the parser validates the upload
// superficially and returns a fixed profile with a fabricated ATS score,
// the same simulation the dashboard always shipped with.

var (
	ErrEmptyUpload     = errors.New("empty resume upload")
	ErrUnsupportedFile = errors.New("unsupported resume file type")
)

var supportedExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

type Upload struct {
	Filename string
	Size     int64
}

type Parser interface {
	Parse(ctx context.Context, up Upload) (resume.Parsed, error)
}

type Simulated struct{}

func NewSimulated() *Simulated {
	return &Simulated{}
}

func (p *Simulated) Parse(_ context.Context, up Upload) (resume.Parsed, error) {
	if up.Size <= 0 || strings.TrimSpace(up.Filename) == "" {
		return resume.Parsed{}, ErrEmptyUpload
	}

	name := strings.ToLower(up.Filename)
	ok := false
	for _, ext := range supportedExtensions {
		if strings.HasSuffix(name, ext) {
			ok = true
			break
		}
	}
	if !ok {
		return resume.Parsed{}, ErrUnsupportedFile
	}

	return resume.Parsed{
		Skills:     []string{"JavaScript", "React", "TypeScript", "Node.js", "CSS", "HTML"},
		Experience: []string{"Frontend Developer", "Software Engineer", "Web Developer"},
		Education:  []string{"Computer Science", "Information Technology"},
		Keywords:   []string{"web", "frontend", "development", "software", "engineering"},
		ATS: &resume.ATSScore{
			Overall: 76,
			Sections: resume.ATSSections{
				Format:     85,
				Keywords:   70,
				Skills:     80,
				Experience: 68,
			},
			Feedback: []string{
				"Add more quantifiable achievements",
				"Include more industry-specific keywords",
				"Improve job description formatting",
				"Consider adding a professional summary",
			},
		},
	}, nil
}

var _ Parser = (*Simulated)(nil)
