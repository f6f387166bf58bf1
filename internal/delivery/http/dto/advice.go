package dto

// AdviceRequest is the POST body of the AI advice endpoint. Type selects
// the prompt template; the remaining fields feed it.
type AdviceRequest struct {
	Prompt          string   `json:"prompt"`
	Type            string   `json:"type"`
	Role            string   `json:"role"`
	Experience      string   `json:"experience"`
	JobTitles       []string `json:"job_titles"`
	JobDescriptions []string `json:"job_descriptions"`
}

type AdviceResponse struct {
	Text   string   `json:"text"`
	Skills []string `json:"skills,omitempty"`
}
