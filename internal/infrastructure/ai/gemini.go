package ai

import (
	"context"
	"errors"
	"log"
	"strings"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned when no Gemini API key is present.
var ErrNotConfigured = errors.New("gemini API key not configured")

const DefaultModel = "gemini-2.0-flash"

// TextGenerator is the surface the advice usecase depends on; tests stub
// it without touching the SDK.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	apiKey string
	model  string
	logger *log.Logger
}

func NewGeminiClient(apiKey, model string, logger *log.Logger) *GeminiClient {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	return &GeminiClient{apiKey: strings.TrimSpace(apiKey), model: model, logger: logger}
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.apiKey == "" {
		return "", ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		if g.logger != nil {
			g.logger.Printf("[AI] generate error model=%s err=%v", g.model, err)
		}
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}

var _ TextGenerator = (*GeminiClient)(nil)
