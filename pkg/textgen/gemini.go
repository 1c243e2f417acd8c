// Package textgen produces AI-suggested heading and description pairs
// for a story, backed by the Gemini API. Generated text is a suggestion
// for the operator; the render pipeline itself never depends on it.
package textgen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Suggestion is one generated heading/description pair.
type Suggestion struct {
	Heading     string
	Description string
}

// Generator produces copy suggestions from article context.
type Generator interface {
	Suggest(ctx context.Context, req SuggestRequest) (Suggestion, error)
}

// SuggestRequest carries the inputs for one suggestion.
type SuggestRequest struct {
	ArticleText string
	Platform    string // instagram, facebook, linkedin
	Length      Length
	BrandName   string
}

// DefaultModel is the Gemini model used unless overridden.
const DefaultModel = "gemini-2.0-flash"

// GeminiGenerator implements Generator on the Google GenAI SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiGenerator creates a generator with the given API key.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiGenerator, error) {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model, logger: logger}, nil
}

// Suggest asks the model for one heading/description pair.
func (g *GeminiGenerator) Suggest(ctx context.Context, req SuggestRequest) (Suggestion, error) {
	prompt := BuildPrompt(req)

	temp := float32(0.7)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: &temp,
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("generate content: %w", err)
	}

	var content string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			content += part.Text
		}
	}
	if strings.TrimSpace(content) == "" {
		return Suggestion{}, fmt.Errorf("generate content: empty response")
	}

	s := ParseSuggestion(content)
	g.logger.Debug("text suggestion generated",
		zap.String("platform", req.Platform),
		zap.Int("heading_len", len(s.Heading)))
	return s, nil
}

// ParseSuggestion extracts the HEADING:/DESCRIPTION: pair from model
// output. When the model ignores the format the whole text becomes the
// heading, so the caller always gets something usable.
func ParseSuggestion(content string) Suggestion {
	var s Suggestion
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "HEADING:"):
			s.Heading = strings.TrimSpace(strings.TrimPrefix(line, "HEADING:"))
		case strings.HasPrefix(line, "DESCRIPTION:"):
			s.Description = strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:"))
		}
	}
	if s.Heading == "" {
		s.Heading = strings.TrimSpace(content)
	}
	return s
}
