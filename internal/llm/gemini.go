package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"google.golang.org/genai"
)

type implGemini struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewGemini creates a Generator backed by the Gemini API. baseURL is only
// set to point the client at a different endpoint.
func NewGemini(ctx context.Context, apiKey, model, baseURL string, log logger.Logger) (Generator, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &implGemini{client: client, model: model, logger: log}, nil
}

// Generate sends the prompt to Gemini and concatenates the text parts of the first candidate.
func (g *implGemini) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug(ctx, "Calling Gemini model %s (%d prompt bytes)", g.model, len(prompt))

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}

	return "", ErrEmptyResponse
}
