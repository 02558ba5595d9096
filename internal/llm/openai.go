package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/sashabaranov/go-openai"
)

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Generator for any OpenAI-compatible chat completion API.
func NewOpenAI(apiKey, model, baseURL string, log logger.Logger) Generator {
	cc := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cc.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &implOpenAI{
		client: openai.NewClientWithConfig(cc),
		model:  model,
		logger: log,
	}
}

// Generate sends the prompt as a single user message and returns the last choice.
func (o *implOpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	o.logger.Debug(ctx, "Calling chat completion model %s (%d prompt bytes)", o.model, len(prompt))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := resp.Choices[len(resp.Choices)-1].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
