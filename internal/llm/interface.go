package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("empty response from model")

// Generator sends one prompt to a language model and returns its text answer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
