package llm

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

// New builds the Generator selected by cfg.LLM.Provider.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Generator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini, "":
		return NewGemini(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL, log)
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL, log), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
