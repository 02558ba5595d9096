package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey is returned by Validate when no LLM credential is configured.
var ErrMissingAPIKey = errors.New("llm api key not found: set GOOGLE_API_KEY (or llm.api_key) in the environment, .env or config file")

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	TranscriptYouTube = "youtube"
	TranscriptYtDlp   = "ytdlp"

	KeyModeUnique = "unique"
	KeyModeURL    = "url"
)

type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Run         RunConfig         `yaml:"run"`
	Paths       PathsConfig       `yaml:"paths"`
	Export      ExportConfig      `yaml:"export"`
	Metadata    MetadataConfig    `yaml:"metadata"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

type TranscriptConfig struct {
	Provider    string        `yaml:"provider"`
	Languages   []string      `yaml:"languages"`
	YtDlpBinary string        `yaml:"ytdlp_binary"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

type RunConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	KeyMode       string        `yaml:"key_mode"`
	CheckpointTTL time.Duration `yaml:"checkpoint_ttl"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type ExportConfig struct {
	Markdown bool `yaml:"markdown"`
	Docx     bool `yaml:"docx"`
}

type MetadataConfig struct {
	YouTubeAPIKey string `yaml:"youtube_api_key"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Validate checks required fields and fills defaults for the rest.
func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGemini
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("llm.provider %q is not supported (gemini, openai)", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.LLM.Model == "" {
		if c.LLM.Provider == ProviderOpenAI {
			c.LLM.Model = "gpt-4o-mini"
		} else {
			c.LLM.Model = "gemini-2.0-flash-lite"
		}
	}

	if c.Transcript.Provider == "" {
		c.Transcript.Provider = TranscriptYouTube
	}
	switch c.Transcript.Provider {
	case TranscriptYouTube, TranscriptYtDlp:
	default:
		return fmt.Errorf("transcript.provider %q is not supported (youtube, ytdlp)", c.Transcript.Provider)
	}
	if len(c.Transcript.Languages) == 0 {
		c.Transcript.Languages = []string{"pt", "en"}
	}
	if c.Transcript.YtDlpBinary == "" {
		c.Transcript.YtDlpBinary = "yt-dlp"
	}
	if c.Transcript.HTTPTimeout == 0 {
		c.Transcript.HTTPTimeout = 30 * time.Second
	}

	if c.Run.KeyMode == "" {
		c.Run.KeyMode = KeyModeUnique
	}
	if c.Run.KeyMode != KeyModeUnique && c.Run.KeyMode != KeyModeURL {
		return fmt.Errorf("run.key_mode %q is not supported (unique, url)", c.Run.KeyMode)
	}
	if c.Run.CheckpointTTL == 0 {
		c.Run.CheckpointTTL = 30 * time.Minute
	}
	if c.Run.Timeout < 0 {
		return fmt.Errorf("run.timeout must not be negative")
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
