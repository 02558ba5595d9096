package transcript

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

// New builds the Provider selected by cfg.Transcript.Provider.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Provider, error) {
	switch cfg.Transcript.Provider {
	case config.TranscriptYouTube, "":
		client := &http.Client{Timeout: cfg.Transcript.HTTPTimeout}
		return NewYouTube(client, "", log), nil
	case config.TranscriptYtDlp:
		return NewYtDlp(cfg.Transcript.YtDlpBinary, exec, "", log), nil
	default:
		return nil, fmt.Errorf("unknown transcript provider %q", cfg.Transcript.Provider)
	}
}
