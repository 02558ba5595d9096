package export

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/video-digest/internal/agent"
	"github.com/nguyentantai21042004/video-digest/internal/metadata"
)

// ErrNotSummarized is returned for states that did not reach resumo_gerado.
var ErrNotSummarized = errors.New("state has no summary to export")

// Writer saves a finished summary to disk.
type Writer interface {
	// Write renders state in every enabled format and returns the written paths.
	// Empty video fields are left out of the header.
	Write(ctx context.Context, state agent.VideoState, video metadata.Video) ([]string, error)
}
