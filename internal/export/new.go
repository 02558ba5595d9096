package export

import (
	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

// Options selects the output formats.
type Options struct {
	Markdown bool
	Docx     bool
}

type implWriter struct {
	dir    string
	opts   Options
	logger logger.Logger
}

// New creates a Writer that saves into dir.
func New(dir string, opts Options, log logger.Logger) Writer {
	if log == nil {
		log = logger.NewNop()
	}
	return &implWriter{
		dir:    dir,
		opts:   opts,
		logger: log,
	}
}
