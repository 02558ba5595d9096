package watcher

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

// Options tunes a Watcher.
type Options struct {
	// MaxConcurrent bounds how many handlers run at once. Defaults to 2.
	MaxConcurrent int
	// Settle is how long to wait after a create event before reading the
	// file. Defaults to 500ms.
	Settle time.Duration
}

// New creates a Watcher on inputDir, creating the directory if needed.
func New(inputDir string, handler Handler, log logger.Logger, opts Options) (Watcher, error) {
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return nil, fmt.Errorf("create input dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Settle <= 0 {
		opts.Settle = 500 * time.Millisecond
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: opts.MaxConcurrent,
		settle:        opts.Settle,
		sem:           newSemaphore(opts.MaxConcurrent),
		seen:          make(map[string]struct{}),
	}, nil
}
