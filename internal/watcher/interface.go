package watcher

import "context"

// Watcher monitors a drop folder for files holding video URLs.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one URL read from a drop file.
type Handler func(ctx context.Context, url, source string) error
