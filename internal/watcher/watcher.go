package watcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

const (
	doneSuffix   = ".done"
	failedSuffix = ".failed"
)

var dropExtensions = []string{".url", ".txt"}

type implWatcher struct {
	inputDir      string
	handler       Handler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	settle        time.Duration
	sem           *semaphore
	wg            sync.WaitGroup

	mu   sync.Mutex
	seen map[string]struct{} // pending or in-flight paths
}

// Start handles drop files already present, then every new one, until ctx
// is cancelled. It waits for running handlers before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Drop-folder watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(dropExtensions, ", "))

	defer func() {
		w.logger.Info(ctx, "Waiting for ongoing runs to complete...")
		w.wg.Wait()
		w.logger.Info(ctx, "Drop-folder watcher stopped")
	}()

	pending, err := w.existingDropFiles()
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	for _, path := range pending {
		if err := w.dispatch(ctx, path, 0); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isDropFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New drop file detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name, w.settle); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// dispatch blocks until a handler slot is free, then handles path in a goroutine.
// A path is dispatched once while it is pending or in flight; a file created
// between New and Start is seen by both the startup scan and its create event.
func (w *implWatcher) dispatch(ctx context.Context, path string, settle time.Duration) error {
	if !w.claim(path) {
		w.logger.Debug(ctx, "Already dispatched: %s", path)
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		w.release(path)
		w.logger.Debug(ctx, "Drop file gone before dispatch: %s", path)
		return nil
	}
	if err := w.sem.acquire(ctx); err != nil {
		w.release(path)
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.release()
		defer w.release(path)

		if settle > 0 {
			select {
			case <-time.After(settle):
			case <-ctx.Done():
				return
			}
		}
		w.handle(ctx, path)
	}()
	return nil
}

// claim records path as dispatched and reports whether it was new.
func (w *implWatcher) claim(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.seen[path]; ok {
		return false
	}
	w.seen[path] = struct{}{}
	return true
}

func (w *implWatcher) release(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.seen, path)
}

func (w *implWatcher) handle(ctx context.Context, path string) {
	suffix := doneSuffix

	url, err := readURL(path)
	if err == nil {
		err = w.handler(ctx, url, path)
	}
	if err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		suffix = failedSuffix
	}

	if err := os.Rename(path, path+suffix); err != nil {
		w.logger.Warn(ctx, "Failed to mark %s as %s: %v", path, strings.TrimPrefix(suffix, "."), err)
	}
}

func (w *implWatcher) existingDropFiles() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if isDropFile(e.Name()) {
			files = append(files, filepath.Join(w.inputDir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// readURL returns the first non-blank line that is not a # comment.
func readURL(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open drop file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read drop file: %w", err)
	}
	return "", errors.New("drop file holds no URL")
}

func isDropFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range dropExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
