package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

// json3 is yt-dlp's native YouTube subtitle format.
type json3 struct {
	Events []struct {
		StartMs    float64 `json:"tStartMs"`
		DurationMs float64 `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

type implYtDlp struct {
	binary   string
	executor executor.Executor
	tempDir  string
	logger   logger.Logger
}

// NewYtDlp returns a Provider that shells out to yt-dlp to download subtitles.
// tempDir may be empty to use the system temp directory.
func NewYtDlp(binary string, exec executor.Executor, tempDir string, log logger.Logger) Provider {
	if binary == "" {
		binary = "yt-dlp"
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &implYtDlp{
		binary:   binary,
		executor: exec,
		tempDir:  tempDir,
		logger:   log,
	}
}

// FetchTranscript downloads manual and automatic subtitles for languages and
// parses the first language that produced a file.
func (y *implYtDlp) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]Segment, error) {
	workDir, err := os.MkdirTemp(y.tempDir, "subs-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-format", "json3",
		"--sub-langs", strings.Join(languages, ","),
		"--no-warnings",
		"-o", "%(id)s.%(ext)s",
		"https://www.youtube.com/watch?v=" + videoID,
	}

	if _, err := y.executor.ExecuteInDir(ctx, workDir, y.binary, args...); err != nil {
		return nil, fmt.Errorf("yt-dlp subtitles: %w", err)
	}

	for _, lang := range languages {
		path := filepath.Join(workDir, videoID+"."+lang+".json3")
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read subtitles: %w", err)
		}
		y.logger.Debug(ctx, "Using yt-dlp subtitles %s for %s", lang, videoID)
		return parseJSON3(data)
	}

	return nil, fmt.Errorf("%w: requested %v", ErrNoTranscriptFound, languages)
}

func parseJSON3(data []byte) ([]Segment, error) {
	var doc json3
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json3 subtitles: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Events))
	for _, ev := range doc.Events {
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(strings.ReplaceAll(sb.String(), "\n", " "))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    ev.StartMs / 1000,
			Duration: ev.DurationMs / 1000,
		})
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: subtitle file is empty", ErrNoCaptions)
	}
	return segments, nil
}
