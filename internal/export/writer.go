package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/agent"
	"github.com/nguyentantai21042004/video-digest/internal/metadata"
)

var reISODuration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// Write saves the summary of a successful run. Nothing is written for failed runs.
func (w *implWriter) Write(ctx context.Context, state agent.VideoState, video metadata.Video) ([]string, error) {
	if !state.Succeeded() {
		return nil, fmt.Errorf("%w (status %s)", ErrNotSummarized, state.Status)
	}
	if !w.opts.Markdown && !w.opts.Docx {
		return nil, nil
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	md := renderMarkdown(state, video)
	var written []string

	if w.opts.Markdown {
		mdPath := filepath.Join(w.dir, "resumo_"+state.VideoID+".md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", mdPath, err)
		}
		written = append(written, mdPath)
	}

	if w.opts.Docx {
		docTitle := video.Title
		if docTitle == "" {
			docTitle = "Resumo do Vídeo " + state.VideoID
		}

		summaryPath := filepath.Join(w.dir, "resumo_"+state.VideoID+".docx")
		if err := markdownToDocx(docTitle, md, summaryPath); err != nil {
			return written, fmt.Errorf("write %s: %w", summaryPath, err)
		}
		written = append(written, summaryPath)

		transcriptPath := filepath.Join(w.dir, "transcricao_"+state.VideoID+".docx")
		if err := transcriptToDocx("Transcrição "+state.VideoID, state.Transcript, transcriptPath); err != nil {
			return written, fmt.Errorf("write %s: %w", transcriptPath, err)
		}
		written = append(written, transcriptPath)
	}

	w.logger.Info(ctx, "Exported %s -> %s", state.VideoID, strings.Join(written, ", "))
	return written, nil
}

func renderMarkdown(state agent.VideoState, video metadata.Video) string {
	var sb strings.Builder
	sb.WriteString("# Resumo do Vídeo\n\n")
	field(&sb, "Título", video.Title)
	field(&sb, "Canal", video.Channel)
	field(&sb, "Publicado em", video.PublishedAt)
	field(&sb, "Duração", formatDuration(video.Duration))
	fmt.Fprintf(&sb, "**URL:** %s\n", state.URL)
	fmt.Fprintf(&sb, "**ID:** %s\n\n", state.VideoID)
	sb.WriteString(state.Summary)
	return sb.String()
}

func field(sb *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(sb, "**%s:** %s\n", label, value)
	}
}

// formatDuration turns an ISO 8601 duration such as PT1H2M3S into 1:02:03.
// Values it cannot read are returned unchanged.
func formatDuration(iso string) string {
	m := reISODuration.FindStringSubmatch(iso)
	if m == nil || iso == "PT" {
		return iso
	}

	var parts [3]int
	for i := range parts {
		if m[i+1] != "" {
			parts[i], _ = strconv.Atoi(m[i+1])
		}
	}
	hours, mins, secs := parts[0], parts[1], parts[2]
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}
