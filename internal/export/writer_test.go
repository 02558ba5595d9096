package export

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-digest/internal/agent"
	"github.com/nguyentantai21042004/video-digest/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successState() agent.VideoState {
	s := agent.NewVideoState("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	s.VideoID = "dQw4w9WgXcQ"
	s.Transcript = "Hello world. This is a test."
	s.Summary = "## 📝 RESUMO EXECUTIVO\nUm vídeo sobre **testes**.\n- ponto um"
	s.Status = agent.StatusSummaryGenerated
	return s
}

func TestWriteMarkdown(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, Options{Markdown: true}, nil)

	paths, err := w.Write(context.Background(), successState(), metadata.Video{})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "resumo_dQw4w9WgXcQ.md"), paths[0])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	want := "# Resumo do Vídeo\n\n" +
		"**URL:** https://www.youtube.com/watch?v=dQw4w9WgXcQ\n" +
		"**ID:** dQw4w9WgXcQ\n\n" +
		successState().Summary
	assert.Equal(t, want, string(data))
}

func TestWriteMarkdownWithMetadata(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, Options{Markdown: true}, nil)

	video := metadata.Video{
		ID:          "dQw4w9WgXcQ",
		Title:       "Never Gonna Give You Up",
		Channel:     "Rick Astley",
		PublishedAt: "2009-10-25T06:57:33Z",
		Duration:    "PT3M33S",
	}
	paths, err := w.Write(context.Background(), successState(), video)
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Resumo do Vídeo\n\n"+
		"**Título:** Never Gonna Give You Up\n"+
		"**Canal:** Rick Astley\n"+
		"**Publicado em:** 2009-10-25T06:57:33Z\n"+
		"**Duração:** 3:33\n"+
		"**URL:**")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT3M33S", "3:33"},
		{"PT1H2M3S", "1:02:03"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"P1DT2H", "P1DT2H"},
		{"PT", "PT"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.in), tt.in)
	}
}

func TestWriteDocx(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, Options{Docx: true}, nil)

	paths, err := w.Write(context.Background(), successState(), metadata.Video{Title: "Meu Vídeo"})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	summary := documentXML(t, filepath.Join(dir, "resumo_dQw4w9WgXcQ.docx"))
	assert.Contains(t, summary, "Meu Vídeo")
	assert.Contains(t, summary, "RESUMO EXECUTIVO")
	assert.Contains(t, summary, "testes")
	assert.NotContains(t, summary, "**")

	assert.True(t, runIsBold(summary, "RESUMO EXECUTIVO"), "heading run should be bold")
	assert.True(t, runIsBold(summary, "testes"), "**testes** should be a bold run")
	assert.False(t, runIsBold(summary, "Um vídeo sobre"), "plain text should not be bold")
	assert.Contains(t, summary, "• ponto um")

	transcript := documentXML(t, filepath.Join(dir, "transcricao_dQw4w9WgXcQ.docx"))
	assert.Contains(t, transcript, "Hello world.")
}

func TestWriteRejectsFailedRuns(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, Options{Markdown: true, Docx: true}, nil)

	s := agent.NewVideoState("https://youtu.be/dQw4w9WgXcQ")
	s.Status = agent.StatusErrorHandled

	paths, err := w.Write(context.Background(), s, metadata.Video{})
	assert.ErrorIs(t, err, ErrNotSummarized)
	assert.Empty(t, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteNoFormats(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := New(dir, Options{}, nil).Write(context.Background(), successState(), metadata.Video{})
	require.NoError(t, err)
	assert.Empty(t, paths)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "  ", want: nil},
		{name: "no punctuation", in: "just words from auto captions", want: []string{"just words from auto captions"}},
		{name: "few sentences", in: "One. Two! Three?", want: []string{"One. Two! Three?"}},
		{
			name: "grouped",
			in:   "A. B. C. D. E. F. G",
			want: []string{"A. B. C. D. E.", "F. G"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitParagraphs(tt.in))
		})
	}
}

var reBoldProp = regexp.MustCompile(`<w:b[ />]`)

// runIsBold reports whether the run holding text carries a bold property.
func runIsBold(doc, text string) bool {
	for _, run := range strings.Split(doc, "</w:r>") {
		if strings.Contains(run, text) {
			if i := strings.LastIndex(run, "<w:r>"); i >= 0 {
				run = run[i:]
			} else if i := strings.LastIndex(run, "<w:r "); i >= 0 {
				run = run[i:]
			}
			return reBoldProp.MatchString(run)
		}
	}
	return false
}

func TestHeadingSize(t *testing.T) {
	assert.Equal(t, uint64(16), headingSize(1))
	assert.Equal(t, uint64(15), headingSize(2))
	assert.Equal(t, uint64(14), headingSize(3))
	assert.Equal(t, uint64(fontSize), headingSize(4))
}

func TestCleanMarkdownInline(t *testing.T) {
	assert.Equal(t, "bold under code", cleanMarkdownInline("**bold** __under__ `code`"))
}

func documentXML(t *testing.T, path string) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("word/document.xml not found in %s", path)
	return ""
}

func TestRenderMarkdownKeepsSummaryVerbatim(t *testing.T) {
	s := successState()
	md := renderMarkdown(s, metadata.Video{})
	assert.True(t, strings.HasSuffix(md, s.Summary))
}
