package agent

import (
	"context"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/video-digest/internal/transcript"
	"github.com/stretchr/testify/require"
)

type stubTranscripts struct {
	mu       sync.Mutex
	segments []transcript.Segment
	err      error
	panicMsg string
	calls    int
	gotID    string
	gotLangs []string
}

func (s *stubTranscripts) FetchTranscript(_ context.Context, videoID string, languages []string) ([]transcript.Segment, error) {
	s.mu.Lock()
	s.calls++
	s.gotID = videoID
	s.gotLangs = languages
	s.mu.Unlock()

	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.segments, s.err
}

type stubGenerator struct {
	mu        sync.Mutex
	out       string
	err       error
	calls     int
	gotPrompt string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.gotPrompt = prompt
	return g.out, g.err
}

func newTestAgent(t *testing.T, tp TranscriptProvider, gen Generator) *implAgent {
	t.Helper()
	a, err := New(Options{Transcripts: tp, Generator: gen})
	require.NoError(t, err)
	return a.(*implAgent)
}
