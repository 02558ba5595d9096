package agent

import (
	"context"

	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

// Agent turns a video URL into a summarized VideoState.
type Agent interface {
	// Process runs the pipeline for url and returns the final state. Failures
	// are reported through the state's Status and Err, never as a Go error.
	Process(ctx context.Context, url string) VideoState
	// Run is Process that also returns the run key the checkpoint is stored under.
	Run(ctx context.Context, url string) (string, VideoState)
	// Checkpoint returns the latest state stored for a run key.
	Checkpoint(key string) (VideoState, bool)
}

// TranscriptProvider fetches caption segments for a video, trying languages in order.
type TranscriptProvider interface {
	FetchTranscript(ctx context.Context, videoID string, languages []string) ([]transcript.Segment, error)
}

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
