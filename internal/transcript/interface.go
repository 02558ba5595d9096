package transcript

import "context"

// Provider fetches the caption segments of a video, trying languages in order.
type Provider interface {
	FetchTranscript(ctx context.Context, videoID string, languages []string) ([]Segment, error)
}
