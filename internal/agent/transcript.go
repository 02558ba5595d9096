package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/transcript"
)

// fetchTranscript asks the provider for captions and joins the segment texts.
// Every provider failure is reported the same way.
func (a *implAgent) fetchTranscript(ctx context.Context, state VideoState) VideoState {
	a.logger.Info(ctx, "Fetching transcript for %s (languages: %s)", state.VideoID, strings.Join(a.languages, ","))

	segments, err := guard(func() ([]transcript.Segment, error) {
		return a.transcripts.FetchTranscript(ctx, state.VideoID, a.languages)
	})
	if err != nil {
		a.logger.Error(ctx, "Transcript fetch failed for %s: %v", state.VideoID, err)
		return state.withError(fmt.Sprintf("error obtaining transcript: %v. The video may not have captions available.", err))
	}

	text := transcript.Join(segments)
	a.logger.Info(ctx, "Transcript obtained: %d segments, %d bytes", len(segments), len(text))
	return state.withTranscript(text)
}

// guard runs fn and turns a panic into an error.
func guard[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
