package agent

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

// Process runs the pipeline for url and returns the final state.
func (a *implAgent) Process(ctx context.Context, url string) VideoState {
	_, state := a.Run(ctx, url)
	return state
}

// Run executes the step graph starting at the id extractor, checkpointing
// every intermediate state under a run key.
func (a *implAgent) Run(ctx context.Context, url string) (string, VideoState) {
	startTime := time.Now()
	key := a.key(url)
	ctx = logger.WithRunKey(ctx, key)

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	a.logger.Info(ctx, "Processing video: %s", url)

	state := NewVideoState(url)
	a.checkpoints.save(key, state)

	current := nodeExtract
	for {
		a.logger.Debug(ctx, "Running step %s (status %s)", current, state.Status)
		state = a.step(ctx, current, state)
		a.checkpoints.save(key, state)

		n, ok := next(current, state)
		if !ok {
			break
		}
		current = n
	}

	recordRun(state, startTime)
	a.logger.Info(ctx, "Run finished with status %s in %s", state.Status, time.Since(startTime))
	return key, state
}

// Checkpoint returns the latest snapshot stored under key.
func (a *implAgent) Checkpoint(key string) (VideoState, bool) {
	return a.checkpoints.load(key)
}

func (a *implAgent) step(ctx context.Context, n node, state VideoState) VideoState {
	switch n {
	case nodeExtract:
		return a.extractVideoID(ctx, state)
	case nodeTranscript:
		return a.fetchTranscript(ctx, state)
	case nodeSummary:
		return a.generateSummary(ctx, state)
	default:
		return a.handleError(ctx, state)
	}
}
