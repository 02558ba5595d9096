package agent

import "context"

// handleError marks a failed run as finalized. Only Status changes.
func (a *implAgent) handleError(ctx context.Context, state VideoState) VideoState {
	a.logger.Warn(ctx, "Run failed: %s", state.ErrMessage())
	return state.withStatus(StatusErrorHandled)
}
