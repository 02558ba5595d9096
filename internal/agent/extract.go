package agent

import (
	"context"
	"net"
	"net/url"
	"regexp"
	"strings"
)

const (
	msgInvalidURL = "invalid URL provided"
	msgNoVideoID  = "could not extract video ID; verify this is a valid video URL"
)

// Tried in order; the first match wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
}

// extractVideoID validates the URL and pulls the 11-character video id out of it.
func (a *implAgent) extractVideoID(ctx context.Context, state VideoState) VideoState {
	if !isValidURL(state.URL) {
		a.logger.Warn(ctx, "Rejected malformed URL: %q", state.URL)
		return state.withError(msgInvalidURL)
	}

	id := matchVideoID(state.URL)
	if id == "" {
		a.logger.Warn(ctx, "No video ID in URL: %s", state.URL)
		return state.withError(msgNoVideoID)
	}

	a.logger.Info(ctx, "Extracted video ID: %s", id)
	return state.withVideoID(id)
}

func matchVideoID(raw string) string {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return ""
}

// isValidURL accepts absolute http(s) URLs whose host is a dotted domain,
// localhost or an IP address.
func isValidURL(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := u.Hostname()
	switch {
	case host == "":
		return false
	case host == "localhost", net.ParseIP(host) != nil:
		return true
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}
