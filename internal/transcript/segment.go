package transcript

import (
	"errors"
	"strings"
)

var (
	// ErrNoCaptions means the video exposes no caption tracks at all.
	ErrNoCaptions = errors.New("no captions available")
	// ErrNoTranscriptFound means captions exist but none in the requested languages.
	ErrNoTranscriptFound = errors.New("no transcript found for the requested languages")
)

// Segment is one timed caption unit.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Join concatenates the segment texts separated by a single space.
func Join(segments []Segment) string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}
