package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

const (
	defaultWatchBase  = "https://www.youtube.com"
	playerRespMarker  = "ytInitialPlayerResponse = "
	maxWatchPageBytes = 6 * 1024 * 1024
	maxTimedTextBytes = 4 * 1024 * 1024
	userAgent         = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

var reTags = regexp.MustCompile(`<[^>]*>`)

type playerResponse struct {
	Captions *struct {
		Renderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type timedText struct {
	Lines []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Text  string `xml:",chardata"`
	} `xml:"text"`
}

type implYouTube struct {
	client  *http.Client
	baseURL string
	logger  logger.Logger
}

// NewYouTube returns a Provider that reads caption tracks from the public
// watch page. baseURL may be empty to use youtube.com.
func NewYouTube(client *http.Client, baseURL string, log logger.Logger) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultWatchBase
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &implYouTube{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  log,
	}
}

// FetchTranscript scrapes the watch page for caption tracks, picks the best
// one for languages and parses its timedtext XML.
func (y *implYouTube) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]Segment, error) {
	tracks, err := y.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, ok := pickTrack(tracks, languages)
	if !ok {
		available := make([]string, 0, len(tracks))
		for _, t := range tracks {
			available = append(available, t.LanguageCode)
		}
		return nil, fmt.Errorf("%w: requested %v, available %v", ErrNoTranscriptFound, languages, available)
	}

	y.logger.Debug(ctx, "Using caption track %s (kind=%q) for %s", track.LanguageCode, track.Kind, videoID)
	return y.timedText(ctx, track.BaseURL)
}

func (y *implYouTube) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	watchURL := y.baseURL + "/watch?v=" + url.QueryEscape(videoID)

	body, err := y.get(ctx, watchURL, maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	idx := strings.Index(string(body), playerRespMarker)
	if idx < 0 {
		return nil, fmt.Errorf("watch page: player response not found")
	}
	raw := extractJSON(body[idx+len(playerRespMarker):])
	if raw == nil {
		return nil, fmt.Errorf("watch page: malformed player response")
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}

	if player.Captions == nil || len(player.Captions.Renderer.CaptionTracks) == 0 {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("%w: %s", ErrNoCaptions, player.PlayabilityStatus.Reason)
		}
		return nil, ErrNoCaptions
	}
	return player.Captions.Renderer.CaptionTracks, nil
}

func (y *implYouTube) timedText(ctx context.Context, trackURL string) ([]Segment, error) {
	body, err := y.get(ctx, trackURL, maxTimedTextBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := strings.TrimSpace(reTags.ReplaceAllString(html.UnescapeString(line.Text), ""))
		if text == "" {
			continue
		}
		start, _ := strconv.ParseFloat(line.Start, 64)
		dur, _ := strconv.ParseFloat(line.Dur, 64)
		segments = append(segments, Segment{Text: text, Start: start, Duration: dur})
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: caption track is empty", ErrNoCaptions)
	}
	return segments, nil
}

func (y *implYouTube) get(ctx context.Context, target string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

// pickTrack walks languages in order; within a language a manual track wins
// over an auto-generated one.
func pickTrack(tracks []captionTrack, languages []string) (captionTrack, bool) {
	for _, lang := range languages {
		var generated *captionTrack
		for i, t := range tracks {
			if t.LanguageCode != lang {
				continue
			}
			if t.Kind != "asr" {
				return t, true
			}
			if generated == nil {
				generated = &tracks[i]
			}
		}
		if generated != nil {
			return *generated, true
		}
	}
	return captionTrack{}, false
}

// extractJSON returns the balanced JSON object at the start of b.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
