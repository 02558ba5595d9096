package metadata

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrNotFound is returned when the API knows no video with the given id.
var ErrNotFound = errors.New("video not found")

// Video holds the snippet fields used to title exported summaries.
type Video struct {
	ID          string
	Title       string
	Channel     string
	PublishedAt string
	Duration    string
}

// Fetcher looks up video metadata.
type Fetcher interface {
	FetchVideo(ctx context.Context, videoID string) (Video, error)
}

type implYouTube struct {
	service *youtube.Service
}

// NewYouTube creates a Fetcher backed by the YouTube Data API v3.
func NewYouTube(ctx context.Context, apiKey string, opts ...option.ClientOption) (Fetcher, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &implYouTube{service: svc}, nil
}

// FetchVideo returns snippet and duration for one video.
func (y *implYouTube) FetchVideo(ctx context.Context, videoID string) (Video, error) {
	resp, err := y.service.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return Video{}, fmt.Errorf("list videos: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return Video{}, fmt.Errorf("%w: %s", ErrNotFound, videoID)
	}

	item := resp.Items[0]
	v := Video{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Channel:     item.Snippet.ChannelTitle,
		PublishedAt: item.Snippet.PublishedAt,
	}
	if item.ContentDetails != nil {
		v.Duration = item.ContentDetails.Duration
	}
	return v, nil
}
