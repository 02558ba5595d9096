package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantID  string
		wantErr string
	}{
		{name: "watch url", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ"},
		{name: "short url", url: "https://youtu.be/dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ"},
		{name: "embed url", url: "https://www.youtube.com/embed/dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ"},
		{name: "v after other params", url: "https://www.youtube.com/watch?feature=share&v=abc_DEF-123", wantID: "abc_DEF-123"},
		{name: "extra params after id", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", wantID: "dQw4w9WgXcQ"},
		{name: "http scheme", url: "http://youtube.com/watch?v=dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ"},
		{name: "empty", url: "", wantErr: msgInvalidURL},
		{name: "no scheme", url: "not a url", wantErr: msgInvalidURL},
		{name: "ftp scheme", url: "ftp://youtube.com/watch?v=dQw4w9WgXcQ", wantErr: msgInvalidURL},
		{name: "single label host", url: "https://youtube/watch?v=dQw4w9WgXcQ", wantErr: msgInvalidURL},
		{name: "valid url no id", url: "https://example.com/page", wantErr: msgNoVideoID},
		{name: "id too short", url: "https://youtu.be/short", wantErr: msgNoVideoID},
		{name: "channel page", url: "https://www.youtube.com/@somechannel", wantErr: msgNoVideoID},
	}

	a := newTestAgent(t, &stubTranscripts{}, &stubGenerator{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := NewVideoState(tt.url)
			got := a.extractVideoID(context.Background(), before)

			assert.Equal(t, tt.url, got.URL)
			if tt.wantErr != "" {
				assert.Equal(t, StatusError, got.Status)
				require.NotNil(t, got.Err)
				assert.Equal(t, tt.wantErr, *got.Err)
				assert.Empty(t, got.VideoID)
				return
			}
			assert.Equal(t, StatusIDExtracted, got.Status)
			assert.Equal(t, tt.wantID, got.VideoID)
			assert.Nil(t, got.Err)
		})
	}
}

func TestExtractRoundTrip(t *testing.T) {
	ids := []string{"dQw4w9WgXcQ", "___________", "-a-b-c-d-e-", "ABCDEFGHIJK", "0123456789_"}
	shapes := []string{
		"https://www.youtube.com/watch?v=%s",
		"https://youtu.be/%s",
		"https://www.youtube.com/embed/%s",
	}

	for _, id := range ids {
		for _, shape := range shapes {
			u := fmt.Sprintf(shape, id)
			assert.Equal(t, id, matchVideoID(u), u)
		}
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=x", true},
		{"http://localhost:8080/watch?v=x", true},
		{"http://127.0.0.1/x", true},
		{"https://example.com", true},
		{"", false},
		{"youtube.com/watch?v=x", false},
		{"https://", false},
		{"https://bad..host/x", false},
		{"https://you tube.com/x", false},
		{"mailto:someone@example.com", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isValidURL(tt.url), tt.url)
	}
}
