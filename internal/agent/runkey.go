package agent

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// KeyFunc derives the run key a checkpoint is stored under.
type KeyFunc func(url string) string

// UniqueKey returns a fresh key for every call, so concurrent runs of the
// same URL never share a checkpoint.
func UniqueKey(string) string {
	return "video_" + uuid.NewString()
}

// URLKey derives the key from the URL alone. Two concurrent runs of the same
// URL share one checkpoint and overwrite each other's snapshots; use it only
// when resuming by URL is wanted.
func URLKey(url string) string {
	return fmt.Sprintf("video_%016x", xxhash.Sum64String(url))
}
