package agent

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// checkpointStore keeps the latest state of each run in memory until the TTL expires.
type checkpointStore struct {
	items *cache.Cache
}

func newCheckpointStore(ttl time.Duration) *checkpointStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &checkpointStore{items: cache.New(ttl, ttl*2)}
}

func (c *checkpointStore) save(key string, state VideoState) {
	c.items.SetDefault(key, state)
}

func (c *checkpointStore) load(key string) (VideoState, bool) {
	v, ok := c.items.Get(key)
	if !ok {
		return VideoState{}, false
	}
	state, ok := v.(VideoState)
	return state, ok
}
