package services

import (
	"sync"
	"time"

	"nascli/internal/dataprocessing"
)

// datasetSnapshot is one parsed dataset version.
type datasetSnapshot struct {
	dataset     *dataprocessing.Dataset
	source      string
	fingerprint string
	loadedAt    time.Time
}

// datasetCache holds at most one snapshot, the current dataset version.
type datasetCache struct {
	mu   sync.RWMutex
	snap *datasetSnapshot
}

func (c *datasetCache) get(fingerprint string) (*datasetSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil || c.snap.fingerprint != fingerprint {
		return nil, false
	}
	return c.snap, true
}

func (c *datasetCache) put(snap *datasetSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
}

func (c *datasetCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = nil
}
