package harvest

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// bodyCache remembers response bodies already scanned so identical payloads
// (polling endpoints, repeated XHRs) are not rescanned. Item-level
// deduplication still lives exclusively in the store; this only skips
// redundant text scans.
type bodyCache struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
}

func newBodyCache() *bodyCache {
	return &bodyCache{seen: make(map[uint64]struct{})}
}

// firstSighting records body and reports whether it had not been seen
// before.
func (c *bodyCache) firstSighting(body string) bool {
	sum := xxhash.Sum64String(body)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[sum]; ok {
		return false
	}
	c.seen[sum] = struct{}{}
	return true
}
