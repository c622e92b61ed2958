package rpc

import (
	"strings"

	"github.com/VictoriaMetrics/fastcache"
)

// resultCache maps a method and its canonical operands to the JSON encoded
// result. Only pure computations go through it.
type resultCache struct {
	c *fastcache.Cache
}

func newResultCache(mb int) *resultCache {
	return &resultCache{c: fastcache.New(mb * 1024 * 1024)}
}

func (rc *resultCache) get(key []byte) ([]byte, bool) {
	return rc.c.HasGet(nil, key)
}

func (rc *resultCache) set(key, val []byte) {
	rc.c.Set(key, val)
}

func (rc *resultCache) entries() uint64 {
	var s fastcache.Stats
	rc.c.UpdateStats(&s)
	return s.EntriesCount
}

func cacheKey(method string, args ...string) []byte {
	return []byte(method + "\x00" + strings.Join(args, "\x00"))
}
