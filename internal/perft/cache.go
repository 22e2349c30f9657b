package perft

import (
	"sync"

	"gomokugen/internal/gomoku"
)

// Cache memoizes subtree counts. Implementations must key on the exact
// (cell contents, depth) pair.
type Cache interface {
	Lookup(key gomoku.Key, depth int) (uint64, bool)
	Store(key gomoku.Key, depth int, nodes uint64)
}

type entryKey struct {
	cells gomoku.Key
	depth int
}

// MapCache is a plain map. Not safe for concurrent use.
type MapCache struct {
	m   map[entryKey]uint64
	cap int
}

// NewMapCache returns a cache that is cleared whenever it grows past
// capacity entries. capacity <= 0 means unbounded.
func NewMapCache(capacity int) *MapCache {
	return &MapCache{m: make(map[entryKey]uint64, 1<<12), cap: capacity}
}

func (c *MapCache) Lookup(key gomoku.Key, depth int) (uint64, bool) {
	n, ok := c.m[entryKey{key, depth}]
	return n, ok
}

func (c *MapCache) Store(key gomoku.Key, depth int, nodes uint64) {
	if c.cap > 0 && len(c.m) >= c.cap {
		c.m = make(map[entryKey]uint64, 1<<12)
	}
	c.m[entryKey{key, depth}] = nodes
}

func (c *MapCache) Len() int { return len(c.m) }

type shard struct {
	mu sync.RWMutex
	m  map[entryKey]uint64
}

// ShardedCache spreads entries over independently locked shards chosen by
// Key.Hash, so parallel perft workers can share it.
type ShardedCache struct {
	shards []shard
	cap    int // per shard, <= 0 unbounded
}

func NewShardedCache(shards, capacity int) *ShardedCache {
	if shards < 1 {
		shards = 1
	}
	c := &ShardedCache{shards: make([]shard, shards)}
	if capacity > 0 {
		c.cap = (capacity + shards - 1) / shards
	}
	for i := range c.shards {
		c.shards[i].m = make(map[entryKey]uint64, 1<<8)
	}
	return c
}

func (c *ShardedCache) shardFor(key gomoku.Key) *shard {
	return &c.shards[key.Hash()%uint64(len(c.shards))]
}

func (c *ShardedCache) Lookup(key gomoku.Key, depth int) (uint64, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	n, ok := s.m[entryKey{key, depth}]
	s.mu.RUnlock()
	return n, ok
}

func (c *ShardedCache) Store(key gomoku.Key, depth int, nodes uint64) {
	s := c.shardFor(key)
	s.mu.Lock()
	if c.cap > 0 && len(s.m) >= c.cap {
		s.m = make(map[entryKey]uint64, 1<<8)
	}
	s.m[entryKey{key, depth}] = nodes
	s.mu.Unlock()
}

func (c *ShardedCache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.m)
		s.mu.RUnlock()
	}
	return n
}
