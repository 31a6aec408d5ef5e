package rdfopts

import "sync"

// ProgramCache stores compiled expression programs keyed by engine and
// expression.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache on the World.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *worldConfig) {
		cfg.programCache = cache
	}
}

type memoryProgramCache struct {
	mu       sync.RWMutex
	programs map[string]any
}

// NewMemoryProgramCache returns an unbounded, concurrency-safe ProgramCache.
func NewMemoryProgramCache() ProgramCache {
	return &memoryProgramCache{programs: map[string]any{}}
}

func (c *memoryProgramCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.programs[key]
	return value, ok
}

func (c *memoryProgramCache) Set(key string, value any) {
	c.mu.Lock()
	c.programs[key] = value
	c.mu.Unlock()
}

func cacheKey(engine, expression string) string {
	return engine + ":" + expression
}
