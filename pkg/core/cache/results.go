package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/msto63/drawlang/foundation/drawlang"
)

// ResultCache remembers parse results by the content of the token stream,
// so a file that returns to an earlier state is not parsed again
type ResultCache struct {
	cache  *Cache[*drawlang.Result]
	engine *drawlang.Engine
}

// NewResultCache creates a result cache in front of engine
func NewResultCache(engine *drawlang.Engine, cfg Config) *ResultCache {
	return &ResultCache{
		cache:  New[*drawlang.Result](cfg),
		engine: engine,
	}
}

// Key returns the content digest used as cache key
func Key(source string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Parse returns the cached result for data or parses it. cached reports
// whether the result came from the cache. Failed parses are not stored.
func (r *ResultCache) Parse(ctx context.Context, source string, data []byte) (res *drawlang.Result, cached bool, err error) {
	key := Key(source, data)
	if res, ok := r.cache.Get(key); ok {
		return res, true, nil
	}

	res, err = r.engine.ParseBytes(ctx, source, data)
	if err != nil {
		return nil, false, err
	}
	r.cache.Set(key, res)
	return res, false, nil
}

// Stats returns hit and miss counts of the underlying cache
func (r *ResultCache) Stats() (hits, misses int64, hitRate float64) {
	return r.cache.Stats()
}

// Close stops background cleanup
func (r *ResultCache) Close() {
	r.cache.Close()
}
