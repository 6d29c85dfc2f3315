package cache

import (
	"context"
	"time"

	"compass-backend/pkg/logger"
)

// DefaultPageTTL keeps cached page data well under the CDN's max-age so a
// missed purge heals itself quickly.
const DefaultPageTTL = 10 * time.Minute

// PageCache stores marshalled page view data in Redis. Every method is
// nil-safe: with no Redis configured the site simply fetches from the CMS
// on every request.
type PageCache struct {
	redis *RedisClient
	ttl   time.Duration
}

func NewPageCache(r *RedisClient, ttl time.Duration) *PageCache {
	if r == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{redis: r, ttl: ttl}
}

// PostKey names the cached detail view for a slug.
func PostKey(slug string, preview bool) string {
	if preview {
		return "page:post:" + slug + ":preview"
	}
	return "page:post:" + slug
}

// ListKey names the cached front-page list.
func ListKey(preview bool) string {
	if preview {
		return "page:list:preview"
	}
	return "page:list"
}

func (p *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if p == nil {
		return nil, false
	}

	val, err := p.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (p *PageCache) Set(ctx context.Context, key string, val []byte) {
	if p == nil {
		return
	}

	if err := p.redis.Client.Set(ctx, key, val, p.ttl).Err(); err != nil {
		logger.Warn("page cache set failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Invalidate drops keys best-effort; a failed delete only means a stale
// entry lives until its TTL.
func (p *PageCache) Invalidate(ctx context.Context, keys ...string) {
	if p == nil || len(keys) == 0 {
		return
	}

	if err := p.redis.Client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("page cache invalidate failed", map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
	}
}

// InvalidateSlug drops every cached view a content change can affect:
// both detail variants plus both list variants.
func (p *PageCache) InvalidateSlug(ctx context.Context, slug string) {
	p.Invalidate(ctx,
		PostKey(slug, false),
		PostKey(slug, true),
		ListKey(false),
		ListKey(true),
	)
}
