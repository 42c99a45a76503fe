package identity

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/statsbot-lab/guild-stats/internal/metrics"
)

const (
	kindUser    = "user"
	kindChannel = "channel"

	// Bounds a shared lookup once it no longer follows any caller's context.
	sharedLookupTimeout = 15 * time.Second
)

// Cached fronts a Resolver with an in-process LRU, an optional shared
// NameCache and singleflight de-duplication of concurrent misses.
// Shared cache failures are logged and fall through to the next tier.
type Cached struct {
	next    Resolver
	local   *lruCache
	shared  NameCache
	ttl     time.Duration
	group   singleflight.Group
	metrics *metrics.Metrics
}

var _ Resolver = (*Cached)(nil)

// NewCached panics on a nil resolver. shared and m may be nil.
func NewCached(next Resolver, capacity int, ttl time.Duration, shared NameCache, m *metrics.Metrics) *Cached {
	if next == nil {
		panic("identity: resolver cannot be nil")
	}
	return &Cached{
		next:    next,
		local:   newLRUCache(capacity, ttl),
		shared:  shared,
		ttl:     ttl,
		metrics: m,
	}
}

func (c *Cached) UserName(ctx context.Context, userID string) (string, error) {
	return c.lookup(ctx, kindUser, userID, c.next.UserName)
}

func (c *Cached) ChannelName(ctx context.Context, channelID string) (string, error) {
	return c.lookup(ctx, kindChannel, channelID, c.next.ChannelName)
}

func (c *Cached) lookup(
	ctx context.Context,
	kind, id string,
	fetch func(context.Context, string) (string, error),
) (string, error) {
	key := kind + ":" + id

	if name, ok := c.local.get(key); ok {
		c.metrics.IdentityLookup(kind, "memory")
		return name, nil
	}

	// The fetch is shared by every caller waiting on key, so it must not
	// inherit the first caller's cancellation. Each caller still stops
	// waiting when its own context ends.
	ch := c.group.DoChan(key, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
		defer cancel()

		if c.shared != nil {
			name, found, err := c.shared.Get(ctx, key)
			if err != nil {
				slog.Warn("[Identity] Shared cache read failed, falling back to platform",
					"key", key, "error", err)
			} else if found {
				c.local.put(key, name)
				c.metrics.IdentityLookup(kind, "redis")
				return name, nil
			}
		}

		name, err := fetch(ctx, id)
		if err != nil {
			return "", err
		}
		c.metrics.IdentityLookup(kind, "platform")

		c.local.put(key, name)
		if c.shared != nil {
			if err := c.shared.Set(ctx, key, name, c.ttl); err != nil {
				slog.Warn("[Identity] Shared cache write failed", "key", key, "error", err)
			}
		}
		return name, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}
