package repos

import (
	"context"

	"github.com/aasimsk98/sentiment-dashboard/cache"
	"github.com/aasimsk98/sentiment-dashboard/data"
	"github.com/aasimsk98/sentiment-dashboard/metrics"
)

const snapshotKey = "feed"

// Loader is what CachedFeed wraps; satisfied by FeedRepo.
type Loader interface {
	LoadSnapshot(ctx context.Context) (data.Snapshot, error)
}

// CachedFeed is the read-through TTL wrapper around the loader. Reads within
// the TTL window return the same snapshot even if the collections changed
// underneath; a manual refresh invalidates the slot so the next read
// recomputes.
type CachedFeed struct {
	loader Loader
	cache  *cache.Cache[data.Snapshot]
}

func NewCachedFeed(loader Loader, c *cache.Cache[data.Snapshot]) *CachedFeed {
	return &CachedFeed{loader: loader, cache: c}
}

// Snapshot returns the cached or freshly loaded feed. The bool reports
// whether the query actually ran.
func (f *CachedFeed) Snapshot(ctx context.Context) (data.Snapshot, bool, error) {
	snapshot, fresh, err := f.cache.Get(snapshotKey, func() (data.Snapshot, error) {
		return f.loader.LoadSnapshot(ctx)
	})
	if err != nil {
		metrics.LoadFailures.Inc()
		return data.Snapshot{}, fresh, err
	}

	if fresh {
		metrics.CacheMisses.Inc()
	} else {
		metrics.CacheHits.Inc()
	}

	return snapshot, fresh, nil
}

// Invalidate drops the cached snapshot. Used by the manual refresh trigger,
// which bypasses the TTL.
func (f *CachedFeed) Invalidate() {
	f.cache.Invalidate(snapshotKey)
}

// CacheOccupied reports whether a snapshot is currently cached.
func (f *CachedFeed) CacheOccupied() bool {
	_, ok := f.cache.Age(snapshotKey)
	return ok
}
