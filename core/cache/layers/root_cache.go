package layers

import (
	"sync"
	"time"

	"github.com/lwaldron/repath/core/cache/models"
	"github.com/lwaldron/repath/core/logger"
)

// RootSetCache memoizes expanded project-root patterns for the lifetime of
// the process. It assumes the filesystem layout of project roots is stable
// across a single run, so entries are never invalidated.
type RootSetCache struct {
	entries map[string][]string
	mutex   sync.RWMutex
	stats   struct {
		hits   int64
		misses int64
	}
}

func NewRootSetCache() *RootSetCache {
	return &RootSetCache{
		entries: make(map[string][]string),
	}
}

// Get returns a copy of the cached directory list for key, so callers cannot
// mutate the memoized value.
func (rc *RootSetCache) Get(key string) ([]string, bool) {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()

	dirs, exists := rc.entries[key]
	if !exists {
		rc.stats.misses++
		logger.Debug("RootSetCache: Miss for %q", key)
		return nil, false
	}

	rc.stats.hits++
	logger.Debug("RootSetCache: Hit for %q (%d dirs)", key, len(dirs))
	out := make([]string, len(dirs))
	copy(out, dirs)
	return out, true
}

func (rc *RootSetCache) Set(key string, dirs []string) {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()

	stored := make([]string, len(dirs))
	copy(stored, dirs)
	rc.entries[key] = stored
	logger.Debug("RootSetCache: Stored %d dirs for %q", len(dirs), key)
}

func (rc *RootSetCache) GetStats() *models.CacheStats {
	rc.mutex.RLock()
	defer rc.mutex.RUnlock()

	stats := &models.CacheStats{
		TotalEntries: len(rc.entries),
		Hits:         rc.stats.hits,
		Misses:       rc.stats.misses,
		LastUpdate:   time.Now(),
	}
	stats.ComputeHitRate()
	return stats
}

func (rc *RootSetCache) Clear() error {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()

	rc.entries = make(map[string][]string)
	rc.stats.hits = 0
	rc.stats.misses = 0
	logger.Debug("RootSetCache: Cleared all entries")
	return nil
}
