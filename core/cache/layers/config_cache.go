package layers

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lwaldron/repath/core/cache/models"
	"github.com/lwaldron/repath/core/logger"
	coreModels "github.com/lwaldron/repath/core/models"
)

type configEntry struct {
	config  *coreModels.ProjectConfig
	modTime time.Time
}

// ProjectConfigCache stores parsed tsconfig/jsconfig documents keyed by file
// path. Entries are validated against the file's modification time on every
// read, so a config edited mid-run is re-parsed instead of served stale.
type ProjectConfigCache struct {
	entries map[string]*configEntry
	mutex   sync.RWMutex
	stats   struct {
		hits   int64
		misses int64
	}
}

func NewProjectConfigCache() *ProjectConfigCache {
	return &ProjectConfigCache{
		entries: make(map[string]*configEntry),
	}
}

func (cc *ProjectConfigCache) Get(path string) (*coreModels.ProjectConfig, bool) {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	entry, exists := cc.entries[path]
	if !exists {
		cc.stats.misses++
		logger.Debug("ProjectConfigCache: Miss for %s", path)
		return nil, false
	}

	stat, err := os.Stat(path)
	if err != nil || !stat.ModTime().Equal(entry.modTime) {
		delete(cc.entries, path)
		cc.stats.misses++
		logger.Debug("ProjectConfigCache: Miss for %s - file changed", path)
		return nil, false
	}

	cc.stats.hits++
	logger.Debug("ProjectConfigCache: Hit for %s", path)
	return entry.config, true
}

func (cc *ProjectConfigCache) Set(path string, cfg *coreModels.ProjectConfig) error {
	if cfg == nil {
		return fmt.Errorf("project config cannot be nil")
	}

	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	cc.entries[path] = &configEntry{
		config:  cfg,
		modTime: stat.ModTime(),
	}
	logger.Debug("ProjectConfigCache: Stored config for %s (%d paths)", path, len(cfg.Paths))
	return nil
}

func (cc *ProjectConfigCache) Invalidate(path string) {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	if _, exists := cc.entries[path]; exists {
		delete(cc.entries, path)
		logger.Debug("ProjectConfigCache: Invalidated %s", path)
	}
}

func (cc *ProjectConfigCache) GetStats() *models.CacheStats {
	cc.mutex.RLock()
	defer cc.mutex.RUnlock()

	stats := &models.CacheStats{
		TotalEntries: len(cc.entries),
		Hits:         cc.stats.hits,
		Misses:       cc.stats.misses,
		LastUpdate:   time.Now(),
	}
	stats.ComputeHitRate()
	return stats
}

func (cc *ProjectConfigCache) Clear() error {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	cc.entries = make(map[string]*configEntry)
	cc.stats.hits = 0
	cc.stats.misses = 0
	logger.Debug("ProjectConfigCache: Cleared all entries")
	return nil
}
