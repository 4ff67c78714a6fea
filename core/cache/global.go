package cache

import (
	"sync"

	"github.com/lwaldron/repath/core/cache/manager"
	"github.com/lwaldron/repath/core/cache/models"
	"github.com/lwaldron/repath/core/logger"
)

var (
	globalCacheManager models.CacheManagerInterface
	cacheOnce          sync.Once
)

// GetCacheManager returns the global cache manager instance shared by all
// checks within one run.
func GetCacheManager() models.CacheManagerInterface {
	cacheOnce.Do(func() {
		if globalCacheManager == nil {
			globalCacheManager = manager.NewCacheManager()
			logger.Debug("Initialized global cache manager")
		}
	})
	return globalCacheManager
}

// SetCacheManager installs a custom cache manager. Used by tests to run with
// an isolated cache.
func SetCacheManager(cm models.CacheManagerInterface) {
	globalCacheManager = cm
	logger.Debug("Set custom cache manager")
}

// ClearGlobalCache resets every layer of the global cache manager.
func ClearGlobalCache() error {
	if globalCacheManager != nil {
		return globalCacheManager.Clear()
	}
	return nil
}

// GetGlobalCacheStats returns statistics for all cache layers.
func GetGlobalCacheStats() map[string]*models.CacheStats {
	if globalCacheManager != nil {
		return globalCacheManager.GetStats()
	}
	return make(map[string]*models.CacheStats)
}
