package manager

import (
	"fmt"

	"github.com/lwaldron/repath/core/cache/layers"
	"github.com/lwaldron/repath/core/cache/models"
	"github.com/lwaldron/repath/core/logger"
)

// CacheManager coordinates the cache layers and provides a unified interface.
type CacheManager struct {
	rootSets models.RootSetCacheInterface
	configs  models.ProjectConfigCacheInterface
}

// NewCacheManager creates a cache manager with default layer implementations.
func NewCacheManager() *CacheManager {
	return &CacheManager{
		rootSets: layers.NewRootSetCache(),
		configs:  layers.NewProjectConfigCache(),
	}
}

// NewCacheManagerWithLayers creates a cache manager with custom layers.
func NewCacheManagerWithLayers(
	rootSets models.RootSetCacheInterface,
	configs models.ProjectConfigCacheInterface,
) *CacheManager {
	return &CacheManager{
		rootSets: rootSets,
		configs:  configs,
	}
}

func (cm *CacheManager) RootSets() models.RootSetCacheInterface {
	return cm.rootSets
}

func (cm *CacheManager) Configs() models.ProjectConfigCacheInterface {
	return cm.configs
}

// GetStats returns statistics for every layer, keyed by layer name.
func (cm *CacheManager) GetStats() map[string]*models.CacheStats {
	return map[string]*models.CacheStats{
		"root_sets": cm.rootSets.GetStats(),
		"configs":   cm.configs.GetStats(),
	}
}

// Clear resets every layer.
func (cm *CacheManager) Clear() error {
	if err := cm.rootSets.Clear(); err != nil {
		return fmt.Errorf("failed to clear root set cache: %w", err)
	}
	if err := cm.configs.Clear(); err != nil {
		return fmt.Errorf("failed to clear config cache: %w", err)
	}
	logger.Debug("CacheManager: Cleared all layers")
	return nil
}
