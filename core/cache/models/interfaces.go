package models

import coreModels "github.com/lwaldron/repath/core/models"

// RootSetCacheInterface memoizes expanded project-root glob patterns.
// Keys are the normalized, delimiter-joined pattern lists; entries live for
// the whole process and are never invalidated mid-run.
type RootSetCacheInterface interface {
	// Get retrieves the directory list for a pattern key.
	Get(key string) ([]string, bool)

	// Set stores the directory list for a pattern key.
	Set(key string, dirs []string)

	// GetStats returns cache statistics.
	GetStats() *CacheStats

	// Clear removes all entries.
	Clear() error
}

// ProjectConfigCacheInterface memoizes parsed project configurations keyed
// by config file path, validated against the file's modification time.
type ProjectConfigCacheInterface interface {
	// Get retrieves a parsed config if the file on disk is unchanged.
	Get(path string) (*coreModels.ProjectConfig, bool)

	// Set stores a parsed config for a file path.
	Set(path string, cfg *coreModels.ProjectConfig) error

	// Invalidate removes the entry for a config file.
	Invalidate(path string)

	// GetStats returns cache statistics.
	GetStats() *CacheStats

	// Clear removes all entries.
	Clear() error
}

// CacheManagerInterface coordinates all cache layers.
type CacheManagerInterface interface {
	RootSets() RootSetCacheInterface
	Configs() ProjectConfigCacheInterface
	GetStats() map[string]*CacheStats
	Clear() error
}
