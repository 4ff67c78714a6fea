package roots

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lwaldron/repath/core/cache"
	"github.com/lwaldron/repath/core/glob"
	"github.com/lwaldron/repath/core/logger"
)

// markerFile is the package manifest whose presence marks a directory as a
// project root during the fallback upward walk. It is never parsed, only
// probed for existence.
const markerFile = "package.json"

// cacheKeyDelimiter joins the pattern list into the memoization key. Order
// is preserved, so the same patterns in a different order are a different key.
const cacheKeyDelimiter = "\n"

// Resolve turns the project-root setting into a concrete, ordered list of
// candidate root directories.
//
// With patterns configured, each one is expanded relative to the working
// directory and the concatenated result is memoized for the whole run. With
// no patterns, the resolver walks upward from fileDir to the nearest ancestor
// containing a package manifest; no ancestor means no candidates, which makes
// the whole check a no-op for that file.
func Resolve(patterns []string, fileDir string) ([]string, error) {
	if len(patterns) == 0 {
		return ascendToMarker(fileDir), nil
	}

	key := strings.Join(patterns, cacheKeyDelimiter)
	rootSets := cache.GetCacheManager().RootSets()

	if dirs, ok := rootSets.Get(key); ok {
		return dirs, nil
	}

	var dirs []string
	for _, pattern := range patterns {
		expanded, err := glob.Expand(pattern, "")
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, expanded...)
	}

	rootSets.Set(key, dirs)
	logger.Debug("Resolved %d root dirs from %d patterns", len(dirs), len(patterns))
	return dirs, nil
}

// ascendToMarker returns the first ancestor of dir (inclusive) containing a
// package manifest, or nil when the walk reaches the filesystem root without
// finding one. The hard stop at the root guards against unbounded loops on
// pathological trees.
func ascendToMarker(dir string) []string {
	current := filepath.Clean(dir)
	for {
		if _, err := os.Stat(filepath.Join(current, markerFile)); err == nil {
			logger.Debug("Found %s marker in %s", markerFile, current)
			return []string{current}
		}

		parent := filepath.Dir(current)
		if parent == current {
			logger.Debug("No %s marker above %s", markerFile, dir)
			return nil
		}
		current = parent
	}
}
