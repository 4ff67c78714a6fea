package tsconfig

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lwaldron/repath/core/cache"
	"github.com/lwaldron/repath/core/logger"
	"github.com/lwaldron/repath/core/models"
)

// configFileNames are probed in this order within each qualifying root. When
// both exist, jsconfig.json is processed second and overwrites the slot.
// Confirmed behavior, not an accident to fix.
var configFileNames = []string{"tsconfig.json", "jsconfig.json"}

// Locate finds the best-matching project configuration for filePath among
// the candidate roots. Candidates are scored by the number of path segments
// they share with the file; a later candidate wins only with a strictly
// greater score, so ties keep the earliest one.
//
// The returned error covers filesystem failures only; a config file that
// exists but does not parse comes back as models.Malformed.
func Locate(candidateRoots []string, filePath string) (models.LocateResult, error) {
	var best models.Found
	bestScore := math.MinInt
	found := false

	for _, root := range candidateRoots {
		score := matchScore(root, filePath)
		if found && score <= bestScore {
			continue
		}

		var cfg *models.ProjectConfig
		for _, name := range configFileNames {
			path := filepath.Join(root, name)
			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("failed to stat %s: %w", path, err)
			}

			parsed, parseErrs, err := load(path)
			if err != nil {
				return nil, err
			}
			if len(parseErrs) > 0 {
				logger.Debug("Malformed config %s: %d parse errors", path, len(parseErrs))
				return models.Malformed{Path: path, Errors: parseErrs}, nil
			}
			cfg = parsed
		}

		if cfg != nil {
			best = models.Found{Root: root, Config: cfg}
			bestScore = score
			found = true
			logger.Debug("Config candidate %s (score %d)", cfg.Path, score)
		}
	}

	if !found {
		return models.NotFound{}, nil
	}
	return best, nil
}

// load reads and parses one config file, memoized by path through the global
// config cache.
func load(path string) (*models.ProjectConfig, []models.ParseError, error) {
	configs := cache.GetCacheManager().Configs()
	if cfg, ok := configs.Get(path); ok {
		return cfg, nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, parseErrs := parseData(path, data)
	if len(parseErrs) > 0 {
		return nil, parseErrs, nil
	}

	if err := configs.Set(path, cfg); err != nil {
		logger.Debug("Failed to cache config %s: %v", path, err)
	}
	return cfg, nil, nil
}

// matchScore counts the path segments shared between root and file: the
// root's own segment count minus one for every ".." step needed to walk from
// the root to the file.
func matchScore(root, file string) int {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return math.MinInt
	}

	parentSteps := 0
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if seg == ".." {
			parentSteps++
		}
	}
	return segmentCount(root) - parentSteps
}

func segmentCount(path string) int {
	clean := filepath.ToSlash(filepath.Clean(path))
	count := 0
	for _, seg := range strings.Split(clean, "/") {
		if seg != "" && seg != "." {
			count++
		}
	}
	return count
}
