package glob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lwaldron/repath/core/logger"
)

// Expand walks the real directory tree and returns every concrete path the
// slash-separated pattern matches. Segments are literals, "*" (any direct
// child) or "**" (the directory itself plus its whole subtree).
//
// A missing start directory yields an empty result. A listing failure on a
// path that an earlier segment already proved to exist is fatal and surfaces
// as an error.
func Expand(pattern string, startDir string) ([]string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		startDir = wd
	}

	if _, err := os.Stat(startDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot stat start dir %s: %w", startDir, err)
	}

	candidates := []string{startDir}

	for _, segment := range strings.Split(pattern, "/") {
		if segment == "" {
			continue
		}

		var err error
		switch segment {
		case "*":
			candidates, err = expandChildren(candidates)
		case "**":
			candidates, err = expandSubtrees(candidates)
		default:
			candidates = expandLiteral(candidates, segment)
		}
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			break
		}
	}

	logger.Debug("Expanded glob %q from %s to %d paths", pattern, startDir, len(candidates))
	return candidates, nil
}

// expandLiteral joins the segment onto each candidate, keeping only joins
// that exist on disk.
func expandLiteral(candidates []string, segment string) []string {
	var next []string
	for _, candidate := range candidates {
		joined := filepath.Join(candidate, segment)
		if _, err := os.Stat(joined); err == nil {
			next = append(next, joined)
		}
	}
	return next
}

// expandChildren replaces each directory candidate with its direct children,
// files and directories alike. Non-directory candidates contribute nothing.
// Candidates were proven to exist by the previous step, so a stat failure
// here is fatal, not skipped.
func expandChildren(candidates []string) ([]string, error) {
	var next []string
	for _, candidate := range candidates {
		dir, err := isDir(candidate)
		if err != nil {
			return nil, err
		}
		if !dir {
			continue
		}
		entries, err := os.ReadDir(candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", candidate, err)
		}
		for _, entry := range entries {
			next = append(next, filepath.Join(candidate, entry.Name()))
		}
	}
	return next, nil
}

// expandSubtrees keeps each directory candidate and adds every descendant at
// every depth. Non-directory candidates are dropped.
func expandSubtrees(candidates []string) ([]string, error) {
	var next []string
	for _, candidate := range candidates {
		dir, err := isDir(candidate)
		if err != nil {
			return nil, err
		}
		if !dir {
			continue
		}
		next = append(next, candidate)
		descendants, err := descend(candidate)
		if err != nil {
			return nil, err
		}
		next = append(next, descendants...)
	}
	return next, nil
}

func descend(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		paths = append(paths, path)
		if entry.IsDir() {
			sub, err := descend(path)
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
		}
	}
	return paths, nil
}

func isDir(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return stat.IsDir(), nil
}
