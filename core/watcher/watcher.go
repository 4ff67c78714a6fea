package watcher

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/lwaldron/repath/core/cache"
	"github.com/lwaldron/repath/core/logger"
)

// relevantFiles are the config files whose changes invalidate the caches.
var relevantFiles = map[string]bool{
	"tsconfig.json": true,
	"jsconfig.json": true,
	"package.json":  true,
	"repath.yaml":   true,
}

const debounceDelay = 500 * time.Millisecond

// ConfigWatcher watches project roots for configuration changes and resets
// the global caches when one happens, then invokes the change callback.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	rootDirs []string
	exclude  []glob.Glob
	onChange func() error

	debounceTimer *time.Timer
	mutex         sync.Mutex
}

func New(rootDirs []string, exclude []glob.Glob, onChange func() error) (*ConfigWatcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &ConfigWatcher{
		watcher:  fsw,
		rootDirs: rootDirs,
		exclude:  exclude,
		onChange: onChange,
	}, nil
}

// Watch blocks, dispatching debounced change callbacks until the watcher is
// closed or its event channel fails.
func (cw *ConfigWatcher) Watch() error {
	for _, dir := range cw.rootDirs {
		if err := cw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logger.Debug("Watching %s", dir)
	}

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if !cw.relevant(event.Name) {
				continue
			}
			logger.Debug("Config event: %s %s", event.Op, event.Name)
			cw.scheduleReload()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (cw *ConfigWatcher) relevant(path string) bool {
	if !relevantFiles[filepath.Base(path)] {
		return false
	}
	return !cw.excluded(path)
}

func (cw *ConfigWatcher) excluded(path string) bool {
	for _, dir := range cw.rootDirs {
		rel, err := filepath.Rel(dir, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		for _, g := range cw.exclude {
			if g.Match(rel) {
				return true
			}
		}
	}
	return false
}

func (cw *ConfigWatcher) scheduleReload() {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()

	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}

	cw.debounceTimer = time.AfterFunc(debounceDelay, func() {
		logger.Info("Project configuration changed, resetting caches")
		if err := cache.ClearGlobalCache(); err != nil {
			logger.Error("Failed to clear caches: %v", err)
		}
		if err := cw.onChange(); err != nil {
			logger.Error("Change callback failed: %v", err)
		}
	})
}

func (cw *ConfigWatcher) Close() error {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()

	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	return cw.watcher.Close()
}
