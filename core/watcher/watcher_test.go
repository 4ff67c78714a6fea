package watcher

import (
	"path/filepath"
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, roots []string, patterns []string) *ConfigWatcher {
	t.Helper()

	var excludes []glob.Glob
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		require.NoError(t, err)
		excludes = append(excludes, g)
	}

	cw, err := New(roots, excludes, func() error { return nil })
	require.NoError(t, err)
	t.Cleanup(func() { cw.Close() })
	return cw
}

func TestNew_RequiresCallback(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.Error(t, err)
}

func TestRelevant_ConfigFilesOnly(t *testing.T) {
	root := t.TempDir()
	cw := newTestWatcher(t, []string{root}, nil)

	assert.True(t, cw.relevant(filepath.Join(root, "tsconfig.json")))
	assert.True(t, cw.relevant(filepath.Join(root, "jsconfig.json")))
	assert.True(t, cw.relevant(filepath.Join(root, "package.json")))
	assert.False(t, cw.relevant(filepath.Join(root, "index.ts")))
	assert.False(t, cw.relevant(filepath.Join(root, "tsconfig.json.bak")))
}

func TestRelevant_HonorsExcludes(t *testing.T) {
	root := t.TempDir()
	cw := newTestWatcher(t, []string{root}, []string{"node_modules/**"})

	assert.True(t, cw.relevant(filepath.Join(root, "package.json")))
	assert.False(t, cw.relevant(filepath.Join(root, "node_modules", "react", "package.json")))
}
