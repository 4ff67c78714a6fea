package layers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreModels "github.com/lwaldron/repath/core/models"
)

func TestRootSetCache_ReturnsCopies(t *testing.T) {
	rc := NewRootSetCache()
	rc.Set("key", []string{"/a", "/b"})

	got, ok := rc.Get("key")
	require.True(t, ok)
	got[0] = "/mutated"

	again, ok := rc.Get("key")
	require.True(t, ok)
	assert.Equal(t, []string{"/a", "/b"}, again)
}

func TestRootSetCache_StatsAndClear(t *testing.T) {
	rc := NewRootSetCache()

	_, ok := rc.Get("missing")
	assert.False(t, ok)
	rc.Set("key", []string{"/a"})
	_, ok = rc.Get("key")
	assert.True(t, ok)

	stats := rc.GetStats()
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 50.0, stats.HitRate, 0.01)

	require.NoError(t, rc.Clear())
	_, ok = rc.Get("key")
	assert.False(t, ok)
}

func TestProjectConfigCache_HitWhileUnchanged(t *testing.T) {
	cc := NewProjectConfigCache()
	path := filepath.Join(t.TempDir(), "tsconfig.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	cfg := &coreModels.ProjectConfig{Path: path, Dir: filepath.Dir(path)}
	require.NoError(t, cc.Set(path, cfg))

	got, ok := cc.Get(path)
	require.True(t, ok)
	assert.Equal(t, cfg, got)
}

func TestProjectConfigCache_InvalidatedOnModTimeChange(t *testing.T) {
	cc := NewProjectConfigCache()
	path := filepath.Join(t.TempDir(), "tsconfig.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	cfg := &coreModels.ProjectConfig{Path: path, Dir: filepath.Dir(path)}
	require.NoError(t, cc.Set(path, cfg))

	// Push the mod time forward; some filesystems have coarse timestamps.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	_, ok := cc.Get(path)
	assert.False(t, ok)
}

func TestProjectConfigCache_InvalidatedOnDelete(t *testing.T) {
	cc := NewProjectConfigCache()
	path := filepath.Join(t.TempDir(), "tsconfig.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	require.NoError(t, cc.Set(path, &coreModels.ProjectConfig{Path: path}))
	require.NoError(t, os.Remove(path))

	_, ok := cc.Get(path)
	assert.False(t, ok)
}

func TestProjectConfigCache_NilConfigRejected(t *testing.T) {
	cc := NewProjectConfigCache()
	assert.Error(t, cc.Set("/nope/tsconfig.json", nil))
}
