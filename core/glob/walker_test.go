package glob

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "x.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "sub", "y.txt"), []byte("y"), 0o644))

	return root
}

func TestExpand_LiteralSegments(t *testing.T) {
	root := buildTree(t)

	got, err := Expand("a/sub", root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a", "sub")}, got)
}

func TestExpand_LiteralMissingIsDropped(t *testing.T) {
	root := buildTree(t)

	got, err := Expand("a/nope", root)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_MissingStartDir(t *testing.T) {
	got, err := Expand("a", filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_Star(t *testing.T) {
	root := buildTree(t)

	got, err := Expand("*", root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "b"),
	}, got)
}

func TestExpand_StarListsFilesAndDirs(t *testing.T) {
	root := buildTree(t)

	got, err := Expand("a/*", root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "sub"),
		filepath.Join(root, "a", "x.txt"),
	}, got)
}

func TestExpand_StarOnFileContributesNothing(t *testing.T) {
	root := buildTree(t)

	got, err := Expand("a/x.txt/*", root)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_DoubleStarKeepsSelfAndDescendants(t *testing.T) {
	root := buildTree(t)

	got, err := Expand("**", root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		root,
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "sub"),
		filepath.Join(root, "a", "sub", "y.txt"),
		filepath.Join(root, "a", "x.txt"),
		filepath.Join(root, "b"),
	}, got)
}

func TestExpand_DoubleStarThenLiteral(t *testing.T) {
	root := buildTree(t)

	got, err := Expand("**/sub", root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a", "sub")}, got)
}

func TestExpand_Deterministic(t *testing.T) {
	root := buildTree(t)

	first, err := Expand("**", root)
	require.NoError(t, err)
	second, err := Expand("**", root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
