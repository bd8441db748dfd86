package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree creates:
//
//	root/a.txt      100
//	root/b.go       300
//	root/sub/c.txt  200
//	root/sub/deep/d.bin 1000
//	root/.git/objects 50
func tree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]int{
		"a.txt":          100,
		"b.go":           300,
		"sub/c.txt":      200,
		"sub/deep/d.bin": 1000,
		".git/objects":   50,
	}

	for name, size := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	}

	return root
}

func paths(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Path
	}

	return out
}

func TestRun_Files(t *testing.T) {
	root := tree(t)

	stats, err := Run(context.Background(), Options{Path: root, TopN: 3}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.Count)
	assert.Equal(t, int64(1650), stats.TotalBytes)
	assert.Equal(t, []string{"sub/deep/d.bin", "b.go", "sub/c.txt"}, paths(stats.Top))
	assert.Equal(t, ExtStat{Count: 2, Size: 300}, stats.Extensions[".txt"])
	assert.InDelta(t, 60.6, stats.Share(1000), 0.1)
	assert.False(t, stats.Dirs)
}

func TestRun_Excludes(t *testing.T) {
	root := tree(t)

	stats, err := Run(context.Background(), Options{Path: root, Excludes: []string{`.*\.git/.*`}}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Count)
	assert.Equal(t, int64(1600), stats.TotalBytes)
	assert.NotContains(t, paths(stats.Top), ".git/objects")
}

func TestRun_Depth(t *testing.T) {
	root := tree(t)

	stats, err := Run(context.Background(), Options{Path: root, Depth: 1}, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt", "b.go"}, paths(stats.Top))
	assert.Equal(t, int64(400), stats.TotalBytes)
}

func TestRun_Dirs(t *testing.T) {
	root := tree(t)

	stats, err := Run(context.Background(), Options{Path: root, Dirs: true}, nil)
	require.NoError(t, err)

	assert.True(t, stats.Dirs)
	assert.Equal(t, int64(4), stats.Count)
	assert.Empty(t, stats.Extensions)
	assert.Equal(t, []Item{
		{Path: "sub/deep", Size: 1000},
		{Path: ".", Size: 400},
		{Path: "sub", Size: 200},
		{Path: ".git", Size: 50},
	}, stats.Top)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), Options{Path: filepath.Join(t.TempDir(), "missing")}, nil)
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err = Run(context.Background(), Options{Path: file}, nil)
	require.ErrorIs(t, err, ErrNotDirectory)

	_, err = Run(context.Background(), Options{Path: t.TempDir(), Excludes: []string{"("}}, nil)
	require.Error(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Path: tree(t)}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDepth(t *testing.T) {
	root := filepath.FromSlash("/data")

	assert.Equal(t, 0, depth(root, root))
	assert.Equal(t, 1, depth(filepath.FromSlash("/data/a"), root))
	assert.Equal(t, 3, depth(filepath.FromSlash("/data/a/b/c"), root))
}
