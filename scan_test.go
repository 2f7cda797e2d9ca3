package hfcache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeBlob places a content-addressed blob file inside a repository.
func writeBlob(t *testing.T, base string, kind RepoKind, id, name string) {
	t.Helper()

	blobDir := filepath.Join(base, NewRepo(kind, id).FolderName(), "blobs")
	require.NoError(t, os.MkdirAll(blobDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(blobDir, name), []byte("blob"), 0o600))
}

func TestScanDir(t *testing.T) {
	t.Parallel()

	t.Run("inventories repositories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRepo(t, dir, ModelRepo, "acme/widget", "abc123")
		writeRepo(t, dir, DatasetRepo, "acme/corpus", "d4t4")
		writeBlob(t, dir, ModelRepo, "acme/widget", strings.Repeat("a", 40))
		writeBlob(t, dir, ModelRepo, "acme/widget", strings.Repeat("b", 64))

		l, _ := newTestLocator(t, map[string]string{}, "")

		info, err := l.ScanDir(dir)
		require.NoError(t, err)

		assert.Equal(t, 2, info.RepoCount)
		require.Len(t, info.Repos, 2)
		assert.Greater(t, info.TotalSize, int64(0))

		byID := map[string]RepoInfo{}
		for _, r := range info.Repos {
			byID[r.ID] = r
		}

		widget, ok := byID["acme/widget"]
		require.True(t, ok)
		assert.Equal(t, ModelRepo, widget.Kind)
		assert.Equal(t, "abc123", widget.Refs["main"])
		assert.Equal(t, []string{"abc123"}, widget.Snapshots)
		assert.Equal(t, 2, widget.Blobs)
		assert.Greater(t, widget.FileCount, 0)

		corpus, ok := byID["acme/corpus"]
		require.True(t, ok)
		assert.Equal(t, DatasetRepo, corpus.Kind)
		assert.Equal(t, "d4t4", corpus.Refs["main"])
	})

	t.Run("malformed blob names are reported, not counted", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRepo(t, dir, ModelRepo, "acme/widget", "abc123")
		writeBlob(t, dir, ModelRepo, "acme/widget", "not-a-digest")

		l, buf := newTestLocator(t, map[string]string{}, "")

		info, err := l.ScanDir(dir)
		require.NoError(t, err)

		require.Len(t, info.Repos, 1)
		assert.Equal(t, 0, info.Repos[0].Blobs)
		assert.Contains(t, buf.String(), "malformed blob name")
	})

	t.Run("unrecognized entries are skipped", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "tmp-download"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "version.txt"), []byte("1"), 0o600))

		l, _ := newTestLocator(t, map[string]string{}, "")

		info, err := l.ScanDir(dir)
		require.NoError(t, err)
		assert.Equal(t, 0, info.RepoCount)
	})

	t.Run("nonexistent directory yields an empty inventory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nonexistent")

		l, _ := newTestLocator(t, map[string]string{}, "")

		info, err := l.ScanDir(dir)
		require.NoError(t, err)
		assert.Equal(t, 0, info.RepoCount)
		assert.Equal(t, int64(0), info.TotalSize)
	})
}

func TestScanCache(t *testing.T) {
	t.Parallel()

	t.Run("resolves the hub cache first", func(t *testing.T) {
		t.Parallel()
		hfHome := t.TempDir()
		hub := filepath.Join(hfHome, "hub")
		require.NoError(t, os.MkdirAll(hub, 0o750))
		writeRepo(t, hub, ModelRepo, "acme/widget", "abc123")

		info, err := hubLocator(t, hfHome).ScanCache(ModelRepo)
		require.NoError(t, err)
		assert.Equal(t, hub, info.Path)
		assert.Equal(t, 1, info.RepoCount)
	})

	t.Run("no cache directory is a terminal miss", func(t *testing.T) {
		t.Parallel()

		l, _ := newTestLocator(t, map[string]string{}, "")

		_, err := l.ScanCache(ModelRepo)
		require.ErrorIs(t, err, ErrCacheNotFound)
	})
}
