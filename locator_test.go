package hfcache

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap returns an env lookup backed by a fixed map.
func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// newTestLocator builds a hermetic locator plus a buffer capturing its
// diagnostics. An empty home disables the default fallback stage.
func newTestLocator(t *testing.T, env map[string]string, home string) (*Locator, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	l := New(
		WithEnv(envMap(env)),
		WithHomeDir(home),
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	return l, &buf
}

func TestCacheHome(t *testing.T) {
	t.Parallel()

	t.Run("returns HF_HOME when it is a directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		l, _ := newTestLocator(t, map[string]string{"HF_HOME": dir}, "")

		got, err := l.CacheHome()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("invalid HF_HOME falls back to the default with a warning", func(t *testing.T) {
		t.Parallel()
		home := t.TempDir()
		def := filepath.Join(home, ".cache", "huggingface")
		require.NoError(t, os.MkdirAll(def, 0o750))

		l, buf := newTestLocator(t, map[string]string{
			"HF_HOME": filepath.Join(home, "does-not-exist"),
		}, home)

		got, err := l.CacheHome()
		require.NoError(t, err)
		assert.Equal(t, def, got)
		assert.Contains(t, buf.String(), "HF_HOME")
	})

	t.Run("HF_HOME pointing at a file is invalid", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "not-a-dir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		l, buf := newTestLocator(t, map[string]string{"HF_HOME": file}, "")

		_, err := l.CacheHome()
		require.ErrorIs(t, err, ErrCacheNotFound)
		assert.Contains(t, buf.String(), "invalid cache directory")
	})

	t.Run("terminal miss returns ErrCacheNotFound and logs", func(t *testing.T) {
		t.Parallel()
		home := t.TempDir() // no .cache/huggingface inside

		l, buf := newTestLocator(t, map[string]string{
			"HF_HOME": filepath.Join(home, "missing"),
		}, home)

		_, err := l.CacheHome()
		require.ErrorIs(t, err, ErrCacheNotFound)
		assert.Contains(t, buf.String(), "invalid cache directory")
		assert.Contains(t, buf.String(), "no cache directory found")
	})
}

func TestHubDir(t *testing.T) {
	t.Parallel()

	t.Run("a valid primary wins even when all stages exist", func(t *testing.T) {
		t.Parallel()
		primary := t.TempDir()
		hfHome := t.TempDir()
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(hfHome, "hub"), 0o750))
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".cache", "huggingface", "hub"), 0o750))

		l, _ := newTestLocator(t, map[string]string{
			"HUGGINGFACE_HUB_CACHE": primary,
			"HF_HOME":               hfHome,
		}, home)

		got, err := l.HubDir()
		require.NoError(t, err)
		assert.Equal(t, primary, got)
	})

	t.Run("unset primary falls back to HF_HOME/hub", func(t *testing.T) {
		t.Parallel()
		hfHome := t.TempDir()
		hub := filepath.Join(hfHome, "hub")
		require.NoError(t, os.MkdirAll(hub, 0o750))

		l, _ := newTestLocator(t, map[string]string{"HF_HOME": hfHome}, "")

		got, err := l.HubDir()
		require.NoError(t, err)
		assert.Equal(t, hub, got)
	})

	t.Run("invalid primary falls back to HF_HOME/hub", func(t *testing.T) {
		t.Parallel()
		hfHome := t.TempDir()
		hub := filepath.Join(hfHome, "hub")
		require.NoError(t, os.MkdirAll(hub, 0o750))

		l, buf := newTestLocator(t, map[string]string{
			"HUGGINGFACE_HUB_CACHE": filepath.Join(hfHome, "missing"),
			"HF_HOME":               hfHome,
		}, "")

		got, err := l.HubDir()
		require.NoError(t, err)
		assert.Equal(t, hub, got)
		assert.Contains(t, buf.String(), "HUGGINGFACE_HUB_CACHE")
	})

	t.Run("HF_HOME without hub falls back to the default", func(t *testing.T) {
		t.Parallel()
		hfHome := t.TempDir()
		home := t.TempDir()
		def := filepath.Join(home, ".cache", "huggingface", "hub")
		require.NoError(t, os.MkdirAll(def, 0o750))

		l, _ := newTestLocator(t, map[string]string{"HF_HOME": hfHome}, home)

		got, err := l.HubDir()
		require.NoError(t, err)
		assert.Equal(t, def, got)
	})

	t.Run("terminal miss returns ErrCacheNotFound", func(t *testing.T) {
		t.Parallel()

		l, _ := newTestLocator(t, map[string]string{}, "")

		_, err := l.HubDir()
		require.ErrorIs(t, err, ErrCacheNotFound)
	})
}

func TestDatasetsDir(t *testing.T) {
	t.Parallel()

	t.Run("returns HF_DATASETS_CACHE when it is a directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		l, _ := newTestLocator(t, map[string]string{"HF_DATASETS_CACHE": dir}, "")

		got, err := l.DatasetsDir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("falls back to HF_HOME/datasets", func(t *testing.T) {
		t.Parallel()
		hfHome := t.TempDir()
		datasets := filepath.Join(hfHome, "datasets")
		require.NoError(t, os.MkdirAll(datasets, 0o750))

		l, _ := newTestLocator(t, map[string]string{"HF_HOME": hfHome}, "")

		got, err := l.DatasetsDir()
		require.NoError(t, err)
		assert.Equal(t, datasets, got)
	})

	t.Run("falls back to the default", func(t *testing.T) {
		t.Parallel()
		home := t.TempDir()
		def := filepath.Join(home, ".cache", "huggingface", "datasets")
		require.NoError(t, os.MkdirAll(def, 0o750))

		l, _ := newTestLocator(t, map[string]string{}, home)

		got, err := l.DatasetsDir()
		require.NoError(t, err)
		assert.Equal(t, def, got)
	})
}

func TestXDGCacheHome(t *testing.T) {
	t.Parallel()

	t.Run("returns XDG_CACHE_HOME when it is a directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		l, _ := newTestLocator(t, map[string]string{"XDG_CACHE_HOME": dir}, "")

		got, err := l.XDGCacheHome()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("falls back to ~/.cache", func(t *testing.T) {
		t.Parallel()
		home := t.TempDir()
		def := filepath.Join(home, ".cache")
		require.NoError(t, os.MkdirAll(def, 0o750))

		l, _ := newTestLocator(t, map[string]string{}, home)

		got, err := l.XDGCacheHome()
		require.NoError(t, err)
		assert.Equal(t, def, got)
	})

	t.Run("terminal miss returns ErrCacheNotFound", func(t *testing.T) {
		t.Parallel()

		l, buf := newTestLocator(t, map[string]string{
			"XDG_CACHE_HOME": filepath.Join(t.TempDir(), "missing"),
		}, "")

		_, err := l.XDGCacheHome()
		require.ErrorIs(t, err, ErrCacheNotFound)
		assert.Contains(t, buf.String(), "XDG_CACHE_HOME")
	})
}

func TestDefaultEnvWiring(t *testing.T) {
	// Not parallel: mutates the process environment.
	dir := t.TempDir()
	t.Setenv("HF_HOME", dir)

	got, err := New().CacheHome()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}
