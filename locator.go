package hfcache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meigma/hfcache/core"
	"github.com/meigma/hfcache/internal/locate"
)

// Locator resolves Hugging Face cache locations from the environment and
// the filesystem. All methods are read-only; a Locator holds no mutable
// state and is safe for concurrent use.
type Locator struct {
	logger  *slog.Logger
	env     func(string) (string, bool)
	home    string
	homeSet bool
}

// New creates a Locator.
//
// By default the process environment and the user's home directory are
// consulted and diagnostics are discarded. Use WithLogger to capture
// warnings about invalid fallback stages.
func New(opts ...Option) *Locator {
	l := &Locator{
		logger: slog.New(slog.DiscardHandler),
		env:    os.LookupEnv,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// CacheHome resolves the Hugging Face cache root.
// Order: HF_HOME, then ~/.cache/huggingface.
// Returns ErrCacheNotFound if no stage validates.
func (l *Locator) CacheHome() (string, error) {
	return l.resolve("cache home", []locate.Candidate{
		l.envCandidate(core.EnvHFHome),
		l.defaultCandidate(".cache", "huggingface"),
	})
}

// HubDir resolves the hub sub-cache where model repositories live.
// Order: HUGGINGFACE_HUB_CACHE, then HF_HOME/hub, then
// ~/.cache/huggingface/hub. Returns ErrCacheNotFound if no stage
// validates.
func (l *Locator) HubDir() (string, error) {
	return l.resolve("hub cache", []locate.Candidate{
		l.envCandidate(core.EnvHubCache),
		l.envJoinCandidate(core.EnvHFHome, "hub"),
		l.defaultCandidate(".cache", "huggingface", "hub"),
	})
}

// DatasetsDir resolves the datasets sub-cache.
// Order: HF_DATASETS_CACHE, then HF_HOME/datasets, then
// ~/.cache/huggingface/datasets. Returns ErrCacheNotFound if no stage
// validates.
func (l *Locator) DatasetsDir() (string, error) {
	return l.resolve("datasets cache", []locate.Candidate{
		l.envCandidate(core.EnvDatasetsCache),
		l.envJoinCandidate(core.EnvHFHome, "datasets"),
		l.defaultCandidate(".cache", "huggingface", "datasets"),
	})
}

// XDGCacheHome resolves the generic XDG cache base directory.
// Order: XDG_CACHE_HOME, then ~/.cache. Returns ErrCacheNotFound if no
// stage validates.
func (l *Locator) XDGCacheHome() (string, error) {
	return l.resolve("xdg cache home", []locate.Candidate{
		l.envCandidate(core.EnvXDGCacheHome),
		l.defaultCandidate(".cache"),
	})
}

// resolve runs a fallback chain and converts a terminal miss into
// ErrCacheNotFound.
func (l *Locator) resolve(what string, candidates []locate.Candidate) (string, error) {
	if dir, ok := locate.FirstDir(l.logger, candidates); ok {
		return dir, nil
	}

	l.logger.Error("no cache directory found", "lookup", what)
	return "", fmt.Errorf("%s: %w", what, core.ErrCacheNotFound)
}

// envCandidate builds a chain stage from an environment variable. Unset
// variables produce an empty candidate, which the chain skips silently.
func (l *Locator) envCandidate(key string) locate.Candidate {
	v, ok := l.env(key)
	if !ok {
		return locate.Candidate{Source: key}
	}
	return locate.Candidate{Path: v, Source: key}
}

// envJoinCandidate builds a chain stage by joining an environment
// variable's value with fixed path elements.
func (l *Locator) envJoinCandidate(key string, elem ...string) locate.Candidate {
	c := l.envCandidate(key)
	if c.Path != "" {
		c.Path = filepath.Join(append([]string{c.Path}, elem...)...)
	}
	return c
}

// defaultCandidate builds the fixed fallback stage under the user's home
// directory.
func (l *Locator) defaultCandidate(elem ...string) locate.Candidate {
	home := l.homeDir()
	if home == "" {
		return locate.Candidate{Source: "default"}
	}
	return locate.Candidate{
		Path:   filepath.Join(append([]string{home}, elem...)...),
		Source: "default",
	}
}

// homeDir returns the configured home directory override, or the user's
// home directory. Returns "" when no home directory can be determined, in
// which case the default stage is skipped.
func (l *Locator) homeDir() string {
	if l.homeSet {
		return l.home
	}

	home, err := os.UserHomeDir()
	if err != nil {
		l.logger.Warn("cannot resolve user home directory", "error", err)
		return ""
	}
	return home
}
