package hfcache

import "github.com/meigma/hfcache/core"

// Sentinel errors for resolution misses.
// Re-exported from core package.
var (
	// ErrCacheNotFound indicates no cache directory validated at any
	// stage of a fallback chain.
	ErrCacheNotFound = core.ErrCacheNotFound

	// ErrRepoNotCached indicates the repository is not present in the
	// local cache.
	ErrRepoNotCached = core.ErrRepoNotCached

	// ErrSnapshotMissing indicates the referenced snapshot directory does
	// not exist.
	ErrSnapshotMissing = core.ErrSnapshotMissing
)
