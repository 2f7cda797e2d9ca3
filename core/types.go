// Package core provides the shared types and sentinel errors for hfcache.
//
// This package exists to break import cycles between the root hfcache
// package and internal implementation packages. The hfcache package
// re-exports all public types from this package, so external users should
// import hfcache directly, not hfcache/core.
package core

import "errors"

// Sentinel errors for resolution misses. All of these are normal
// control-flow branches for callers, checked with errors.Is; none of them
// indicates a corrupt cache.
var (
	// ErrCacheNotFound indicates that no cache directory validated at any
	// stage of the fallback chain.
	ErrCacheNotFound = errors.New("hfcache: no cache directory found")

	// ErrRepoNotCached indicates the repository directory is not present
	// in the local cache.
	ErrRepoNotCached = errors.New("hfcache: repository not cached")

	// ErrSnapshotMissing indicates the referenced snapshot directory does
	// not exist.
	ErrSnapshotMissing = errors.New("hfcache: snapshot directory missing")
)

// Environment variables consulted by the locator.
//
// TRANSFORMERS_CACHE (~/.cache/huggingface/transformers) is a recognized
// but deprecated alias for HF_HOME and is deliberately never read.
const (
	// EnvHFHome overrides the cache root (~/.cache/huggingface).
	EnvHFHome = "HF_HOME"

	// EnvHubCache overrides the hub sub-cache (~/.cache/huggingface/hub).
	EnvHubCache = "HUGGINGFACE_HUB_CACHE"

	// EnvDatasetsCache overrides the datasets sub-cache
	// (~/.cache/huggingface/datasets).
	EnvDatasetsCache = "HF_DATASETS_CACHE"

	// EnvXDGCacheHome overrides the generic XDG cache base (~/.cache).
	EnvXDGCacheHome = "XDG_CACHE_HOME"
)

// RepoKind distinguishes model and dataset repositories. The kind selects
// both the cache sub-directory and the repository folder prefix.
type RepoKind string

const (
	// ModelRepo is a model repository, cached under models--<ns>--<name>.
	ModelRepo RepoKind = "model"

	// DatasetRepo is a dataset repository, cached under
	// datasets--<ns>--<name>.
	DatasetRepo RepoKind = "dataset"
)

// FolderPrefix returns the repository folder prefix for the kind
// ("models" or "datasets").
func (k RepoKind) FolderPrefix() string {
	if k == DatasetRepo {
		return "datasets"
	}
	return "models"
}

// CacheSubdir returns the sub-directory name used under the cache root
// ("hub" or "datasets").
func (k RepoKind) CacheSubdir() string {
	if k == DatasetRepo {
		return "datasets"
	}
	return "hub"
}
