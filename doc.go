// Package hfcache resolves local Hugging Face cache locations: the cache
// root, the hub and datasets sub-caches, the XDG cache base, and the
// snapshot directory a cached repository's ref currently points to.
//
// All operations are read-only. Nothing is created on disk, no network
// access occurs, and results are never cached across calls.
//
// # Basic Usage
//
// Resolve the snapshot directory for a cached model:
//
//	loc := hfcache.New()
//
//	dir, err := loc.ModelDir("acme/widget")
//	if errors.Is(err, hfcache.ErrRepoNotCached) {
//	    // not downloaded yet; a normal outcome, not a failure
//	}
//
// Package-level wrappers use a default Locator:
//
//	hub, err := hfcache.HubDir()
//
// # Resolution Order
//
// Each directory lookup walks a fixed fallback chain. A stage whose path
// does not exist (or is not a directory) is skipped with a warning:
//
//	CacheHome:    HF_HOME                -> ~/.cache/huggingface
//	HubDir:       HUGGINGFACE_HUB_CACHE  -> HF_HOME/hub      -> ~/.cache/huggingface/hub
//	DatasetsDir:  HF_DATASETS_CACHE      -> HF_HOME/datasets -> ~/.cache/huggingface/datasets
//	XDGCacheHome: XDG_CACHE_HOME         -> ~/.cache
//
// TRANSFORMERS_CACHE is a deprecated alias for HF_HOME and is never read.
//
// # Errors
//
// Absence is signaled with wrapped sentinels (ErrCacheNotFound,
// ErrRepoNotCached, ErrSnapshotMissing) and is a normal control-flow
// branch. A repository whose refs/ pointer file is missing or unreadable
// is the one exception: the raw filesystem error propagates, marking
// corrupt repository metadata rather than absence.
//
// # Diagnostics
//
// By default diagnostics are discarded. Inject a logger to attribute them:
//
//	loc := hfcache.New(hfcache.WithLogger(slog.Default()))
package hfcache
