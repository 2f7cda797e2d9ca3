package hfcache

import (
	"os"
	"time"

	"github.com/meigma/hfcache/internal/scan"
)

// CacheInfo contains a read-only inventory of a hub-layout cache
// directory.
type CacheInfo struct {
	// Path is the scanned cache directory.
	Path string
	// TotalSize is the sum of all repository sizes in bytes.
	TotalSize int64
	// RepoCount is the number of cached repositories.
	RepoCount int
	// Repos describes each cached repository, sorted by LastModified,
	// most recent first.
	Repos []RepoInfo
}

// RepoInfo describes a single cached repository.
type RepoInfo struct {
	// ID is the hub identifier reconstructed from the folder name.
	ID string
	// Kind is the repository kind (model or dataset).
	Kind RepoKind
	// Path is the repository's cache directory.
	Path string
	// Size is the repository's total size on disk in bytes.
	Size int64
	// FileCount is the number of files in the repository.
	FileCount int
	// Refs maps ref names to snapshot ids.
	Refs map[string]string
	// Snapshots lists the snapshot ids present on disk.
	Snapshots []string
	// Blobs is the number of content-addressed blob files.
	Blobs int
	// LastModified is the most recent modification time of any file in
	// the repository.
	LastModified time.Time
}

// ScanCache resolves the base cache directory for the given repository
// kind and scans it. Returns ErrCacheNotFound if no cache directory
// resolves.
func (l *Locator) ScanCache(kind RepoKind) (*CacheInfo, error) {
	dir, err := l.repoBaseDir(kind)
	if err != nil {
		return nil, err
	}
	return l.ScanDir(dir)
}

// ScanDir scans an explicit hub-layout cache directory.
// If the directory doesn't exist, returns an empty CacheInfo.
func (l *Locator) ScanDir(dir string) (*CacheInfo, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return &CacheInfo{Path: dir}, nil
	}

	result, err := scan.Dir(dir, l.logger)
	if err != nil {
		return nil, err
	}

	info := &CacheInfo{
		Path:      result.Path,
		TotalSize: result.TotalSize,
		RepoCount: len(result.Repos),
		Repos:     make([]RepoInfo, len(result.Repos)),
	}

	for i, r := range result.Repos {
		info.Repos[i] = RepoInfo{
			ID:           r.ID,
			Kind:         r.Kind,
			Path:         r.Path,
			Size:         r.Size,
			FileCount:    r.FileCount,
			Refs:         r.Refs,
			Snapshots:    r.Snapshots,
			Blobs:        r.Blobs,
			LastModified: r.LastModified,
		}
	}

	return info, nil
}
