package hfcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/meigma/hfcache/core"
	"github.com/meigma/hfcache/internal/locate"
)

// DefaultRevision is the revision resolved by ModelDir and DatasetDir.
const DefaultRevision = "main"

// ModelDir resolves the snapshot directory currently referenced by the
// "main" revision of a model repository. The id must be a hub identifier
// such as "org/name".
//
// Returns ErrCacheNotFound, ErrRepoNotCached, or ErrSnapshotMissing for
// the recoverable absence cases. A repository whose refs/main pointer is
// missing or unreadable yields the wrapped filesystem error instead;
// callers should treat that as corrupt repository metadata, not absence.
func (l *Locator) ModelDir(id string) (string, error) {
	return l.SnapshotDir(ModelRepo, id, DefaultRevision)
}

// DatasetDir resolves the snapshot directory currently referenced by the
// "main" revision of a dataset repository.
// Error semantics match ModelDir.
func (l *Locator) DatasetDir(id string) (string, error) {
	return l.SnapshotDir(DatasetRepo, id, DefaultRevision)
}

// SnapshotDir resolves the snapshot directory for a repository at the
// given revision. The revision is normally a ref name (a file under the
// repository's refs/ directory); a revision with no ref file that names an
// existing snapshot directory is used as a literal snapshot id, matching
// hub semantics for commit-hash revisions.
func (l *Locator) SnapshotDir(kind RepoKind, id, revision string) (string, error) {
	base, err := l.repoBaseDir(kind)
	if err != nil {
		return "", err
	}

	repoDir := filepath.Join(base, NewRepo(kind, id).FolderName())
	if !locate.Exists(repoDir) {
		l.logger.Error("repository not found in cache",
			"kind", kind, "repo", id, "path", repoDir)
		return "", fmt.Errorf("%s: %w", repoDir, core.ErrRepoNotCached)
	}

	oid, err := l.readRef(repoDir, revision)
	if err != nil {
		return "", err
	}

	snapshot := filepath.Join(repoDir, "snapshots", oid)
	if !locate.Exists(snapshot) {
		l.logger.Error("snapshot directory not found",
			"kind", kind, "repo", id, "revision", revision, "path", snapshot)
		return "", fmt.Errorf("%s: %w", snapshot, core.ErrSnapshotMissing)
	}

	return snapshot, nil
}

// repoBaseDir resolves the base cache directory for a repository kind.
// The dedicated sub-cache lookup is tried first; failing that, the cache
// home and then the XDG cache base are joined with the conventional
// sub-path without re-validation, since the repository existence check
// follows immediately.
func (l *Locator) repoBaseDir(kind RepoKind) (string, error) {
	var (
		dir string
		err error
	)
	if kind == DatasetRepo {
		dir, err = l.DatasetsDir()
	} else {
		dir, err = l.HubDir()
	}
	if err == nil {
		return dir, nil
	}

	if home, herr := l.CacheHome(); herr == nil {
		return filepath.Join(home, kind.CacheSubdir()), nil
	}

	if xdg, xerr := l.XDGCacheHome(); xerr == nil {
		return filepath.Join(xdg, "huggingface", kind.CacheSubdir()), nil
	}

	l.logger.Error("could not find a suitable cache directory", "kind", kind)
	return "", fmt.Errorf("%s cache: %w", kind, core.ErrCacheNotFound)
}

// readRef reads refs/<revision> inside a repository directory and returns
// the trimmed object id.
func (l *Locator) readRef(repoDir, revision string) (string, error) {
	refPath := filepath.Join(repoDir, "refs", revision)
	data, err := os.ReadFile(refPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) &&
			locate.IsDir(filepath.Join(repoDir, "snapshots", revision)) {
			return revision, nil
		}
		// Missing or unreadable ref pointers are corrupt repository
		// metadata, not absence; the raw error propagates unwrapped into
		// any sentinel.
		return "", fmt.Errorf("read ref %s: %w", refPath, err)
	}

	return strings.TrimSpace(string(data)), nil
}
