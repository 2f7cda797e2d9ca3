// Package scan walks a hub-layout cache directory and builds a read-only
// inventory of the repositories it contains.
package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/hfcache/core"
)

// Repo describes one cached repository.
type Repo struct {
	// ID is the hub identifier reconstructed from the folder name. The
	// mapping is best-effort: a namespace or name that itself contains
	// "--" is ambiguous and reconstructs with "/" in its place.
	ID string
	// Kind is the repository kind, derived from the folder prefix.
	Kind core.RepoKind
	// Path is the repository's cache directory.
	Path string
	// Size is the total size of all files under Path, in bytes.
	Size int64
	// FileCount is the number of regular files under Path.
	FileCount int
	// Refs maps ref names to the snapshot ids they point to.
	Refs map[string]string
	// Snapshots lists the snapshot ids present under snapshots/.
	Snapshots []string
	// Blobs is the number of entries under blobs/.
	Blobs int
	// LastModified is the most recent modification time of any file in
	// the repository.
	LastModified time.Time
}

// Result is the inventory of one cache directory.
type Result struct {
	// Path is the scanned directory.
	Path string
	// TotalSize is the sum of all repository sizes in bytes.
	TotalSize int64
	// Repos contains one entry per recognized repository folder, sorted
	// by LastModified, most recent first.
	Repos []Repo
}

// Dir scans a hub-layout cache directory. Entries that do not follow the
// <kind>--<namespace>--<name> naming scheme are skipped. The scan is
// read-only and never modifies the cache.
func Dir(path string, logger *slog.Logger) (*Result, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read cache directory: %w", err)
	}

	result := &Result{Path: path}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		kind, id, ok := parseFolderName(entry.Name())
		if !ok {
			logger.Debug("skipping unrecognized cache entry", "name", entry.Name())
			continue
		}

		repo, err := scanRepo(filepath.Join(path, entry.Name()), kind, id, logger)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", entry.Name(), err)
		}

		result.TotalSize += repo.Size
		result.Repos = append(result.Repos, *repo)
	}

	sort.Slice(result.Repos, func(i, j int) bool {
		return result.Repos[i].LastModified.After(result.Repos[j].LastModified)
	})

	return result, nil
}

// parseFolderName splits a cache folder name like "models--org--name" into
// its kind and reconstructed identifier.
func parseFolderName(name string) (core.RepoKind, string, bool) {
	prefix, rest, found := strings.Cut(name, "--")
	if !found || rest == "" {
		return "", "", false
	}

	var kind core.RepoKind
	switch prefix {
	case core.ModelRepo.FolderPrefix():
		kind = core.ModelRepo
	case core.DatasetRepo.FolderPrefix():
		kind = core.DatasetRepo
	default:
		return "", "", false
	}

	return kind, strings.ReplaceAll(rest, "--", "/"), true
}

// scanRepo inventories a single repository directory.
func scanRepo(path string, kind core.RepoKind, id string, logger *slog.Logger) (*Repo, error) {
	repo := &Repo{
		ID:   id,
		Kind: kind,
		Path: path,
		Refs: map[string]string{},
	}

	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		repo.Size += info.Size()
		repo.FileCount++
		if info.ModTime().After(repo.LastModified) {
			repo.LastModified = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := readRefs(path, repo); err != nil {
		return nil, err
	}
	if err := readSnapshots(path, repo); err != nil {
		return nil, err
	}
	if err := countBlobs(path, repo, logger); err != nil {
		return nil, err
	}

	return repo, nil
}

// readRefs loads every ref pointer file under refs/.
func readRefs(path string, repo *Repo) error {
	entries, err := os.ReadDir(filepath.Join(path, "refs"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read refs: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(path, "refs", entry.Name()))
		if err != nil {
			return fmt.Errorf("read ref %s: %w", entry.Name(), err)
		}
		repo.Refs[entry.Name()] = strings.TrimSpace(string(data))
	}

	return nil
}

// readSnapshots lists the snapshot ids under snapshots/.
func readSnapshots(path string, repo *Repo) error {
	entries, err := os.ReadDir(filepath.Join(path, "snapshots"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read snapshots: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			repo.Snapshots = append(repo.Snapshots, entry.Name())
		}
	}

	return nil
}

// countBlobs counts the content-addressed files under blobs/. Blob names
// are either git object ids (40 hex chars, non-LFS files) or SHA-256
// digests (LFS files); anything else is reported as malformed.
func countBlobs(path string, repo *Repo, logger *slog.Logger) error {
	entries, err := os.ReadDir(filepath.Join(path, "blobs"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read blobs: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !validBlobName(entry.Name()) {
			logger.Warn("malformed blob name", "repo", repo.ID, "name", entry.Name())
			continue
		}
		repo.Blobs++
	}

	return nil
}

// gitOidHexLen is the length of a hex-encoded git object id (SHA-1).
const gitOidHexLen = 40

func validBlobName(name string) bool {
	if len(name) == gitOidHexLen {
		return isHex(name)
	}
	return digest.NewDigestFromEncoded(digest.SHA256, name).Validate() == nil
}

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
