package hfcache

import (
	"strings"

	"github.com/meigma/hfcache/core"
)

// RepoKind distinguishes model and dataset repositories.
// Re-exported from core package.
type RepoKind = core.RepoKind

// Repository kinds.
const (
	ModelRepo   = core.ModelRepo
	DatasetRepo = core.DatasetRepo
)

// Repo identifies a hub repository inside the local cache.
type Repo struct {
	// Kind selects the folder prefix and the cache sub-directory.
	Kind RepoKind
	// ID is the hub identifier in "namespace/name" form. Identifiers are
	// trusted as given; no validation is applied beyond the folder-name
	// mapping below.
	ID string
}

// NewRepo creates a Repo for the given kind and identifier.
func NewRepo(kind RepoKind, id string) Repo {
	return Repo{Kind: kind, ID: id}
}

// FolderName returns the repository's cache folder name, e.g.
// "models--org--name". Every "/" in the identifier is replaced with "--"
// per the hub cache layout.
func (r Repo) FolderName() string {
	return r.Kind.FolderPrefix() + "--" + strings.ReplaceAll(r.ID, "/", "--")
}
