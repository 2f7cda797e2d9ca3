// Package locate implements the check-validate-fallback chain shared by
// every cache directory lookup.
package locate

import (
	"log/slog"
	"os"
)

// Candidate is one stage of a fallback chain.
type Candidate struct {
	// Path is the candidate directory. An empty path means the stage did
	// not produce a candidate (e.g. its environment variable is unset)
	// and is skipped without a diagnostic.
	Path string

	// Source names where the candidate came from, for diagnostics. Either
	// an environment variable name or "default".
	Source string
}

// FirstDir returns the first candidate whose path exists and is a
// directory. A non-empty candidate that fails validation is logged as a
// warning and skipped; the chain never fails fast.
func FirstDir(logger *slog.Logger, candidates []Candidate) (string, bool) {
	for _, c := range candidates {
		if c.Path == "" {
			continue
		}
		if IsDir(c.Path) {
			return c.Path, true
		}
		logger.Warn("invalid cache directory",
			"source", c.Source,
			"path", c.Path)
	}
	return "", false
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether path exists, regardless of type.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
