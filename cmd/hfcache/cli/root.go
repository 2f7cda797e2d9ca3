// Package cli implements the hfcache command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/meigma/hfcache"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hfcache",
	Short: "Inspect the local Hugging Face cache",
	Long: `Hfcache resolves and inspects the local Hugging Face cache.

It locates the cache root, the hub and datasets sub-caches, and the
snapshot directory a cached repository's ref points to, following the
same environment-variable precedence the hub clients use. All commands
are read-only with respect to the cache.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// newLocator creates a locator with configured options.
func newLocator() *hfcache.Locator {
	var opts []hfcache.Option
	if verbose {
		opts = append(opts, hfcache.WithLogger(
			slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug})),
		))
	}
	return hfcache.New(opts...)
}

// formatError converts hfcache errors to user-friendly messages.
func formatError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, hfcache.ErrCacheNotFound):
		return fmt.Sprintf("Error: no cache directory found: %v", err)
	case errors.Is(err, hfcache.ErrRepoNotCached):
		return fmt.Sprintf("Error: repository not cached: %v", err)
	case errors.Is(err, hfcache.ErrSnapshotMissing):
		return fmt.Sprintf("Error: snapshot not on disk: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// parseRepoKind maps a --type flag value to a repository kind.
func parseRepoKind(s string) (hfcache.RepoKind, error) {
	switch s {
	case "model", "models":
		return hfcache.ModelRepo, nil
	case "dataset", "datasets":
		return hfcache.DatasetRepo, nil
	default:
		return "", fmt.Errorf("invalid repository type %q (expected model or dataset)", s)
	}
}
