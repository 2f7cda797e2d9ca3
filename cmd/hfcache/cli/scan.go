package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/meigma/hfcache"
	"github.com/meigma/hfcache/cmd/hfcache/cli/config"
)

// Scan command flags
var (
	scanDir  string
	scanType string
	scanLong bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show cache usage",
	Long: `Scan the cache and report per-repository disk usage.

By default the resolved hub cache is scanned; --type dataset scans the
datasets cache instead, and --dir scans an explicit directory. The scan
is read-only.

Examples:
  hfcache scan
  hfcache scan --type dataset
  hfcache scan --dir ~/.cache/huggingface/hub --long`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanDir, "dir", "", "Cache directory to scan (default: resolved cache)")
	scanCmd.Flags().StringVarP(&scanType, "type", "t", "model", "Cache to scan when --dir is not set: model or dataset")
	scanCmd.Flags().BoolVarP(&scanLong, "long", "l", false, "Show refs and snapshots per repository")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loc := newLocator()

	dir := scanDir
	if dir == "" {
		dir = cfg.Cache.Dir
	}

	var info *hfcache.CacheInfo
	if dir != "" {
		resolved, err := resolveScanDir(dir)
		if err != nil {
			return err
		}
		info, err = loc.ScanDir(resolved)
		if err != nil {
			return err
		}
	} else {
		kind, err := parseRepoKind(scanType)
		if err != nil {
			return err
		}
		info, err = loc.ScanCache(kind)
		if err != nil {
			return err
		}
	}

	if info.RepoCount == 0 {
		fmt.Println("Cache is empty")
		return nil
	}

	fmt.Printf("Cache: %s\n", info.Path)
	fmt.Printf("Size:  %s (%d bytes)\n", humanize.Bytes(safeUint64(info.TotalSize)), info.TotalSize)
	fmt.Printf("Repositories: %d\n\n", info.RepoCount)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REPO\tTYPE\tSIZE\tFILES\tBLOBS\tMODIFIED")
	for _, r := range info.Repos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID,
			r.Kind,
			humanize.Bytes(safeUint64(r.Size)),
			r.FileCount,
			r.Blobs,
			humanize.Time(r.LastModified))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if scanLong {
		for _, r := range info.Repos {
			fmt.Printf("\n%s\n", r.ID)
			for _, name := range sortedRefNames(r.Refs) {
				fmt.Printf("  ref %s -> %s\n", name, r.Refs[name])
			}
			for _, id := range r.Snapshots {
				fmt.Printf("  snapshot %s\n", id)
			}
		}
	}

	return nil
}

// resolveScanDir expands ~ and converts to absolute path.
func resolveScanDir(path string) (string, error) {
	if path == "" {
		return "", errors.New("cache directory is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	return absPath, nil
}

func sortedRefNames(refs map[string]string) []string {
	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func safeUint64(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
