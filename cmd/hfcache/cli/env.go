package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meigma/hfcache"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show resolved cache directories",
	Long: `Display the four resolved cache directories.

Each lookup follows its environment-variable fallback chain down to the
conventional default under the home directory. Lookups for which no
directory exists are shown as "(not found)".

Examples:
  hfcache env
  HF_HOME=/data/hf hfcache env`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(_ *cobra.Command, _ []string) error {
	loc := newLocator()

	lookups := []struct {
		name    string
		resolve func() (string, error)
	}{
		{"cache home", loc.CacheHome},
		{"hub cache", loc.HubDir},
		{"datasets cache", loc.DatasetsDir},
		{"xdg cache home", loc.XDGCacheHome},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LOOKUP\tDIRECTORY")
	for _, lookup := range lookups {
		dir, err := lookup.resolve()
		switch {
		case errors.Is(err, hfcache.ErrCacheNotFound):
			dir = "(not found)"
		case err != nil:
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", lookup.name, dir)
	}
	return tw.Flush()
}
