package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meigma/hfcache"
)

// Locate command flags
var (
	locateType     string
	locateRevision string
)

var locateCmd = &cobra.Command{
	Use:   "locate <namespace/name>",
	Short: "Print a cached repository's snapshot directory",
	Long: `Resolve the on-disk snapshot directory for a cached repository.

The repository's refs/<revision> pointer selects the snapshot; the
default revision is "main". The revision may also name a snapshot id
directly.

Examples:
  hfcache locate acme/widget
  hfcache locate --type dataset acme/corpus
  hfcache locate --revision v1.0 acme/widget`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeRepoIDs,
	RunE:              runLocate,
}

func init() {
	locateCmd.Flags().StringVarP(&locateType, "type", "t", "model", "Repository type: model or dataset")
	locateCmd.Flags().StringVarP(&locateRevision, "revision", "r", hfcache.DefaultRevision, "Revision to resolve")
	rootCmd.AddCommand(locateCmd)
}

func runLocate(_ *cobra.Command, args []string) error {
	kind, err := parseRepoKind(locateType)
	if err != nil {
		return err
	}

	dir, err := newLocator().SnapshotDir(kind, args[0], locateRevision)
	if err != nil {
		return err
	}

	fmt.Println(dir)
	return nil
}
