package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/meigma/hfcache"
)

// completeRepoIDs returns completions for commands whose first argument is
// a <namespace/name> repository identifier. Suggestions come from scanning
// the resolved cache for the selected --type, so only repositories that
// are actually present locally are offered.
func completeRepoIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Only the first argument is a repository identifier
	if len(args) >= 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	kind, err := parseRepoKind(cmd.Flag("type").Value.String())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	info, err := hfcache.New().ScanCache(kind)
	if err != nil {
		// Don't show errors to the user during completion - just return no suggestions
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, r := range info.Repos {
		if strings.HasPrefix(r.ID, toComplete) {
			completions = append(completions, r.ID)
		}
	}

	// NoFileComp prevents falling back to local file completion
	return completions, cobra.ShellCompDirectiveNoFileComp
}
