package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pivot/internal/config"
	"pivot/internal/rank"
	"pivot/internal/state"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false,
		"output projects as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List projects, best match first",
	Long: `List configured projects ordered by match quality and recency.

With a query, projects are filtered and ranked: name-prefix matches
first, then id-prefix, name-substring, and id-substring matches.
Within a tier, recently switched projects come first. Without a query
every project is listed, recent ones first.`,
	Example: `  # All projects, recent first
  pivot list

  # Projects matching "api"
  pivot list api`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	projects, err := loadProjects(cmd)
	if err != nil {
		return err
	}

	history := loadHistory(cmd)
	ranked := rank.Rank(projects, query, history)

	if listJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	if len(ranked) == 0 {
		if query == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No projects configured")
			fmt.Fprintf(cmd.OutOrStdout(), "Edit %s to add some\n", configPath())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No projects match %q\n", query)
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPATH\tREMOTE")
	for _, p := range ranked {
		remote := "-"
		if p.Remote != "" {
			remote = p.Remote
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Path, remote)
	}
	return w.Flush()
}

// loadProjects loads the configuration and returns its project entries.
// A missing file is bootstrapped with the starter template and yields an
// empty catalog rather than an error.
func loadProjects(cmd *cobra.Command) ([]config.ProjectConfig, error) {
	result, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return result.Projects, nil
}

// loadHistory reads the switch history. State problems degrade to an empty
// history: ranking still works, it just loses recency.
func loadHistory(cmd *cobra.Command) []string {
	recents, err := state.NewStore(recentsPath()).Load()
	if err != nil {
		loggerFromContext(cmd.Context()).Warn("ignoring unreadable switch history", "error", err)
		return nil
	}
	return recents.IDs
}
