package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"pivot/internal/config"
	"pivot/internal/errors"
	"pivot/internal/rank"
	"pivot/internal/remote"
	"pivot/internal/state"
)

var (
	switchFirst   bool
	switchPrintID bool
)

func init() {
	switchCmd.Flags().BoolVar(&switchFirst, "first", false,
		"take the best match without the interactive picker")
	switchCmd.Flags().BoolVar(&switchPrintID, "print-id", false,
		"print only the selected project id")
	rootCmd.AddCommand(switchCmd)
}

var switchCmd = &cobra.Command{
	Use:   "switch [query]",
	Short: "Switch to a project",
	Long: `Pick a project and record the switch.

Candidates are ranked the same way as pivot list. When more than one
project matches, an interactive fuzzy finder opens; --first skips it
and takes the best match. The selection is recorded so future switches
rank it higher.

The selected project's path is printed on stdout, shell-quoted and
prefixed with the remote target when the project lives on another
host, so shell wrappers can act on it.`,
	Example: `  # Pick interactively from all projects
  pivot switch

  # Switch to the best match for "api"
  pivot switch api --first

  # Use in a shell function
  cd "$(pivot switch --first myproject)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSwitch,
}

func runSwitch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	projects, err := loadProjects(cmd)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return errors.NewUserError(
			errors.New("no projects configured"),
			"Edit "+configPath()+" to add projects")
	}

	history := loadHistory(cmd)
	ranked := rank.Rank(projects, query, history)
	if len(ranked) == 0 {
		return errors.NewUserError(
			errors.Newf("no projects match %q", query),
			"Run: pivot list")
	}

	selected, err := pickProject(ranked)
	if err != nil {
		return err
	}
	if selected == nil {
		// Picker aborted; nothing to record.
		return nil
	}

	if err := state.NewStore(recentsPath()).Record(selected.ID); err != nil {
		// The switch itself still succeeded.
		loggerFromContext(cmd.Context()).Warn("could not record switch history",
			"project", selected.ID, "error", err)
	}

	if switchPrintID {
		fmt.Fprintln(cmd.OutOrStdout(), selected.ID)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), switchTarget(*selected))
	return nil
}

// pickProject selects one project from the ranked candidates. A single
// candidate or --first short-circuits the interactive picker. Returns nil
// when the user aborts.
func pickProject(ranked []config.ProjectConfig) (*config.ProjectConfig, error) {
	if switchFirst || len(ranked) == 1 {
		return &ranked[0], nil
	}

	idx, err := fuzzyfinder.Find(
		ranked,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", ranked[i].Name, ranked[i].ID)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			p := ranked[i]
			var sb strings.Builder
			fmt.Fprintf(&sb, "Name: %s\nID:   %s\nPath: %s\n", p.Name, p.ID, p.Path)
			if p.Remote != "" {
				fmt.Fprintf(&sb, "Remote: %s\n", p.Remote)
			}
			fmt.Fprintf(&sb, "Color: %s\n", p.Color)
			return sb.String()
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive picker failed")
	}

	return &ranked[idx], nil
}

// switchTarget renders the project destination for shell consumption.
// Local projects print their quoted path; remote projects prefix the
// remote target so wrappers can dispatch over SSH.
func switchTarget(p config.ProjectConfig) string {
	if p.Remote == "" {
		return remote.ShellQuote(p.Path)
	}
	target, _ := remote.ExtractTarget(p.Remote)
	return remote.ShellQuote(target) + ":" + remote.ShellQuote(p.Path)
}
