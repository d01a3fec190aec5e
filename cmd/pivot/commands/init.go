package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pivot/internal/config"
	"pivot/internal/errors"
	"pivot/internal/paths"
	"pivot/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration",
	Long: `Write a fully commented starter configuration file.

The starter documents every section, key, and default, plus the named
color palette, so it can be edited without consulting other docs. The
default location follows the XDG base directory specification.`,
	Example: `  # Create the starter configuration
  pivot init

  # Replace an existing configuration with the starter
  pivot init --force

  See Also: pivot validate, pivot doctor`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := configPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.NewSystemError(
			errors.Wrap(err, "creating config directory"),
			"Check directory permissions for "+filepath.Dir(path))
	}

	if err := fileutil.AtomicWriteFile(path, []byte(config.StarterConfig), 0o644); err != nil {
		return errors.NewSystemError(
			errors.Wrap(err, "writing starter configuration"),
			"Check directory permissions for "+filepath.Dir(path))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
