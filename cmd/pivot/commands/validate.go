package commands

import (
	"unicode/utf8"

	"github.com/spf13/cobra"

	"pivot/internal/config"
	"pivot/internal/errors"
	"pivot/internal/report"
	"pivot/pkg/fileutil"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output findings as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for problems",
	Long: `Parse the configuration file and report every finding.

Validation never stops at the first problem: a broken value falls back
to its default and produces a failure finding, a suspicious one a
warning. The command exits non-zero when the file fails to parse or any
finding is a failure, so it can gate scripts and CI.

Unlike other commands, validate does not create a starter configuration
when the file is missing.`,
	Example: `  # Validate the default configuration
  pivot validate

  # Machine-readable output
  pivot validate --json

  See Also: pivot init, pivot doctor`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path := configPath()

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return errors.NewUserError(
			errors.Wrapf(err, "reading configuration at %s", path),
			"Run: pivot init")
	}
	if !utf8.Valid(data) {
		return errors.NewUserError(
			errors.Newf("configuration at %s is not valid UTF-8", path),
			"Re-save the file with UTF-8 encoding")
	}

	result := config.Parse(string(data))

	format := report.FormatText
	if validateJSON {
		format = report.FormatJSON
	}
	if err := report.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return err
	}

	if result.HasParseError {
		return errors.NewExitError(errors.New("configuration is not valid TOML"), errors.ExitUser)
	}
	if failures := result.Findings.Failures(); len(failures) > 0 {
		return errors.NewExitError(
			errors.Newf("configuration has %d validation failure(s)", len(failures)),
			errors.ExitUser)
	}
	return nil
}
