// Package commands implements the CLI commands for pivot.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pivot/cmd"
	"pivot/internal/errors"
	"pivot/internal/logging"
	"pivot/internal/paths"
	"pivot/internal/settings"
)

// configFlag holds the value of the --config flag.
var configFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cliSettings holds the loaded CLI preferences.
var cliSettings *settings.Settings

// settingsLoadErr holds any error that occurred during settings loading.
var settingsLoadErr error

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"path to the configuration file (default: XDG config dir)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("pivot version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	settings.Init()
	cliSettings, settingsLoadErr = settings.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "pivot",
	Short: "Fast project switching for your desktop",
	Long: `pivot keeps a catalog of your projects and switches between them
quickly: pick a project by fuzzy search or a query and pivot remembers
what you used last, ranking recent projects first.

Projects are declared in a TOML configuration file. pivot validates the
file diagnostically: a broken value falls back to its default and is
reported as a finding instead of aborting the whole load.`,
	Example: `  # Create a starter configuration
  pivot init

  # Check the configuration for problems
  pivot validate

  # List projects, best match first
  pivot list api

  # Switch interactively
  pivot switch

  See Also: pivot init, pivot doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkSettings(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// configPath resolves the configuration file location: the --config flag
// wins, then the settings file / PIVOT_CONFIG_PATH, then the XDG default.
func configPath() string {
	if configFlag != "" {
		return configFlag
	}
	if cliSettings != nil && cliSettings.ConfigPath != "" {
		return cliSettings.ConfigPath
	}
	return paths.ConfigFile()
}

// recentsPath resolves the switch-history state file location.
func recentsPath() string {
	if cliSettings != nil && cliSettings.RecentsPath != "" {
		return cliSettings.RecentsPath
	}
	return paths.RecentsFile()
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("PIVOT_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logFormat
	if format == "" && cliSettings != nil {
		format = cliSettings.LogFormat
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(format) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkSettings surfaces settings load errors before any command runs.
func checkSettings(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if settingsLoadErr != nil {
		return errors.NewConfigError(settingsLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
