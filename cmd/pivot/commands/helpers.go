package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pivot/internal/config"
	"pivot/internal/errors"
	"pivot/internal/fsys"
	"pivot/internal/logging"
)

// loadConfig loads and parses the project configuration. A missing file is
// bootstrapped with the starter template and treated as an empty catalog;
// create and read failures become exit errors with a suggestion.
func loadConfig(cmd *cobra.Command) (config.LoadResult, error) {
	result, err := config.Load(configPath(), fsys.OS{})
	if err == nil {
		return result, nil
	}

	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Kind == config.FileNotFound {
		fmt.Fprintf(cmd.ErrOrStderr(), "Created starter configuration at %s\n", cfgErr.Path)
		return config.Parse(config.StarterConfig), nil
	}

	return config.LoadResult{}, errors.NewSystemError(err, "Run: pivot doctor")
}

// loggerFromContext returns the logger stored by setupLogging, or the
// default logger when the command runs without the root PreRun.
func loggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	return logging.FromContext(ctx)
}
