// Package settings provides CLI preference management for pivot using Viper.
//
// Settings cover where pivot looks for its files and how it logs. They are
// distinct from the project configuration itself (internal/config), which has
// its own diagnostic parser.
package settings

import (
	"path/filepath"

	"github.com/spf13/viper"

	"pivot/internal/errors"
	"pivot/internal/paths"
)

// Setting keys, also usable as PIVOT_* environment variables
// (e.g. PIVOT_CONFIG_PATH).
const (
	KeyConfigPath  = "config_path"
	KeyRecentsPath = "recents_path"
	KeyLogFormat   = "log_format"
)

// Settings represents the CLI preference file structure.
type Settings struct {
	// ConfigPath is the location of the project configuration file.
	ConfigPath string `mapstructure:"config_path" yaml:"config_path"`

	// RecentsPath is the location of the switch-history state file.
	RecentsPath string `mapstructure:"recents_path" yaml:"recents_path"`

	// LogFormat selects the default log output format: text or json.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Init initializes Viper with default settings.
// Call this once at application startup before accessing setting values.
func Init() {
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), paths.AppName))

	// Environment variable support
	viper.SetEnvPrefix("PIVOT")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault(KeyConfigPath, paths.ConfigFile())
	viper.SetDefault(KeyRecentsPath, paths.RecentsFile())
	viper.SetDefault(KeyLogFormat, "text")
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns defaults if no file is found and no path was given.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing settings file is only an error when explicitly requested.
			if path != "" {
				return nil, errors.Wrapf(err, "settings file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	return &s, nil
}
