package doctor

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"pivot/internal/config"
	"pivot/internal/errors"
	"pivot/pkg/fileutil"
)

// ConfigFileCheck verifies that the configuration file exists and is readable.
type ConfigFileCheck struct {
	path string
}

var _ Check = (*ConfigFileCheck)(nil)

// NewConfigFileCheck creates a check for the configuration file at path.
func NewConfigFileCheck(path string) *ConfigFileCheck {
	return &ConfigFileCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigFileCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigFileCheck) Category() string {
	return "config"
}

// Run executes the configuration file diagnostic check.
func (c *ConfigFileCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	info, err := os.Stat(c.path)
	if os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = "configuration file does not exist yet"
		result.FixHint = "Run: pivot init"
		return result
	}
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat configuration file: %v", err)
		return result
	}
	if info.IsDir() {
		result.Status = SeverityError
		result.Message = "configuration path is a directory, not a file"
		result.FixHint = "Remove the directory and run: pivot init"
		return result
	}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("configuration file is not readable: %v", err)
		result.FixHint = "chmod 644 " + c.path
		return result
	}
	if !utf8.Valid(data) {
		result.Status = SeverityError
		result.Message = "configuration file is not valid UTF-8"
		return result
	}

	result.Status = SeverityPass
	result.Message = "configuration file exists and is readable"
	result.Details["size_bytes"] = info.Size()
	return result
}

// ConfigParseCheck parses the configuration and reports validation findings.
type ConfigParseCheck struct {
	path string
}

var _ Check = (*ConfigParseCheck)(nil)

// NewConfigParseCheck creates a check that parses the configuration at path.
func NewConfigParseCheck(path string) *ConfigParseCheck {
	return &ConfigParseCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigParseCheck) Name() string {
	return "config-parse"
}

// Category returns the grouping for this check.
func (c *ConfigParseCheck) Category() string {
	return "config"
}

// Run executes the configuration parse diagnostic check.
func (c *ConfigParseCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if err != nil {
		result.Status = SeverityInfo
		result.Message = "configuration file not available, nothing to parse"
		return result
	}

	parsed := config.Parse(string(data))
	failures := parsed.Findings.Failures()
	warnings := parsed.Findings.Warnings()
	result.Details["failures"] = len(failures)
	result.Details["warnings"] = len(warnings)
	result.Details["projects"] = len(parsed.Projects)

	switch {
	case parsed.HasParseError:
		result.Status = SeverityError
		result.Message = "configuration is not valid TOML"
		result.FixHint = "Run: pivot validate"
	case len(failures) > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("configuration parsed with %d validation failure(s), defaults applied", len(failures))
		result.FixHint = "Run: pivot validate"
	case len(warnings) > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("configuration parsed with %d warning(s)", len(warnings))
		result.FixHint = "Run: pivot validate"
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("configuration is valid (%d project(s))", len(parsed.Projects))
	}
	return result
}

// ProjectPathsCheck verifies that configured project paths exist on disk.
// Remote projects are skipped since their paths live on another host.
type ProjectPathsCheck struct {
	projects []config.ProjectConfig
}

var _ Check = (*ProjectPathsCheck)(nil)

// NewProjectPathsCheck creates a check over the given project entries.
func NewProjectPathsCheck(projects []config.ProjectConfig) *ProjectPathsCheck {
	return &ProjectPathsCheck{projects: projects}
}

// Name returns the unique identifier for this check.
func (c *ProjectPathsCheck) Name() string {
	return "project-paths"
}

// Category returns the grouping for this check.
func (c *ProjectPathsCheck) Category() string {
	return "projects"
}

// Run executes the project path diagnostic check.
func (c *ProjectPathsCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	var missing []string
	var checked int
	for _, p := range c.projects {
		if p.Remote != "" {
			continue
		}
		checked++
		if _, err := os.Stat(p.Path); err != nil {
			missing = append(missing, fmt.Sprintf("%s (%s)", p.ID, p.Path))
		}
	}

	if len(missing) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d of %d local project path(s) do not exist", len(missing), checked)
		result.Details = map[string]any{"missing": missing}
		result.FixHint = "Update the path entries in the configuration file"
		return result
	}

	result.Status = SeverityPass
	if checked == 0 {
		result.Message = "no local project paths to check"
	} else {
		result.Message = fmt.Sprintf("all %d local project path(s) exist", checked)
	}
	return result
}

// RecentsStateCheck verifies that the recents state file is well-formed YAML.
type RecentsStateCheck struct {
	path string
}

var _ Check = (*RecentsStateCheck)(nil)

// NewRecentsStateCheck creates a check for the recents state file at path.
func NewRecentsStateCheck(path string) *RecentsStateCheck {
	return &RecentsStateCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *RecentsStateCheck) Name() string {
	return "recents-state"
}

// Category returns the grouping for this check.
func (c *RecentsStateCheck) Category() string {
	return "state"
}

// Run executes the recents state diagnostic check.
func (c *RecentsStateCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if errors.Is(err, os.ErrNotExist) {
		result.Status = SeverityInfo
		result.Message = "no recents recorded yet"
		return result
	}
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("recents state file is not readable: %v", err)
		return result
	}

	var recents struct {
		IDs []string `yaml:"recents"`
	}
	if err := yaml.Unmarshal(data, &recents); err != nil {
		result.Status = SeverityWarning
		result.Message = "recents state file is not valid YAML"
		result.FixHint = "Delete " + c.path + " to reset switch history"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("recents state is valid (%d entries)", len(recents.IDs))
	return result
}
