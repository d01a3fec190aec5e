package config

import (
	"fmt"
	"sort"
	"strings"

	"pivot/internal/ident"
	"pivot/internal/remote"
)

// projectKeys are the recognized keys of a [[project]] entry.
var projectKeys = []string{
	"name", "path", "remote", "color", "agentLayer", "pinnedTabs", "defaultTabs",
}

// DefaultProjectColor is used when a project declares no color or declares
// an invalid one.
const DefaultProjectColor = "#3B82F6" // palette blue

// palette maps accepted color names to their hex values.
var palette = map[string]string{
	"red":    "#EF4444",
	"orange": "#F97316",
	"yellow": "#EAB308",
	"green":  "#22C55E",
	"teal":   "#14B8A6",
	"blue":   "#3B82F6",
	"purple": "#A855F7",
	"pink":   "#EC4899",
	"gray":   "#6B7280",
}

// parseProjects parses the [[project]] array of tables.
//
// Containment here differs from the global sections: there is no sensible
// default for a project identity, so an entry that fails required-field
// validation is dropped from the list (with a failure finding) instead of
// being defaulted. Invalid optional fields degrade per field: a bad color
// falls back to DefaultProjectColor, a bad remote is treated as absent, and
// bad tab URLs are excluded per index.
func parseProjects(root Table, fs *Findings) []ProjectConfig {
	v, ok := root["project"]
	if !ok {
		return nil
	}
	entries, ok := asTableArray(v)
	if !ok {
		fs.Fail(
			"project must be an array of tables",
			fmt.Sprintf("got %T", v),
			"Declare each project as [[project]]",
		)
		return nil
	}

	projects := make([]ProjectConfig, 0, len(entries))
	seen := make(map[string]int) // id -> first declaring index

	for i, tbl := range entries {
		label := fmt.Sprintf("project[%d]", i)

		if tbl == nil {
			fs.Fail(
				label+" must be a table",
				"",
				"Declare each project as [[project]]",
			)
			continue
		}

		project, ok := parseProjectEntry(tbl, label, fs)
		if !ok {
			continue
		}

		if first, dup := seen[project.ID]; dup {
			fs.Warn(
				fmt.Sprintf("duplicate project id %q", project.ID),
				fmt.Sprintf("%s and project[%d] normalize to the same id", label, first),
				"Rename one of the projects",
			)
		} else {
			seen[project.ID] = i
		}

		projects = append(projects, project)
	}

	return projects
}

// parseProjectEntry parses one project table. The bool is false when the
// entry must be dropped.
func parseProjectEntry(tbl Table, label string, fs *Findings) (ProjectConfig, bool) {
	knownKeys(tbl, label, projectKeys, fs)

	name, nameOK := requireString(tbl, "name", label+".name", fs)
	path, pathOK := requireString(tbl, "path", label+".path", fs)
	if !nameOK || !pathOK {
		fs.Fail(
			label+" dropped",
			"a project requires a non-empty name and path",
			"",
		)
		return ProjectConfig{}, false
	}

	id := ident.Normalize(name)
	if id == "" {
		fs.Fail(
			label+".name has no usable characters",
			fmt.Sprintf("%q normalizes to an empty id", name),
			"Use a name containing letters or digits",
		)
		fs.Fail(label+" dropped", "a project requires a derivable id", "")
		return ProjectConfig{}, false
	}

	project := ProjectConfig{
		ID:    id,
		Name:  name,
		Path:  path,
		Color: DefaultProjectColor,
	}

	if authority, ok := optString(tbl, "remote", label+".remote", fs); ok {
		if _, err := remote.ParseAuthority(authority); err != nil {
			fs.Fail(
				label+".remote is not a valid remote authority",
				err.Error(),
				`Use the form "`+remote.Prefix+`user@host"`,
			)
		} else {
			project.Remote = authority
		}
	}

	if colorValue, ok := optString(tbl, "color", label+".color", fs); ok {
		if hex, ok := resolveColor(colorValue); ok {
			project.Color = hex
		} else {
			fs.Fail(
				label+".color must be #RRGGBB or a palette name",
				fmt.Sprintf("got %q", colorValue),
				"Use a 6-digit hex color or one of: "+paletteNames(),
			)
		}
	}

	if v, ok := optBool(tbl, "agentLayer", label+".agentLayer", fs); ok {
		project.AgentLayer = &v
	}

	if urls, ok := optStringArray(tbl, "pinnedTabs", label+".pinnedTabs", fs); ok {
		checked, _ := checkTabURLs(urls, label+".pinnedTabs", fs)
		project.PinnedTabs = checked
	}
	if urls, ok := optStringArray(tbl, "defaultTabs", label+".defaultTabs", fs); ok {
		checked, _ := checkTabURLs(urls, label+".defaultTabs", fs)
		project.DefaultTabs = checked
	}

	return project, true
}

// resolveColor accepts a #RRGGBB hex color or a palette name and returns
// the hex form.
func resolveColor(value string) (string, bool) {
	if hex, ok := palette[value]; ok {
		return hex, true
	}
	if len(value) != 7 || value[0] != '#' {
		return "", false
	}
	for _, c := range value[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return "", false
		}
	}
	return value, true
}

// paletteNames returns the palette names as a sorted, comma-joined list.
func paletteNames() string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
