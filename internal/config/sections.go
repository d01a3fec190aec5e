package config

import (
	"fmt"
	"strings"
)

// Recognized keys per section. Immutable after init; never mutated.
var (
	appKeys        = []string{"autoStartAtLogin"}
	agentLayerKeys = []string{"enabled"}
	chromeKeys     = []string{"pinnedTabs", "defaultTabs", "openGitRemote"}
	layoutKeys     = []string{
		"smallScreenThreshold", "windowHeight", "maxWindowWidth",
		"idePosition", "justification", "maxGap",
	}
)

// sectionTable resolves an optional top-level section. A missing section is
// not an error; a present non-table section emits a failure. The bool is
// true only when a usable table was found.
func sectionTable(root Table, name string, fs *Findings) (Table, bool) {
	v, ok := root[name]
	if !ok {
		return nil, false
	}
	tbl, ok := asTable(v)
	if !ok {
		fs.Fail(
			fmt.Sprintf("[%s] must be a table", name),
			fmt.Sprintf("got %T", v),
			fmt.Sprintf("Declare the section as [%s]", name),
		)
		return nil, false
	}
	return tbl, true
}

// The section parsers below share one containment policy: a field whose
// *value* fails a bounds, enum, or URL check discards the entire section in
// favor of its defaults, including sibling fields that validated fine on
// their own. Containment is per section, not per field; callers must not
// expect partial adoption from a failing section. (A field of the wrong
// *type* only loses that field: the reader already substituted the default.)

// parseApp parses the [app] section.
func parseApp(root Table, fs *Findings) AppConfig {
	tbl, ok := sectionTable(root, "app", fs)
	if !ok {
		return DefaultApp()
	}
	knownKeys(tbl, "[app]", appKeys, fs)
	mark := len(*fs)

	cfg := DefaultApp()
	if v, ok := optBool(tbl, "autoStartAtLogin", "app.autoStartAtLogin", fs); ok {
		cfg.AutoStartAtLogin = v
	}
	if !fs.failedSince(mark) {
		fs.Pass("[app] ok")
	}
	return cfg
}

// parseAgentLayer parses the [agentLayer] section.
func parseAgentLayer(root Table, fs *Findings) AgentLayerConfig {
	tbl, ok := sectionTable(root, "agentLayer", fs)
	if !ok {
		return DefaultAgentLayer()
	}
	knownKeys(tbl, "[agentLayer]", agentLayerKeys, fs)
	mark := len(*fs)

	cfg := DefaultAgentLayer()
	if v, ok := optBool(tbl, "enabled", "agentLayer.enabled", fs); ok {
		cfg.Enabled = v
	}
	if !fs.failedSince(mark) {
		fs.Pass("[agentLayer] ok")
	}
	return cfg
}

// parseChrome parses the [chrome] section.
func parseChrome(root Table, fs *Findings) ChromeConfig {
	tbl, ok := sectionTable(root, "chrome", fs)
	if !ok {
		return DefaultChrome()
	}
	knownKeys(tbl, "[chrome]", chromeKeys, fs)
	mark := len(*fs)

	cfg := DefaultChrome()
	valid := true

	if urls, ok := optStringArray(tbl, "pinnedTabs", "chrome.pinnedTabs", fs); ok {
		checked, allOK := checkTabURLs(urls, "chrome.pinnedTabs", fs)
		cfg.PinnedTabs = checked
		valid = valid && allOK
	}
	if urls, ok := optStringArray(tbl, "defaultTabs", "chrome.defaultTabs", fs); ok {
		checked, allOK := checkTabURLs(urls, "chrome.defaultTabs", fs)
		cfg.DefaultTabs = checked
		valid = valid && allOK
	}
	if v, ok := optBool(tbl, "openGitRemote", "chrome.openGitRemote", fs); ok {
		cfg.OpenGitRemote = v
	}

	if !valid {
		return DefaultChrome()
	}
	if !fs.failedSince(mark) {
		fs.Pass("[chrome] ok")
	}
	return cfg
}

// parseLayout parses the [layout] section.
func parseLayout(root Table, fs *Findings) LayoutConfig {
	tbl, ok := sectionTable(root, "layout", fs)
	if !ok {
		return DefaultLayout()
	}
	knownKeys(tbl, "[layout]", layoutKeys, fs)
	mark := len(*fs)

	cfg := DefaultLayout()
	valid := true

	if v, ok := optNumber(tbl, "smallScreenThreshold", "layout.smallScreenThreshold", fs); ok {
		if v <= 0 {
			fs.Fail(
				"layout.smallScreenThreshold must be greater than 0",
				fmt.Sprintf("got %v", v),
				"Use a positive screen size in inches",
			)
			valid = false
		} else {
			cfg.SmallScreenThreshold = v
		}
	}

	if v, ok := optInteger(tbl, "windowHeight", "layout.windowHeight", fs); ok {
		if v < 1 || v > 100 {
			fs.Fail(
				"layout.windowHeight must be between 1 and 100",
				fmt.Sprintf("got %d", v),
				"Use a percentage of the screen height",
			)
			valid = false
		} else {
			cfg.WindowHeight = v
		}
	}

	if v, ok := optNumber(tbl, "maxWindowWidth", "layout.maxWindowWidth", fs); ok {
		if v <= 0 {
			fs.Fail(
				"layout.maxWindowWidth must be greater than 0",
				fmt.Sprintf("got %v", v),
				"Use a positive width in inches",
			)
			valid = false
		} else {
			cfg.MaxWindowWidth = v
		}
	}

	if v, ok := optString(tbl, "idePosition", "layout.idePosition", fs); ok {
		if v != PositionLeft && v != PositionRight {
			fs.Fail(
				`layout.idePosition must be "left" or "right"`,
				fmt.Sprintf("got %q", v),
				"",
			)
			valid = false
		} else {
			cfg.IDEPosition = v
		}
	}

	if v, ok := optString(tbl, "justification", "layout.justification", fs); ok {
		if v != PositionLeft && v != PositionRight {
			fs.Fail(
				`layout.justification must be "left" or "right"`,
				fmt.Sprintf("got %q", v),
				"",
			)
			valid = false
		} else {
			cfg.Justification = v
		}
	}

	if v, ok := optInteger(tbl, "maxGap", "layout.maxGap", fs); ok {
		if v < 0 || v > 100 {
			fs.Fail(
				"layout.maxGap must be between 0 and 100",
				fmt.Sprintf("got %d", v),
				"Use a percentage of the screen width",
			)
			valid = false
		} else {
			cfg.MaxGap = v
		}
	}

	if !valid {
		return DefaultLayout()
	}
	if !fs.failedSince(mark) {
		fs.Pass("[layout] ok")
	}
	return cfg
}

// checkTabURLs validates each URL in a tab list. Invalid entries emit a
// per-index failure and are excluded from the returned list; the bool
// reports whether every entry passed.
func checkTabURLs(urls []string, label string, fs *Findings) ([]string, bool) {
	out := make([]string, 0, len(urls))
	allOK := true
	for i, u := range urls {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			fs.Fail(
				fmt.Sprintf("%s[%d] must start with http:// or https://", label, i),
				fmt.Sprintf("got %q", u),
				"Use a full URL including the scheme",
			)
			allOK = false
			continue
		}
		out = append(out, u)
	}
	return out, allOK
}
