package config

import (
	"github.com/pelletier/go-toml/v2"
)

// rootKeys are the recognized top-level keys of a pivot config document.
var rootKeys = []string{"app", "agentLayer", "chrome", "layout", "project"}

// Parse turns the raw text of a configuration document into a typed Config
// plus findings. It never fails on content: a syntactically valid document
// with invalid fields yields findings and defaults, not an error. Only a
// document the TOML decoder rejects outright produces HasParseError and a
// nil Config.
func Parse(text string) LoadResult {
	var raw map[string]any
	if err := toml.Unmarshal([]byte(text), &raw); err != nil {
		var fs Findings
		fs.Fail(
			"configuration is not valid TOML",
			err.Error(),
			"Fix the syntax error and reload",
		)
		return LoadResult{
			Findings:      fs,
			Projects:      []ProjectConfig{},
			HasParseError: true,
		}
	}

	root := Table(raw)
	var fs Findings

	knownKeys(root, "the document root", rootKeys, &fs)

	cfg := &Config{
		App:        parseApp(root, &fs),
		AgentLayer: parseAgentLayer(root, &fs),
		Chrome:     parseChrome(root, &fs),
		Layout:     parseLayout(root, &fs),
		Projects:   parseProjects(root, &fs),
	}

	return LoadResult{
		Config:   cfg,
		Findings: fs,
		Projects: cfg.Projects,
	}
}
