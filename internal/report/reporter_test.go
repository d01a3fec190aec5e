package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"pivot/internal/config"
)

func init() {
	// Keep assertions on plain text.
	color.NoColor = true
}

func TestReport_TextValid(t *testing.T) {
	result := config.Parse("")

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText).Report(result); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Configuration is valid") {
		t.Errorf("output = %q, want valid banner", out)
	}
	if !strings.Contains(out, "0 project(s)") {
		t.Errorf("output = %q, want project count", out)
	}
}

func TestReport_TextFailuresAndWarnings(t *testing.T) {
	result := config.Parse(`
bogus = true

[layout]
windowHeight = 150
`)

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText).Report(result); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Failures:") {
		t.Errorf("output = %q, want failures section", out)
	}
	if !strings.Contains(out, "Warnings:") {
		t.Errorf("output = %q, want warnings section", out)
	}
	if !strings.Contains(out, "failure(s)") || !strings.Contains(out, "warning(s)") {
		t.Errorf("output = %q, want summary counts", out)
	}
}

func TestReport_TextParseError(t *testing.T) {
	result := config.Parse("not [valid toml")

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText).Report(result); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	if !strings.Contains(buf.String(), "failed to parse") {
		t.Errorf("output = %q, want parse error banner", buf.String())
	}
}

func TestReport_JSON(t *testing.T) {
	result := config.Parse(`
[[project]]
name = "Alpha"
path = "/tmp/alpha"
`)

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatJSON).Report(result); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var decoded struct {
		Findings []struct {
			Severity string `json:"severity"`
			Title    string `json:"title"`
		} `json:"findings"`
		Projects      []map[string]any `json:"projects"`
		HasParseError bool             `json:"hasParseError"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(decoded.Projects) != 1 {
		t.Errorf("projects = %d, want 1", len(decoded.Projects))
	}
	if decoded.HasParseError {
		t.Error("hasParseError = true, want false")
	}
}
