// Package report formats configuration findings for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"pivot/internal/config"
)

// Format specifies the output format for findings reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes findings.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the load result's findings to the output.
func (r *Reporter) Report(result config.LoadResult) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

// reportJSON writes the result as JSON.
func (r *Reporter) reportJSON(result config.LoadResult) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

// reportText writes the result as human-readable text.
func (r *Reporter) reportText(result config.LoadResult) error {
	failures := result.Findings.Failures()
	warnings := result.Findings.Warnings()

	if result.HasParseError {
		fmt.Fprintln(r.out, color.RedString("✗ Configuration failed to parse"))
	} else if len(failures) == 0 && len(warnings) == 0 {
		fmt.Fprintf(r.out, "%s (%d project(s))\n",
			color.GreenString("✓ Configuration is valid"), len(result.Projects))
		return nil
	}

	summary := []string{}
	if len(failures) > 0 {
		summary = append(summary, color.RedString("%d failure(s)", len(failures)))
	}
	if len(warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
	}
	if len(summary) > 0 {
		fmt.Fprintf(r.out, "Validation found: %s\n\n", strings.Join(summary, ", "))
	}

	if len(failures) > 0 {
		fmt.Fprintln(r.out, "Failures:")
		for _, f := range failures {
			r.printFinding(f, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}

	if len(warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, f := range warnings {
			r.printFinding(f, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

func (r *Reporter) printFinding(f config.Finding, c color.Attribute) {
	printer := color.New(c).SprintFunc()
	dim := color.New(color.FgHiBlack)

	var sb strings.Builder
	sb.WriteString("  • ")
	sb.WriteString(printer(f.Title))

	if f.Detail != "" {
		detail := f.Detail
		if len(detail) > 80 {
			detail = detail[:77] + "..."
		}
		sb.WriteString(" ")
		sb.WriteString(dim.Sprintf("(%s)", detail))
	}
	if f.Fix != "" {
		sb.WriteString("\n    ")
		sb.WriteString(dim.Sprint("fix: " + f.Fix))
	}

	fmt.Fprintln(r.out, sb.String())
}
