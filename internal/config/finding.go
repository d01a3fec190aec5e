package config

// Severity indicates the outcome class of a single configuration check.
type Severity int

const (
	// SeverityPass indicates the check passed without issues.
	SeverityPass Severity = iota

	// SeverityWarn indicates a non-blocking issue, such as an unknown key.
	SeverityWarn

	// SeverityFail indicates invalid content. The affected field or section
	// falls back to its default (or the project entry is dropped); the load
	// itself still completes.
	SeverityFail
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityWarn:
		return "warn"
	case SeverityFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON reports carry the
// severity name rather than its numeric value.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is one content-level diagnostic produced while parsing a
// configuration document. Findings are immutable facts: they never abort
// the load and are appended in the order they were discovered.
type Finding struct {
	// Severity classifies the finding.
	Severity Severity `json:"severity"`

	// Title is a short description of what was checked or what is wrong.
	Title string `json:"title"`

	// Detail carries additional context, such as the offending value.
	Detail string `json:"detail,omitempty"`

	// Fix suggests how to resolve the issue.
	Fix string `json:"fix,omitempty"`
}

// Findings is an ordered sequence of findings.
type Findings []Finding

// Pass appends a pass finding.
func (f *Findings) Pass(title string) {
	*f = append(*f, Finding{Severity: SeverityPass, Title: title})
}

// Warn appends a warning finding.
func (f *Findings) Warn(title, detail, fix string) {
	*f = append(*f, Finding{Severity: SeverityWarn, Title: title, Detail: detail, Fix: fix})
}

// Fail appends a failure finding.
func (f *Findings) Fail(title, detail, fix string) {
	*f = append(*f, Finding{Severity: SeverityFail, Title: title, Detail: detail, Fix: fix})
}

// failedSince reports whether any finding appended at or after index mark
// has SeverityFail. Section parsers use it to decide whether the section
// came through clean.
func (f Findings) failedSince(mark int) bool {
	for _, finding := range f[mark:] {
		if finding.Severity == SeverityFail {
			return true
		}
	}
	return false
}

// HasFailures reports whether any finding has SeverityFail.
func (f Findings) HasFailures() bool {
	for _, finding := range f {
		if finding.Severity == SeverityFail {
			return true
		}
	}
	return false
}

// Failures returns the findings with SeverityFail, in order.
func (f Findings) Failures() Findings {
	var out Findings
	for _, finding := range f {
		if finding.Severity == SeverityFail {
			out = append(out, finding)
		}
	}
	return out
}

// Warnings returns the findings with SeverityWarn, in order.
func (f Findings) Warnings() Findings {
	var out Findings
	for _, finding := range f {
		if finding.Severity == SeverityWarn {
			out = append(out, finding)
		}
	}
	return out
}
