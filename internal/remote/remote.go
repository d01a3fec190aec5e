// Package remote parses remote-access authority strings and provides the
// shell quoting used when a target is interpolated into a remote command.
package remote

import (
	"strings"

	"pivot/internal/errors"
)

// Prefix is the required marker at the start of every remote authority.
const Prefix = "ssh-remote+"

// Sentinel errors for authority parsing.
var (
	// ErrMissingPrefix indicates the authority does not start with Prefix.
	ErrMissingPrefix = errors.New("remote authority must start with " + Prefix)

	// ErrContainsWhitespace indicates the target contains whitespace.
	ErrContainsWhitespace = errors.New("remote authority must not contain whitespace")

	// ErrMissingTarget indicates nothing follows the prefix.
	ErrMissingTarget = errors.New("remote authority has no target after the prefix")

	// ErrTargetStartsWithDash indicates the target begins with "-".
	// Such a target would be read as a flag by the remote command line.
	ErrTargetStartsWithDash = errors.New("remote target must not start with a dash")
)

// ParseAuthority validates authority and returns the connection target
// (typically user@host) that follows the prefix.
func ParseAuthority(authority string) (string, error) {
	if !strings.HasPrefix(authority, Prefix) {
		return "", errors.Categorize(errors.CategoryValidation, ErrMissingPrefix)
	}

	target := strings.TrimSpace(strings.TrimPrefix(authority, Prefix))
	if target == "" {
		return "", errors.Categorize(errors.CategoryValidation, ErrMissingTarget)
	}
	if strings.HasPrefix(target, "-") {
		return "", errors.Categorize(errors.CategoryValidation, ErrTargetStartsWithDash)
	}
	if strings.ContainsAny(target, " \t\n\r") {
		return "", errors.Categorize(errors.CategoryValidation, ErrContainsWhitespace)
	}

	return target, nil
}

// ExtractTarget collapses ParseAuthority to a best-effort lookup.
// It returns the target and true on success, or "" and false otherwise.
func ExtractTarget(authority string) (string, bool) {
	target, err := ParseAuthority(authority)
	if err != nil {
		return "", false
	}
	return target, true
}

// ShellQuote escapes s for use as a single token in a POSIX shell command.
// The value is wrapped in single quotes; each embedded single quote becomes
// the sequence '\'' which closes the quoting, escapes one quote, and
// reopens it. The output must round-trip exactly, since it is interpolated
// into a command executed on the remote host.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
