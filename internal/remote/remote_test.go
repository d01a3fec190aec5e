package remote

import (
	"strings"
	"testing"

	"pivot/internal/errors"
)

func TestParseAuthority(t *testing.T) {
	tests := []struct {
		name      string
		authority string
		want      string
		wantErr   error
	}{
		{"valid", "ssh-remote+alice@host", "alice@host", nil},
		{"valid host only", "ssh-remote+build-box", "build-box", nil},
		{"missing prefix", "alice@host", "", ErrMissingPrefix},
		{"wrong prefix", "ssh+alice@host", "", ErrMissingPrefix},
		{"empty target", "ssh-remote+", "", ErrMissingTarget},
		{"whitespace-only target", "ssh-remote+   ", "", ErrMissingTarget},
		{"target starts with dash", "ssh-remote+ -x", "", ErrTargetStartsWithDash},
		{"embedded space", "ssh-remote+alice@ host", "", ErrContainsWhitespace},
		{"embedded tab", "ssh-remote+alice\t@host", "", ErrContainsWhitespace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAuthority(tt.authority)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAuthority(%q) error = %v, want %v", tt.authority, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAuthority(%q) unexpected error: %v", tt.authority, err)
			}
			if got != tt.want {
				t.Errorf("ParseAuthority(%q) = %q, want %q", tt.authority, got, tt.want)
			}
		})
	}
}

func TestParseAuthority_ErrorsAreValidationCategory(t *testing.T) {
	_, err := ParseAuthority("nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := errors.CategoryOf(err); got != errors.CategoryValidation {
		t.Errorf("CategoryOf() = %q, want %q", got, errors.CategoryValidation)
	}
}

func TestExtractTarget(t *testing.T) {
	if target, ok := ExtractTarget("ssh-remote+alice@host"); !ok || target != "alice@host" {
		t.Errorf("ExtractTarget() = (%q, %v), want (alice@host, true)", target, ok)
	}
	if target, ok := ExtractTarget("garbage"); ok || target != "" {
		t.Errorf("ExtractTarget(garbage) = (%q, %v), want (\"\", false)", target, ok)
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "'plain'"},
		{"", "''"},
		{"has space", "'has space'"},
		{"it's", `'it'\''s'`},
		{"''", `''\'''\'''`},
	}

	for _, tt := range tests {
		if got := ShellQuote(tt.in); got != tt.want {
			t.Errorf("ShellQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// unquoteShell reverses POSIX single-quote processing the way a shell would:
// outside quotes a backslash escapes the next rune; inside single quotes
// everything is literal until the closing quote.
func unquoteShell(t *testing.T, token string) string {
	t.Helper()
	var out strings.Builder
	inQuotes := false
	runes := []rune(token)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuotes:
			if r == '\'' {
				inQuotes = false
			} else {
				out.WriteRune(r)
			}
		case r == '\'':
			inQuotes = true
		case r == '\\' && i+1 < len(runes):
			i++
			out.WriteRune(runes[i])
		default:
			out.WriteRune(r)
		}
	}
	if inQuotes {
		t.Fatalf("unterminated quoting in %q", token)
	}
	return out.String()
}

func TestShellQuote_RoundTrip(t *testing.T) {
	inputs := []string{
		"simple",
		"with space",
		"it's quoted",
		"'''",
		`back\slash`,
		"a'b'c",
	}
	for _, in := range inputs {
		quoted := ShellQuote(in)
		if got := unquoteShell(t, quoted); got != in {
			t.Errorf("round trip of %q via %s = %q", in, quoted, got)
		}
	}
}
