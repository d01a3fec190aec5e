package ident

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "myapp", "myapp"},
		{"uppercase", "MyApp", "myapp"},
		{"spaces", "My Cool App", "my-cool-app"},
		{"punctuation runs collapse", "My Cool App!!", "my-cool-app"},
		{"leading and trailing trimmed", "  hello  ", "hello"},
		{"digits kept", "app2 v3", "app2-v3"},
		{"unicode replaced", "café crème", "caf-cr-me"},
		{"all symbols", "!!!", ""},
		{"empty", "", ""},
		{"mixed separators", "a_b.c/d", "a-b-c-d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"My Cool App!!", "already-normal", "A--B", " x "}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
