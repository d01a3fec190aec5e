package config

import (
	"strings"
	"testing"
)

func TestRequireString(t *testing.T) {
	tests := []struct {
		name      string
		tbl       Table
		want      string
		wantOK    bool
		wantTitle string
	}{
		{"present", Table{"name": "hello"}, "hello", true, ""},
		{"trimmed", Table{"name": "  hello  "}, "hello", true, ""},
		{"missing", Table{}, "", false, "x.name is missing"},
		{"wrong type", Table{"name": int64(3)}, "", false, "x.name must be a string"},
		{"empty", Table{"name": "   "}, "", false, "x.name is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fs Findings
			got, ok := requireString(tt.tbl, "name", "x.name", &fs)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("requireString() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
			if tt.wantTitle == "" {
				if len(fs) != 0 {
					t.Errorf("unexpected findings: %v", fs)
				}
				return
			}
			if len(fs) != 1 {
				t.Fatalf("expected exactly one finding, got %d", len(fs))
			}
			if fs[0].Severity != SeverityFail || fs[0].Title != tt.wantTitle {
				t.Errorf("finding = %+v, want Fail %q", fs[0], tt.wantTitle)
			}
		})
	}
}

func TestOptString_AbsenceIsNotAnError(t *testing.T) {
	var fs Findings
	_, ok := optString(Table{}, "remote", "x.remote", &fs)
	if ok {
		t.Error("absent key should report ok=false")
	}
	if len(fs) != 0 {
		t.Errorf("absent optional key must not emit findings, got %v", fs)
	}
}

func TestOptBool(t *testing.T) {
	var fs Findings
	if v, ok := optBool(Table{"enabled": true}, "enabled", "x.enabled", &fs); !ok || !v {
		t.Errorf("optBool(true) = (%v, %v)", v, ok)
	}
	if _, ok := optBool(Table{"enabled": "yes"}, "enabled", "x.enabled", &fs); ok {
		t.Error("string should not decode as bool")
	}
	if len(fs) != 1 || fs[0].Severity != SeverityFail {
		t.Fatalf("expected one failure finding, got %v", fs)
	}
}

func TestOptNumber_WidensIntegers(t *testing.T) {
	var fs Findings

	if v, ok := optNumber(Table{"n": int64(24)}, "n", "x.n", &fs); !ok || v != 24.0 {
		t.Errorf("integer input = (%v, %v), want (24, true)", v, ok)
	}
	if v, ok := optNumber(Table{"n": 24.5}, "n", "x.n", &fs); !ok || v != 24.5 {
		t.Errorf("float input = (%v, %v), want (24.5, true)", v, ok)
	}
	if len(fs) != 0 {
		t.Errorf("unexpected findings: %v", fs)
	}

	if _, ok := optNumber(Table{"n": "24"}, "n", "x.n", &fs); ok {
		t.Error("string should not decode as number")
	}
	if len(fs) != 1 {
		t.Fatalf("expected one finding, got %d", len(fs))
	}
}

func TestOptInteger_RejectsFloats(t *testing.T) {
	var fs Findings

	if v, ok := optInteger(Table{"n": int64(90)}, "n", "x.n", &fs); !ok || v != 90 {
		t.Errorf("integer input = (%v, %v), want (90, true)", v, ok)
	}
	if _, ok := optInteger(Table{"n": 90.0}, "n", "x.n", &fs); ok {
		t.Error("float input must be rejected for integer fields")
	}
	if len(fs) != 1 || !strings.Contains(fs[0].Title, "must be an integer") {
		t.Fatalf("expected integer type finding, got %v", fs)
	}
}

func TestOptStringArray_PartialTolerance(t *testing.T) {
	var fs Findings
	got, ok := optStringArray(
		Table{"tabs": []any{"a", int64(1), "b", true, "c"}},
		"tabs", "x.tabs", &fs,
	)
	if !ok {
		t.Fatal("array should decode")
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("decoded elements = %v, want [a b c]", got)
	}
	if len(fs) != 2 {
		t.Fatalf("expected one finding per bad element, got %d: %v", len(fs), fs)
	}
	if !strings.Contains(fs[0].Title, "x.tabs[1]") || !strings.Contains(fs[1].Title, "x.tabs[3]") {
		t.Errorf("findings should reference offending indices: %v", fs)
	}
}

func TestOptStringArray_WrongOuterType(t *testing.T) {
	var fs Findings
	if _, ok := optStringArray(Table{"tabs": "not-an-array"}, "tabs", "x.tabs", &fs); ok {
		t.Error("non-array should not decode")
	}
	if len(fs) != 1 || fs[0].Severity != SeverityFail {
		t.Fatalf("expected one failure, got %v", fs)
	}
}

func TestKnownKeys(t *testing.T) {
	var fs Findings
	knownKeys(Table{"good": true, "bogus": 1, "zz": 2}, "[app]", []string{"good"}, &fs)
	if len(fs) != 2 {
		t.Fatalf("expected two warnings, got %d: %v", len(fs), fs)
	}
	// Sorted key order keeps output deterministic.
	if !strings.Contains(fs[0].Title, `"bogus"`) || !strings.Contains(fs[1].Title, `"zz"`) {
		t.Errorf("warnings out of order: %v", fs)
	}
	for _, f := range fs {
		if f.Severity != SeverityWarn {
			t.Errorf("unknown keys should warn, not %v", f.Severity)
		}
	}
}
