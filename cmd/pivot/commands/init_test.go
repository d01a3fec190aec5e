package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInit_CreatesStarter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pivot.toml")
	withConfigFlag(t, path)

	out := new(bytes.Buffer)
	initCmd.SetOut(out)

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("starter config not written: %v", err)
	}
	if !strings.Contains(string(data), "[layout]") {
		t.Error("starter config missing layout section")
	}
	if !strings.Contains(out.String(), "Created "+path) {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunInit_ExistingWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pivot.toml")
	if err := os.WriteFile(path, []byte("# mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfigFlag(t, path)

	out := new(bytes.Buffer)
	initCmd.SetOut(out)

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "# mine\n" {
		t.Error("existing config was overwritten without --force")
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunInit_Force(t *testing.T) {
	origForce := initForce
	defer func() { initForce = origForce }()
	initForce = true

	path := filepath.Join(t.TempDir(), "pivot.toml")
	if err := os.WriteFile(path, []byte("# mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfigFlag(t, path)
	initCmd.SetOut(new(bytes.Buffer))

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "[layout]") {
		t.Error("starter config not written with --force")
	}
}
