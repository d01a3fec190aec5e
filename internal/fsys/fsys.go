// Package fsys defines the filesystem capability the configuration pipeline
// depends on, so the pipeline is testable without touching the real disk.
package fsys

import "os"

// FS is the narrow filesystem surface the config loader needs.
type FS interface {
	// Exists reports whether path exists.
	Exists(path string) bool

	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path with the given permissions.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates the directory at path along with any parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OS is the real-disk implementation of FS.
type OS struct{}

// Exists reports whether path exists on disk.
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the entire file at path.
func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path with the given permissions.
func (OS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// MkdirAll creates the directory at path along with any parents.
func (OS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
