package config

import (
	"path/filepath"
	"unicode/utf8"

	"pivot/internal/errors"
	"pivot/internal/fsys"
)

// ConfigErrorKind tags the I/O-level failures of Load. These are disjoint
// from findings: a ConfigError means no text could be obtained (or none
// existed), a Finding means the text was obtained but some content is bad.
type ConfigErrorKind int

const (
	// FileNotFound means the config file was absent. Load has already
	// written a starter template; the caller must know that no real
	// configuration exists yet.
	FileNotFound ConfigErrorKind = iota

	// CreateFailed means the starter template could not be written.
	CreateFailed

	// ReadFailed means the file exists but could not be read, or is not
	// valid text.
	ReadFailed
)

// String returns the kind's name.
func (k ConfigErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "fileNotFound"
	case CreateFailed:
		return "createFailed"
	case ReadFailed:
		return "readFailed"
	default:
		return "unknown"
	}
}

// ConfigError is an I/O-level failure of Load.
type ConfigError struct {
	// Kind tags the failure.
	Kind ConfigErrorKind

	// Path is the resolved config file path.
	Path string

	// Err carries the underlying I/O detail, already tagged with its
	// error category.
	Err error
}

// Error describes the failure with its path.
func (e *ConfigError) Error() string {
	return e.Kind.String() + ": " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads and parses the configuration file at path.
//
// If the file does not exist, Load creates the parent directory, writes a
// fully commented starter template, and returns a FileNotFound ConfigError:
// a soft failure signalling that no real configuration exists yet. A second
// Load of the same path succeeds with all-default values.
//
// Every failure is terminal for the call; Load never retries. The returned
// error is always a *ConfigError when non-nil.
func Load(path string, fs fsys.FS) (LoadResult, error) {
	if !fs.Exists(path) {
		if err := bootstrap(path, fs); err != nil {
			return LoadResult{}, &ConfigError{
				Kind: CreateFailed,
				Path: path,
				Err:  errors.Categorize(errors.CategoryFileSystem, err),
			}
		}
		return LoadResult{}, &ConfigError{
			Kind: FileNotFound,
			Path: path,
			Err:  errors.Categorize(errors.CategoryConfiguration, errors.ErrNotFound),
		}
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return LoadResult{}, &ConfigError{
			Kind: ReadFailed,
			Path: path,
			Err:  errors.Categorize(errors.CategoryFileSystem, err),
		}
	}
	if !utf8.Valid(data) {
		return LoadResult{}, &ConfigError{
			Kind: ReadFailed,
			Path: path,
			Err: errors.Categorize(errors.CategoryFileSystem,
				errors.New("file is not valid UTF-8 text")),
		}
	}

	return Parse(string(data)), nil
}

// bootstrap writes the starter template for a missing config file.
func bootstrap(path string, fs fsys.FS) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	if err := fs.WriteFile(path, []byte(StarterConfig), 0o644); err != nil {
		return errors.Wrapf(err, "writing starter config to %s", path)
	}
	return nil
}
