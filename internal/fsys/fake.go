package fsys

import (
	"os"
	"sort"
	"strings"

	"pivot/internal/errors"
)

// Fake is an in-memory FS for tests. Errors can be injected per operation.
type Fake struct {
	// Files maps path to content.
	Files map[string][]byte

	// Dirs records directories created via MkdirAll.
	Dirs map[string]bool

	// ReadErr, WriteErr, and MkdirErr are returned by the corresponding
	// operation when non-nil.
	ReadErr  error
	WriteErr error
	MkdirErr error
}

// NewFake creates an empty in-memory filesystem.
func NewFake() *Fake {
	return &Fake{
		Files: make(map[string][]byte),
		Dirs:  make(map[string]bool),
	}
}

// Exists reports whether path is a known file or directory.
func (f *Fake) Exists(path string) bool {
	if _, ok := f.Files[path]; ok {
		return true
	}
	return f.Dirs[path]
}

// ReadFile returns the stored content for path.
func (f *Fake) ReadFile(path string) ([]byte, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	data, ok := f.Files[path]
	if !ok {
		return nil, errors.Wrapf(os.ErrNotExist, "open %s", path)
	}
	return data, nil
}

// WriteFile stores data under path.
func (f *Fake) WriteFile(path string, data []byte, _ os.FileMode) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Files[path] = append([]byte(nil), data...)
	return nil
}

// MkdirAll records path and its parents as directories.
func (f *Fake) MkdirAll(path string, _ os.FileMode) error {
	if f.MkdirErr != nil {
		return f.MkdirErr
	}
	f.Dirs[path] = true
	return nil
}

// Paths returns all stored file paths, sorted, for assertions.
func (f *Fake) Paths() []string {
	paths := make([]string, 0, len(f.Files))
	for p := range f.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// HasDir reports whether any recorded directory equals or contains path.
func (f *Fake) HasDir(path string) bool {
	if f.Dirs[path] {
		return true
	}
	for d := range f.Dirs {
		if strings.HasPrefix(d, path+"/") {
			return true
		}
	}
	return false
}
