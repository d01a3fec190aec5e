// Package state persists the small runtime state pivot keeps between
// invocations: the most-recent-first history of project activations that
// feeds ranking.
package state

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pivot/internal/errors"
	"pivot/internal/paths"
	"pivot/pkg/fileutil"
)

// MaxRecents caps the persisted history length. Ranking only needs enough
// history to order the configured projects.
const MaxRecents = 50

// Recents is the persisted activation history, most recent first.
type Recents struct {
	// IDs are project ids in activation order, most recent first.
	// Repeated activations may appear more than once; ranking uses the
	// first occurrence.
	IDs []string `yaml:"recents"`
}

// Store reads and writes the recents file.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the history. A missing file is an empty history, not an error.
func (s *Store) Load() (Recents, error) {
	data, err := fileutil.ReadFileWithLimit(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Recents{}, nil
		}
		return Recents{}, errors.Categorize(errors.CategoryFileSystem,
			errors.Wrapf(err, "reading %s", s.path))
	}

	var r Recents
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Recents{}, errors.Categorize(errors.CategoryParse,
			errors.Wrapf(err, "parsing %s", s.path))
	}
	return r, nil
}

// Record prepends an activation of id and persists the capped history.
func (s *Store) Record(id string) error {
	r, err := s.Load()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(r.IDs)+1)
	ids = append(ids, id)
	for _, prev := range r.IDs {
		if prev != id {
			ids = append(ids, prev)
		}
	}
	if len(ids) > MaxRecents {
		ids = ids[:MaxRecents]
	}

	return s.save(Recents{IDs: ids})
}

// save writes the history atomically, creating the parent directory first.
func (s *Store) save(r Recents) error {
	dir := filepath.Dir(s.path)
	if err := paths.EnsureDir(dir, 0); err != nil {
		return errors.Categorize(errors.CategoryFileSystem,
			errors.Wrapf(err, "creating %s", dir))
	}
	if err := fileutil.AtomicWriteYAML(s.path, r); err != nil {
		return errors.Categorize(errors.CategoryFileSystem,
			errors.Wrapf(err, "writing %s", s.path))
	}
	return nil
}
