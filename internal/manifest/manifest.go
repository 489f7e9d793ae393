// Package manifest records what a render run produced so later commands
// can report on it without re-rendering.
package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/oops"
)

const (
	CurrentVersion = "1.0.0"
	ManifestFile   = "manifest.json"
)

type Manifest struct {
	Version   string            `json:"version"`
	Generated time.Time         `json:"generated"`
	Snippets  map[string]*Entry `json:"snippets"`
}

type Entry struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Output     string    `json:"output"`
	Size       int64     `json:"size"`
	Requires   []string  `json:"requires,omitempty"`
	RenderedAt time.Time `json:"rendered_at"`
}

func New() *Manifest {
	return &Manifest{
		Version:  CurrentVersion,
		Snippets: make(map[string]*Entry),
	}
}

// Load reads the manifest from dir. A missing file is not an error; it
// returns an empty manifest so first runs need no special casing.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}

		return nil, oops.
			Code("MANIFEST_INVALID").
			With("path", path).
			Wrapf(err, "reading manifest")
	}

	m := New()
	if err := json.Unmarshal(content, m); err != nil {
		return nil, oops.
			Code("MANIFEST_INVALID").
			With("path", path).
			Hint("Delete the manifest and re-run render to regenerate it").
			Wrapf(err, "decoding manifest from %q", path)
	}

	if m.Snippets == nil {
		m.Snippets = make(map[string]*Entry)
	}

	return m, nil
}

// Save writes the manifest to dir, stamping the generation time.
func (m *Manifest) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", dir).
			Wrapf(err, "creating manifest directory")
	}

	m.Version = CurrentVersion
	m.Generated = time.Now().UTC()

	content, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return oops.Wrapf(err, "encoding manifest")
	}

	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, append(content, '\n'), 0o644); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "writing manifest")
	}

	return nil
}

// Record stores the entry for a snippet, replacing any previous run.
func (m *Manifest) Record(entry *Entry) {
	entry.RenderedAt = time.Now().UTC()
	m.Snippets[entry.Name] = entry
}

// Get returns the recorded entry for a snippet, or nil.
func (m *Manifest) Get(name string) *Entry {
	return m.Snippets[name]
}
