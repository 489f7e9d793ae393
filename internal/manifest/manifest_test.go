package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/texkit/texkit/internal/manifest"
)

func TestLoadMissingReturnsEmpty(t *testing.T) {
	m, err := manifest.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(m.Snippets) != 0 {
		t.Errorf("Snippets = %v, want empty", m.Snippets)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	m := manifest.New()
	m.Record(&manifest.Entry{
		Name:     "identity",
		Type:     "matrix",
		Output:   "identity.tex",
		Size:     42,
		Requires: []string{"amsmath"},
	})

	if err := m.Save(dir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := manifest.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	entry := loaded.Get("identity")
	if entry == nil {
		t.Fatal("Get() = nil, want entry")
	}

	if entry.Type != "matrix" || entry.Output != "identity.tex" || entry.Size != 42 {
		t.Errorf("entry = %+v", entry)
	}

	if entry.RenderedAt.IsZero() {
		t.Error("RenderedAt not stamped")
	}

	if loaded.Version != manifest.CurrentVersion {
		t.Errorf("Version = %q, want %q", loaded.Version, manifest.CurrentVersion)
	}
}

func TestLoadRejectsCorruptManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, manifest.ManifestFile)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := manifest.Load(dir); err == nil {
		t.Fatal("Load() error = nil, want non-nil")
	}
}
