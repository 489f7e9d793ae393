package document_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/texkit/texkit/internal/document"
	"github.com/texkit/texkit/internal/texmath"
)

func TestDocument_Render(t *testing.T) {
	doc := &document.Document{
		ClassOptions: []string{"12pt", "a4paper"},
		Children:     []any{"Hello."},
	}

	want := "\\documentclass[12pt,a4paper]{article}\n" +
		"\\begin{document}%\nHello.%\n\\end{document}\n"
	if got := doc.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDocument_PackageAggregation(t *testing.T) {
	v, err := texmath.NewVector(mustGrid(t, [][]any{{1, 2}}))
	if err != nil {
		t.Fatalf("NewVector() error = %v", err)
	}

	doc := &document.Document{
		Packages: []string{"graphicx", "amsmath"},
		Children: []any{v, &texmath.Math{Inline: true, Content: []any{"x"}}},
	}

	rendered := doc.Render()

	if got := strings.Count(rendered, `\usepackage{amsmath}`); got != 1 {
		t.Errorf("amsmath declared %d times, want 1", got)
	}

	if !strings.Contains(rendered, `\usepackage{graphicx}`) {
		t.Error("missing \\usepackage{graphicx}")
	}

	graphicxIdx := strings.Index(rendered, `\usepackage{graphicx}`)
	amsmathIdx := strings.Index(rendered, `\usepackage{amsmath}`)
	if graphicxIdx > amsmathIdx {
		t.Error("explicit packages should keep declaration order")
	}
}

func TestDocument_ChildrenSeparatedByBlankLine(t *testing.T) {
	doc := &document.Document{Children: []any{"one", "two"}}

	if !strings.Contains(doc.Render(), "one\n\ntwo") {
		t.Errorf("Render() = %q, want children separated by a blank line", doc.Render())
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	doc := &document.Document{Children: []any{"body"}}

	path, err := document.Write(doc, filepath.Join(dir, "out"), "snippet.tex")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(content) != doc.Render() {
		t.Errorf("file content = %q, want %q", content, doc.Render())
	}

	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("temporary file %s left behind", entry.Name())
		}
	}
}

func mustGrid(t *testing.T, rows [][]any) *texmath.Dense {
	t.Helper()
	grid, err := texmath.NewDense(rows)
	if err != nil {
		t.Fatalf("NewDense() error = %v", err)
	}
	return grid
}
