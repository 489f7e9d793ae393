package render_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/texkit/texkit/internal/config"
	"github.com/texkit/texkit/internal/render"
	"github.com/texkit/texkit/internal/source"
)

func TestBuild_Equation(t *testing.T) {
	tests := []struct {
		name    string
		snippet config.Snippet
		want    string
	}{
		{
			name:    "inline",
			snippet: config.Snippet{Type: "equation", Formula: "c_B", Display: "inline"},
			want:    "$c_B$",
		},
		{
			name:    "dollar",
			snippet: config.Snippet{Type: "equation", Formula: "E=mc^2", Display: "dollar"},
			want:    "$$\nE=mc^2\n$$",
		},
		{
			name:    "brackets",
			snippet: config.Snippet{Type: "equation", Formula: "E=mc^2", Display: "brackets"},
			want:    "\\[%\nE=mc^2%\n\\]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built, err := render.Build(context.Background(), source.NewFetcher(), t.TempDir(), "eq", tt.snippet)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			if built.Content != tt.want {
				t.Errorf("Content = %q, want %q", built.Content, tt.want)
			}
		})
	}
}

func TestBuild_MatrixFromRows(t *testing.T) {
	snippet := config.Snippet{
		Type:  "matrix",
		Shape: "matrix",
		Style: "b",
		Rows:  [][]string{{"1", "2"}, {"3", "4"}},
	}

	built, err := render.Build(context.Background(), source.NewFetcher(), t.TempDir(), "m", snippet)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.Contains(built.Content, "\\begin{bmatrix}%\n1&2\\\\%\n3&4%\n\\end{bmatrix}") {
		t.Errorf("Content = %q, want bmatrix body", built.Content)
	}

	if !strings.HasPrefix(built.Content, "\\[%\n") {
		t.Errorf("Content = %q, want display math wrapping", built.Content)
	}

	if len(built.Requires) != 1 || built.Requires[0] != "amsmath" {
		t.Errorf("Requires = %v, want [amsmath]", built.Requires)
	}
}

func TestBuild_MatrixFromCSV(t *testing.T) {
	baseDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(baseDir, "cells.csv"), []byte("1,2\n3,4\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	snippet := config.Snippet{Type: "matrix", Shape: "determinant", Data: "cells.csv"}

	built, err := render.Build(context.Background(), source.NewFetcher(), baseDir, "det", snippet)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.Contains(built.Content, "\\begin{vmatrix}%\n1&2\\\\%\n3&4%\n\\end{vmatrix}") {
		t.Errorf("Content = %q, want vmatrix body", built.Content)
	}
}

func TestBuild_MatrixDataGlobMustMatchOneFile(t *testing.T) {
	baseDir := t.TempDir()
	for _, name := range []string{"a.csv", "b.csv"} {
		if err := os.WriteFile(filepath.Join(baseDir, name), []byte("1,2\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	snippet := config.Snippet{Type: "matrix", Shape: "matrix", Data: "*.csv"}

	_, err := render.Build(context.Background(), source.NewFetcher(), baseDir, "m", snippet)
	if err == nil {
		t.Fatal("Build() error = nil, want non-nil for multi-match pattern")
	}

	if !strings.Contains(err.Error(), "matches 2 files") {
		t.Errorf("error %q does not report the match count", err.Error())
	}
}

func TestBuild_DeterminantRejectsNonSquare(t *testing.T) {
	snippet := config.Snippet{
		Type:  "matrix",
		Shape: "determinant",
		Rows:  [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
	}

	_, err := render.Build(context.Background(), source.NewFetcher(), t.TempDir(), "det", snippet)
	if err == nil {
		t.Fatal("Build() error = nil, want non-nil")
	}
}

func TestBuild_VectorShapes(t *testing.T) {
	rows := [][]string{{"1", "2"}, {"3", "4"}}

	t.Run("vector flattens to one row", func(t *testing.T) {
		built, err := render.Build(context.Background(), source.NewFetcher(), t.TempDir(), "v",
			config.Snippet{Type: "matrix", Shape: "vector", Rows: rows})
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}

		if !strings.Contains(built.Content, "1&2&3&4") {
			t.Errorf("Content = %q, want flattened row", built.Content)
		}
	})

	t.Run("column stacks into one column", func(t *testing.T) {
		built, err := render.Build(context.Background(), source.NewFetcher(), t.TempDir(), "cv",
			config.Snippet{Type: "matrix", Shape: "column", Rows: rows})
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}

		if !strings.Contains(built.Content, "1\\\\%\n2\\\\%\n3\\\\%\n4") {
			t.Errorf("Content = %q, want stacked column", built.Content)
		}
	})
}

func TestBuild_Markdown(t *testing.T) {
	baseDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(baseDir, "intro.md"), []byte("# Intro\n\nhello"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	built, err := render.Build(context.Background(), source.NewFetcher(), baseDir, "doc",
		config.Snippet{Type: "markdown", Path: "intro.md"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := "\\section{Intro}\n\nhello"
	if built.Content != want {
		t.Errorf("Content = %q, want %q", built.Content, want)
	}
}

func TestBuild_UnknownType(t *testing.T) {
	_, err := render.Build(context.Background(), source.NewFetcher(), t.TempDir(), "x",
		config.Snippet{Type: "image"})
	if err == nil {
		t.Fatal("Build() error = nil, want non-nil")
	}
}
