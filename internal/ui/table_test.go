package ui_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/texkit/texkit/internal/ui"
)

func TestRenderSnippetListJSON(t *testing.T) {
	snippets := []ui.SnippetStatus{
		{
			Name:   "identity",
			Type:   "matrix",
			Shape:  "matrix",
			Style:  "p",
			Output: "build/identity.tex",
			Status: "rendered",
			Size:   64,
		},
		{
			Name:    "energy",
			Type:    "equation",
			Display: "dollar",
			Output:  "build/energy.tex",
			Status:  "pending",
		},
	}

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w //nolint:reassign // Test helper to capture stdout

	err := ui.RenderSnippetList(snippets, ui.ListOptions{JSON: true})
	w.Close()

	var buf bytes.Buffer
	io.Copy(&buf, r)
	os.Stdout = oldStdout //nolint:reassign // Restore stdout after test

	if err != nil {
		t.Fatalf("RenderSnippetList(JSON=true) error = %v", err)
	}

	var decoded []ui.SnippetStatus
	if unmarshalErr := json.Unmarshal(buf.Bytes(), &decoded); unmarshalErr != nil {
		t.Fatalf("JSON unmarshal error = %v, output:\n%s", unmarshalErr, buf.String())
	}

	if len(decoded) != 2 {
		t.Errorf("decoded JSON has %d snippets, want 2", len(decoded))
	}

	if decoded[0].Name != "identity" {
		t.Errorf("decoded[0].Name = %q, want %q", decoded[0].Name, "identity")
	}

	if decoded[1].Type != "equation" {
		t.Errorf("decoded[1].Type = %q, want %q", decoded[1].Type, "equation")
	}
}

func TestRenderDetail(t *testing.T) {
	tests := []struct {
		name    string
		snippet ui.SnippetStatus
		want    string
	}{
		{
			name: "matrix shows shape and bracket env",
			snippet: ui.SnippetStatus{
				Type:  "matrix",
				Shape: "determinant",
				Style: "v",
			},
			want: "determinant (vmatrix)",
		},
		{
			name: "matrix without style shows shape only",
			snippet: ui.SnippetStatus{
				Type:  "matrix",
				Shape: "vector",
			},
			want: "vector",
		},
		{
			name: "equation shows display mode",
			snippet: ui.SnippetStatus{
				Type:    "equation",
				Display: "inline",
			},
			want: "inline",
		},
		{
			name: "markdown shows source",
			snippet: ui.SnippetStatus{
				Type:   "markdown",
				Source: "docs/*.md",
			},
			want: "docs/*.md",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ui.RenderDetail(tc.snippet)
			if got != tc.want {
				t.Errorf("RenderDetail() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name    string
		snippet ui.SnippetStatus
		want    string
	}{
		{
			name: "rendered with size",
			snippet: ui.SnippetStatus{
				Status: "rendered",
				Size:   128,
			},
			want: "rendered (128 bytes)",
		},
		{
			name: "rendered without size",
			snippet: ui.SnippetStatus{
				Status: "rendered",
			},
			want: "rendered",
		},
		{
			name: "pending ignores size",
			snippet: ui.SnippetStatus{
				Status: "pending",
				Size:   128,
			},
			want: "pending",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ui.RenderStatus(tc.snippet)
			if got != tc.want {
				t.Errorf("RenderStatus() = %q, want %q", got, tc.want)
			}
		})
	}
}
