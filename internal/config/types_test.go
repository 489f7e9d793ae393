package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/samber/oops"
	"github.com/texkit/texkit/internal/config"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		snippet  config.Snippet
		wantCode string
	}{
		{
			name:    "valid matrix with rows",
			snippet: config.Snippet{Type: "matrix", Shape: "matrix", Style: "p", Rows: [][]string{{"1"}}},
		},
		{
			name:    "valid matrix with csv data",
			snippet: config.Snippet{Type: "matrix", Shape: "vector", Style: "b", Data: "cells.csv"},
		},
		{
			name:    "valid equation",
			snippet: config.Snippet{Type: "equation", Formula: "x^2", Display: "inline"},
		},
		{
			name:    "valid markdown by path",
			snippet: config.Snippet{Type: "markdown", Path: "docs/*.md"},
		},
		{
			name:    "valid markdown by url",
			snippet: config.Snippet{Type: "markdown", URL: "https://example.com/readme.md"},
		},
		{
			name:     "unknown type",
			snippet:  config.Snippet{Type: "image"},
			wantCode: "UNKNOWN_SNIPPET_TYPE",
		},
		{
			name:     "missing type",
			snippet:  config.Snippet{},
			wantCode: "CONFIG_INVALID",
		},
		{
			name:     "bad bracket style",
			snippet:  config.Snippet{Type: "matrix", Style: "q", Rows: [][]string{{"1"}}},
			wantCode: "CONFIG_INVALID",
		},
		{
			name:     "bad shape",
			snippet:  config.Snippet{Type: "matrix", Shape: "diagonal", Rows: [][]string{{"1"}}},
			wantCode: "CONFIG_INVALID",
		},
		{
			name:     "equation without formula",
			snippet:  config.Snippet{Type: "equation"},
			wantCode: "CONFIG_INVALID",
		},
		{
			name:     "bad display mode",
			snippet:  config.Snippet{Type: "equation", Formula: "x", Display: "fancy"},
			wantCode: "CONFIG_INVALID",
		},
		{
			name:     "matrix with both rows and data",
			snippet:  config.Snippet{Type: "matrix", Rows: [][]string{{"1"}}, Data: "cells.csv"},
			wantCode: "CONFIG_INVALID",
		},
		{
			name:     "matrix with neither rows nor data",
			snippet:  config.Snippet{Type: "matrix"},
			wantCode: "CONFIG_INVALID",
		},
		{
			name:     "markdown with both path and url",
			snippet:  config.Snippet{Type: "markdown", Path: "a.md", URL: "https://example.com/a.md"},
			wantCode: "CONFIG_INVALID",
		},
		{
			name:     "markdown invalid url",
			snippet:  config.Snippet{Type: "markdown", URL: "not a url"},
			wantCode: "CONFIG_INVALID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Snippets: map[string]config.Snippet{"s": tt.snippet}}

			err := cfg.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() error = nil, want non-nil")
			}

			var oopsErr oops.OopsError
			if !errors.As(err, &oopsErr) {
				t.Fatalf("expected oops error, got %T", err)
			}

			if oopsErr.Code() != tt.wantCode {
				t.Errorf("Code() = %q, want %q", oopsErr.Code(), tt.wantCode)
			}
		})
	}
}

func TestOutputFile(t *testing.T) {
	cfg := &config.Config{Output: "build", ConfigDir: "/proj"}

	tests := []struct {
		name    string
		snippet config.Snippet
		want    string
	}{
		{"default filename", config.Snippet{Type: "equation", Formula: "x"}, filepath.Join("/proj", "build", "s.tex")},
		{"out override", config.Snippet{Type: "equation", Formula: "x", Out: "eq/custom.tex"}, filepath.Join("/proj", "build", "eq", "custom.tex")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.OutputFile("s", tt.snippet); got != tt.want {
				t.Errorf("OutputFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &config.Config{
		Snippets: map[string]config.Snippet{
			"m": {Type: "matrix", Rows: [][]string{{"1"}}},
			"e": {Type: "equation", Formula: "x"},
		},
	}

	cfg.ApplyDefaults()

	if cfg.Output != config.DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, config.DefaultOutput)
	}

	if got := cfg.Snippets["m"]; got.Style != "p" || got.Shape != "matrix" {
		t.Errorf("matrix defaults = (%q, %q), want (p, matrix)", got.Style, got.Shape)
	}

	if got := cfg.Snippets["e"]; got.Display != "brackets" {
		t.Errorf("equation display default = %q, want brackets", got.Display)
	}
}
