package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/samber/oops"
	"github.com/texkit/texkit/internal/config"
	"github.com/texkit/texkit/internal/convert"
	"github.com/texkit/texkit/internal/latex"
	"github.com/texkit/texkit/internal/source"
	"github.com/texkit/texkit/internal/texmath"
)

// Built is a snippet rendered to markup, plus the packages it needs when
// wrapped into a standalone document.
type Built struct {
	Content  string
	Requires []string
}

// Build renders one configured snippet to LaTeX markup.
func Build(ctx context.Context, fetcher *source.Fetcher, baseDir, name string, cfg config.Snippet) (*Built, error) {
	switch cfg.Type {
	case "matrix":
		return buildMatrix(ctx, fetcher, baseDir, name, cfg)
	case "equation":
		return buildEquation(cfg), nil
	case "markdown":
		return buildMarkdown(ctx, fetcher, baseDir, cfg)
	default:
		return nil, oops.
			Code("UNKNOWN_SNIPPET_TYPE").
			With("snippet", name).
			With("type", cfg.Type).
			Hint("Supported types: matrix, equation, markdown").
			Errorf("unknown snippet type %q for snippet %q", cfg.Type, name)
	}
}

func buildMatrix(ctx context.Context, fetcher *source.Fetcher, baseDir, name string, cfg config.Snippet) (*Built, error) {
	grid, err := LoadGrid(ctx, fetcher, baseDir, cfg)
	if err != nil {
		return nil, err
	}

	var opts []texmath.MatrixOption
	if cfg.Style != "" {
		opts = append(opts, texmath.WithBracketStyle(texmath.BracketStyle(cfg.Style)))
	}
	if cfg.Alignment != "" {
		opts = append(opts, texmath.WithAlignment(cfg.Alignment))
	}

	var m *texmath.Matrix
	switch cfg.Shape {
	case "determinant":
		m, err = texmath.NewDeterminant(grid, opts...)
	case "vector":
		m, err = texmath.NewVector(grid, opts...)
	case "column":
		m, err = texmath.NewColumnVector(grid, opts...)
	default:
		m, err = texmath.NewMatrix(grid, opts...)
	}
	if err != nil {
		return nil, oops.With("snippet", name).Wrap(err)
	}

	math := &texmath.Math{Content: []any{m}}
	return &Built{Content: math.Render(), Requires: math.Requires()}, nil
}

// LoadGrid resolves a matrix snippet's cell data from inline rows, a CSV
// URL, or a local CSV file.
func LoadGrid(ctx context.Context, fetcher *source.Fetcher, baseDir string, cfg config.Snippet) (texmath.Grid, error) {
	if len(cfg.Rows) > 0 {
		return source.GridFromRows(cfg.Rows)
	}

	if isURL(cfg.Data) {
		input, err := fetcher.Fetch(ctx, cfg.Data)
		if err != nil {
			return nil, err
		}
		return source.LoadCSVGrid(bytes.NewReader(input.Content))
	}

	inputs, err := source.ResolveLocal(baseDir, cfg.Data)
	if err != nil {
		return nil, err
	}

	// A matrix is one grid; a pattern matching several files is ambiguous.
	if len(inputs) > 1 {
		names := make([]string, len(inputs))
		for i, input := range inputs {
			names[i] = input.Name
		}
		return nil, oops.
			Code("INPUT_INVALID").
			With("pattern", cfg.Data).
			With("matches", names).
			Hint("Point data at a single CSV file").
			Errorf("matrix data pattern %q matches %d files", cfg.Data, len(inputs))
	}

	return source.LoadCSVGrid(bytes.NewReader(inputs[0].Content))
}

func buildEquation(cfg config.Snippet) *Built {
	math := &texmath.Math{
		Inline:  cfg.Display == "inline",
		Dollar:  cfg.Display == "dollar",
		Content: []any{latex.Raw(cfg.Formula)},
	}

	return &Built{Content: math.Render(), Requires: math.Requires()}
}

func buildMarkdown(ctx context.Context, fetcher *source.Fetcher, baseDir string, cfg config.Snippet) (*Built, error) {
	var inputs []source.Input
	if cfg.URL != "" {
		input, err := fetcher.Fetch(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		inputs = []source.Input{*input}
	} else {
		var err error
		inputs, err = source.ResolveLocal(baseDir, cfg.Path)
		if err != nil {
			return nil, err
		}
	}

	var blocks []string
	requires := make(map[string]bool)
	var requireOrder []string

	for _, input := range inputs {
		result, err := convert.Markdown(input.Content)
		if err != nil {
			return nil, oops.
				With("input", input.Name).
				Wrapf(err, "converting markdown input %q", input.Name)
		}

		if result.LaTeX != "" {
			blocks = append(blocks, result.LaTeX)
		}
		for _, pkg := range result.Requires {
			if !requires[pkg] {
				requires[pkg] = true
				requireOrder = append(requireOrder, pkg)
			}
		}
	}

	return &Built{
		Content:  strings.Join(blocks, "\n\n"),
		Requires: requireOrder,
	}, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
