// Package render orchestrates building configured snippets and writing
// their .tex files and the output manifest.
package render

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sort"
	stdsync "sync"

	"github.com/samber/oops"
	"github.com/texkit/texkit/internal/config"
	"github.com/texkit/texkit/internal/document"
	"github.com/texkit/texkit/internal/manifest"
	"github.com/texkit/texkit/internal/source"
	"golang.org/x/sync/errgroup"
)

const defaultMaxParallel = 3

type Options struct {
	SnippetNames []string
	DryRun       bool
	Clean        bool
	Standalone   bool
	MaxParallel  int
}

// Result reports the outcome for one snippet.
type Result struct {
	Name     string
	Path     string
	Size     int64
	Requires []string
	Err      error
}

// Run builds the selected snippets in parallel and writes their output
// files plus the manifest. It returns per-snippet results in name order;
// the error is non-nil when any snippet failed.
func Run(ctx context.Context, cfg *config.Config, opts Options) ([]Result, error) {
	if cfg == nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			Errorf("config is required")
	}

	if opts.Clean && !opts.DryRun {
		if err := os.RemoveAll(cfg.Output); err != nil {
			return nil, oops.
				Code("WRITE_FAILED").
				With("path", cfg.Output).
				Wrapf(err, "cleaning output directory")
		}
	}

	snippetNames, err := resolveSnippetNames(cfg.Snippets, opts.SnippetNames)
	if err != nil {
		return nil, err
	}

	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	fetcher := source.NewFetcher()
	results := make(map[string]Result, len(snippetNames))
	var resultsMu stdsync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for _, snippetName := range snippetNames {
		snippetCfg := cfg.Snippets[snippetName]
		outputPath := cfg.OutputFile(snippetName, snippetCfg)

		group.Go(func() error {
			result := renderOne(groupCtx, fetcher, cfg.ConfigDir, snippetName, snippetCfg, outputPath, opts)

			resultsMu.Lock()
			results[snippetName] = result
			resultsMu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, oops.Wrapf(err, "waiting for render workers")
	}

	ordered := make([]Result, 0, len(snippetNames))
	errorCount := 0
	for _, snippetName := range snippetNames {
		result := results[snippetName]
		ordered = append(ordered, result)
		if result.Err != nil {
			errorCount++
		}
	}

	if !opts.DryRun {
		if err := writeManifest(cfg, ordered); err != nil {
			return ordered, err
		}
	}

	if errorCount > 0 {
		return ordered, oops.
			Code("RENDER_FAILED").
			With("failed", errorCount).
			With("total", len(snippetNames)).
			Errorf("%d of %d snippets failed to render", errorCount, len(snippetNames))
	}

	return ordered, nil
}

func renderOne(
	ctx context.Context,
	fetcher *source.Fetcher,
	baseDir, name string,
	snippetCfg config.Snippet,
	outputPath string,
	opts Options,
) Result {
	built, err := Build(ctx, fetcher, baseDir, name, snippetCfg)
	if err != nil {
		return Result{Name: name, Path: outputPath, Err: err}
	}

	content := built.Content + "\n"
	if opts.Standalone {
		doc := &document.Document{
			Packages: built.Requires,
			Children: []any{built.Content},
		}
		content = doc.Render()
	}

	result := Result{Name: name, Path: outputPath, Size: int64(len(content)), Requires: built.Requires}
	if opts.DryRun {
		return result
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		result.Err = oops.
			Code("WRITE_FAILED").
			With("snippet", name).
			With("path", outputPath).
			Wrapf(err, "creating output directory")
		return result
	}

	if err := document.WriteFileAtomic(outputPath, []byte(content)); err != nil {
		result.Err = err
	}

	return result
}

func resolveSnippetNames(snippets map[string]config.Snippet, requested []string) ([]string, error) {
	if len(requested) == 0 {
		names := make([]string, 0, len(snippets))
		for name := range snippets {
			names = append(names, name)
		}
		sort.Strings(names)
		return names, nil
	}

	names := slices.Clone(requested)
	for _, name := range names {
		if _, ok := snippets[name]; !ok {
			return nil, oops.
				Code("SNIPPET_NOT_FOUND").
				With("snippet", name).
				Hint("Run 'texkit list' to see configured snippets").
				Errorf("snippet %q is not configured", name)
		}
	}

	return names, nil
}

func writeManifest(cfg *config.Config, results []Result) error {
	m, err := manifest.Load(cfg.Output)
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Err != nil {
			continue
		}

		m.Record(&manifest.Entry{
			Name:     result.Name,
			Type:     cfg.Snippets[result.Name].Type,
			Output:   result.Path,
			Size:     result.Size,
			Requires: result.Requires,
		})
	}

	return m.Save(cfg.Output)
}
