package main

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/texkit/texkit/internal/config"
	"github.com/texkit/texkit/internal/manifest"
	"github.com/texkit/texkit/internal/ui"
)

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List configured snippets and their render status",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit JSON output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show source and output columns",
			},
		},
		Action: listAction,
	}
}

func listAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	m, err := manifest.Load(cfg.Output)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Snippets))
	for name := range cfg.Snippets {
		names = append(names, name)
	}
	sort.Strings(names)

	statuses := make([]ui.SnippetStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, snippetStatus(name, cfg, m))
	}

	return ui.RenderSnippetList(statuses, ui.ListOptions{
		JSON:    cmd.Bool("json"),
		Verbose: cmd.Bool("verbose"),
	})
}

func snippetStatus(name string, cfg *config.Config, m *manifest.Manifest) ui.SnippetStatus {
	snippet := cfg.Snippets[name]

	status := ui.SnippetStatus{
		Name:    name,
		Type:    snippet.Type,
		Shape:   snippet.Shape,
		Style:   snippet.Style,
		Display: snippet.Display,
		Source:  snippetSource(snippet),
		Output:  cfg.OutputFile(name, snippet),
		Status:  "pending",
	}

	if entry := m.Get(name); entry != nil {
		status.Status = "rendered"
		status.Size = entry.Size
		status.RenderedAt = entry.RenderedAt
	}

	return status
}

func snippetSource(snippet config.Snippet) string {
	switch {
	case len(snippet.Rows) > 0:
		return "inline rows"
	case snippet.Data != "":
		return snippet.Data
	case snippet.URL != "":
		return snippet.URL
	case snippet.Path != "":
		return snippet.Path
	case snippet.Formula != "":
		return "formula"
	default:
		return ""
	}
}
