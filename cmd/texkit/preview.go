package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/texkit/texkit/internal/config"
	"github.com/texkit/texkit/internal/render"
	"github.com/texkit/texkit/internal/source"
	"github.com/texkit/texkit/internal/ui"
)

func newPreviewCommand() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "Preview a snippet without writing its output file",
		ArgsUsage: "<snippet-name>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
			},
			&cli.BoolFlag{
				Name:  "tex",
				Usage: "Print rendered LaTeX instead of a data table",
			},
		},
		Action: previewAction,
	}
}

func previewAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: texkit preview <snippet-name>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	name := cmd.Args().First()

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	snippet, ok := cfg.Snippets[name]
	if !ok {
		return oops.
			Code("SNIPPET_NOT_FOUND").
			With("snippet", name).
			Hint("Run 'texkit list' to see configured snippets").
			Errorf("snippet %q is not configured", name)
	}

	fetcher := source.NewFetcher()

	// Matrix data reads better as a table; everything else is shown as
	// the markup it renders to.
	if snippet.Type == "matrix" && !cmd.Bool("tex") {
		grid, gridErr := render.LoadGrid(ctx, fetcher, cfg.ConfigDir, snippet)
		if gridErr != nil {
			return gridErr
		}

		ui.PreviewGrid(grid)
		return nil
	}

	built, err := render.Build(ctx, fetcher, cfg.ConfigDir, name, snippet)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, built.Content)
	return nil
}
