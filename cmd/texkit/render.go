package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/texkit/texkit/internal/config"
	"github.com/texkit/texkit/internal/render"
	"github.com/texkit/texkit/internal/ui"
)

const defaultParallel = 3

func newRenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render configured snippets to .tex files",
		ArgsUsage: "[snippet-name...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
			},
			&cli.BoolFlag{
				Name:  "clean",
				Usage: "Delete output directory before rendering",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show planned output without writing files",
			},
			&cli.BoolFlag{
				Name:  "standalone",
				Usage: "Wrap each snippet in a compilable document",
			},
			&cli.IntFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "Maximum parallel snippet renders",
				Value:   defaultParallel,
			},
		},
		Action: renderAction,
	}
}

func renderAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	opts := render.Options{
		SnippetNames: cmd.Args().Slice(),
		DryRun:       cmd.Bool("dry-run"),
		Clean:        cmd.Bool("clean"),
		Standalone:   cmd.Bool("standalone"),
		MaxParallel:  cmd.Int("parallel"),
	}

	results, err := render.Run(ctx, cfg, opts)

	printer := ui.NewRenderPrinter(opts.DryRun)
	for _, result := range results {
		printer.PrintResult(result)
	}
	if len(results) > 0 {
		printer.PrintSummary(results)
	}

	return err
}
