package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/texkit/texkit/internal/convert"
	"github.com/texkit/texkit/internal/document"
	"github.com/texkit/texkit/internal/source"
)

func newConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert Markdown files to LaTeX without a config file",
		ArgsUsage: "<path-glob-or-url>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write output to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "standalone",
				Usage: "Wrap the result in a compilable document",
			},
		},
		Action: convertAction,
	}
}

func convertAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: texkit convert <path-glob-or-url>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	target := cmd.Args().First()

	inputs, err := resolveConvertInputs(ctx, target)
	if err != nil {
		return err
	}

	var blocks []string
	var requires []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		result, convErr := convert.Markdown(input.Content)
		if convErr != nil {
			return oops.
				With("input", input.Name).
				Wrapf(convErr, "converting %q", input.Name)
		}

		if result.LaTeX != "" {
			blocks = append(blocks, result.LaTeX)
		}
		for _, pkg := range result.Requires {
			if !seen[pkg] {
				seen[pkg] = true
				requires = append(requires, pkg)
			}
		}
	}

	content := strings.Join(blocks, "\n\n") + "\n"
	if cmd.Bool("standalone") {
		doc := &document.Document{
			Packages: requires,
			Children: []any{strings.Join(blocks, "\n\n")},
		}
		content = doc.Render()
	}

	outPath := cmd.String("out")
	if outPath == "" {
		fmt.Fprint(os.Stdout, content)
		return nil
	}

	return document.WriteFileAtomic(outPath, []byte(content))
}

func resolveConvertInputs(ctx context.Context, target string) ([]source.Input, error) {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		input, err := source.NewFetcher().Fetch(ctx, target)
		if err != nil {
			return nil, err
		}
		return []source.Input{*input}, nil
	}

	return source.ResolveLocal(".", target)
}
