package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
)

const configFileName = "texkit.toml"

const starterConfig = `# texkit configuration
# Run 'texkit render' to generate .tex files under the output directory.

output = "build"

[snippets.identity]
type = "matrix"
shape = "matrix"
style = "p"
rows = [["1", "0"], ["0", "1"]]

[snippets.energy]
type = "equation"
formula = "E = mc^2"
display = "dollar"

# [snippets.readme]
# type = "markdown"
# path = "docs/*.md"
`

func newInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter texkit.toml in the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: initAction,
	}
}

func initAction(_ context.Context, cmd *cli.Command) error {
	if _, err := os.Stat(configFileName); err == nil && !cmd.Bool("force") {
		return oops.
			Code("CONFIG_EXISTS").
			With("path", configFileName).
			Hint("Pass --force to overwrite the existing file").
			Errorf("%s already exists", configFileName)
	}

	if err := os.WriteFile(configFileName, []byte(starterConfig), 0o644); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", configFileName).
			Wrapf(err, "writing starter config")
	}

	fmt.Fprintf(os.Stdout, "created %s\n", configFileName)
	return nil
}
