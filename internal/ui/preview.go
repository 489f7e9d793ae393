package ui

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/texkit/texkit/internal/latex"
	"github.com/texkit/texkit/internal/texmath"
)

// PreviewGrid prints matrix cells as a plain table so a snippet's data can
// be inspected without compiling LaTeX.
func PreviewGrid(grid texmath.Grid) {
	PreviewGridTo(os.Stdout, grid)
}

func PreviewGridTo(w io.Writer, grid texmath.Grid) {
	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleLight)

	for i := range grid.Rows() {
		row := make(table.Row, grid.Cols())
		for j := range grid.Cols() {
			row[j] = latex.Stringify(grid.At(i, j))
		}
		writer.AppendRow(row)
	}

	writer.Render()
}
