// Package texmath builds math-mode LaTeX composites: matrices, vectors,
// determinants, and inline/display math blocks.
package texmath

import "github.com/samber/oops"

// Grid is a rectangular, row-major table of stringifiable cell values.
// Any value with a shape and indexed cell access satisfies it; the
// composites in this package never look past this contract.
type Grid interface {
	Rows() int
	Cols() int
	At(row, col int) any
}

// Dense is a Grid backed by a flat row-major cell slice.
type Dense struct {
	rows  int
	cols  int
	cells []any
}

// NewDense builds a grid from row slices. All rows must have the same
// length.
func NewDense(rows [][]any) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}

	cols := len(rows[0])
	cells := make([]any, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, oops.
				Code("SHAPE_MISMATCH").
				With("row", i).
				With("len", len(row)).
				With("want", cols).
				Errorf("ragged grid: row %d has %d cells, want %d", i, len(row), cols)
		}
		cells = append(cells, row...)
	}

	return &Dense{rows: len(rows), cols: cols, cells: cells}, nil
}

func (d *Dense) Rows() int { return d.rows }
func (d *Dense) Cols() int { return d.cols }

func (d *Dense) At(row, col int) any {
	return d.cells[row*d.cols+col]
}

// Flatten reshapes any grid to a single row of Rows*Cols cells in
// row-major order.
func Flatten(g Grid) *Dense {
	size := g.Rows() * g.Cols()
	cells := make([]any, 0, size)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cells = append(cells, g.At(r, c))
		}
	}
	return &Dense{rows: minRows(size), cols: size, cells: cells}
}

// minRows keeps an empty grid shaped 0x0 instead of 1x0.
func minRows(size int) int {
	if size == 0 {
		return 0
	}
	return 1
}

// Transpose swaps the rows and columns of a grid.
func Transpose(g Grid) *Dense {
	rows, cols := g.Cols(), g.Rows()
	cells := make([]any, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, g.At(c, r))
		}
	}
	return &Dense{rows: rows, cols: cols, cells: cells}
}
