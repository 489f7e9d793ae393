package texmath

import (
	"strings"

	"github.com/samber/oops"
	"github.com/texkit/texkit/internal/latex"
)

// BracketStyle selects the delimiters drawn around a matrix. The tag is
// the prefix of the amsmath environment name: p=( ), b=[ ], B={ },
// v=| |, V=|| ||.
type BracketStyle string

const (
	Paren     BracketStyle = "p"
	Bracket   BracketStyle = "b"
	Brace     BracketStyle = "B"
	Bar       BracketStyle = "v"
	DoubleBar BracketStyle = "V"
)

func (s BracketStyle) valid() bool {
	switch s {
	case Paren, Bracket, Brace, Bar, DoubleBar:
		return true
	default:
		return false
	}
}

// Matrix renders a grid as an amsmath matrix environment. Cells in a row
// are joined by & and rows are separated by \\ plus a line-continuation
// marker; no terminator follows the last row. Immutable once built.
type Matrix struct {
	grid      Grid
	style     BracketStyle
	alignment string
}

type MatrixOption func(*Matrix)

// WithBracketStyle overrides the default parenthesis delimiters.
func WithBracketStyle(style BracketStyle) MatrixOption {
	return func(m *Matrix) { m.style = style }
}

// WithAlignment sets the cell alignment. A non-empty alignment switches
// to the starred environment variant and is forwarded as its argument.
func WithAlignment(alignment string) MatrixOption {
	return func(m *Matrix) { m.alignment = alignment }
}

func NewMatrix(grid Grid, opts ...MatrixOption) (*Matrix, error) {
	m := &Matrix{grid: grid, style: Paren}
	for _, opt := range opts {
		opt(m)
	}

	if !m.style.valid() {
		return nil, oops.
			Code("INVALID_BRACKET_STYLE").
			With("style", string(m.style)).
			Hint("Supported styles: p, b, B, v, V").
			Errorf("unknown matrix bracket style %q", string(m.style))
	}

	return m, nil
}

// NewDeterminant renders a square grid with single-bar delimiters. The
// bracket style is fixed; a non-square grid is rejected.
func NewDeterminant(grid Grid, opts ...MatrixOption) (*Matrix, error) {
	if grid.Rows() != grid.Cols() {
		return nil, oops.
			Code("SHAPE_MISMATCH").
			With("rows", grid.Rows()).
			With("cols", grid.Cols()).
			Hint("Determinants are only defined for square matrices").
			Errorf("determinant requires a square grid, got %dx%d", grid.Rows(), grid.Cols())
	}

	m, err := NewMatrix(grid, opts...)
	if err != nil {
		return nil, err
	}

	m.style = Bar
	return m, nil
}

// NewVector flattens the grid to a single 1x(rows*cols) row, whatever its
// original shape.
func NewVector(grid Grid, opts ...MatrixOption) (*Matrix, error) {
	return NewMatrix(Flatten(grid), opts...)
}

// NewColumnVector flattens the grid and transposes the result to a
// single (rows*cols)x1 column.
func NewColumnVector(grid Grid, opts ...MatrixOption) (*Matrix, error) {
	return NewMatrix(Transpose(Flatten(grid)), opts...)
}

func (m *Matrix) Grid() Grid          { return m.grid }
func (m *Matrix) Style() BracketStyle { return m.style }
func (m *Matrix) Requires() []string  { return []string{"amsmath"} }

// EnvironmentName is the amsmath environment the matrix renders into,
// including the star marker when an alignment is set.
func (m *Matrix) EnvironmentName() string {
	name := string(m.style) + "matrix"
	if m.alignment != "" {
		name += "*"
	}
	return name
}

// RenderContent emits the cell rows without the begin/end wrapping.
func (m *Matrix) RenderContent() string {
	var b strings.Builder
	for r := 0; r < m.grid.Rows(); r++ {
		if r > 0 {
			b.WriteString("\\\\%\n")
		}
		for c := 0; c < m.grid.Cols(); c++ {
			if c > 0 {
				b.WriteByte('&')
			}
			b.WriteString(latex.Stringify(m.grid.At(r, c)))
		}
	}
	return b.String()
}

func (m *Matrix) Render() string {
	opts := []latex.EnvironmentOption{
		latex.WithChildren(latex.Raw(m.RenderContent())),
	}
	if m.alignment != "" {
		opts = append(opts, latex.WithStartArguments(m.alignment))
	}

	env := latex.NewEnvironment(m.EnvironmentName(), opts...)
	return env.Render()
}

// VectorName renders a bold upright vector symbol: \mathbf{name}.
func VectorName(name string) *latex.Command {
	return latex.Slash("mathbf", name)
}
