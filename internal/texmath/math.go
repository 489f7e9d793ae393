package texmath

import (
	"strconv"
	"strings"

	"github.com/texkit/texkit/internal/latex"
)

// Math wraps content in one of three math-mode renderings. Inline wins
// over Dollar; when neither is set the explicit \[ \] display markers
// are used.
type Math struct {
	Inline  bool
	Dollar  bool
	Content []any
}

func (m *Math) Requires() []string { return []string{"amsmath"} }

// RenderContent joins the child nodes with a single space.
func (m *Math) RenderContent() string {
	parts := make([]string, 0, len(m.Content))
	for _, child := range m.Content {
		parts = append(parts, latex.Stringify(child))
	}
	return strings.Join(parts, " ")
}

func (m *Math) Render() string {
	content := m.RenderContent()

	switch {
	case m.Inline:
		return "$" + content + "$"
	case m.Dollar:
		return "$$\n" + content + "\n$$"
	default:
		return "\\[%\n" + content + "%\n\\]"
	}
}

// Dollar is shorthand for inline math: $x$.
func Dollar(x any) *Math {
	return &Math{Inline: true, Content: []any{x}}
}

// DDollar is shorthand for display math with double-dollar markers.
func DDollar(x any) *Math {
	return &Math{Dollar: true, Content: []any{x}}
}

// NewAlignat builds an alignat equation environment with the given number
// of alignment columns. Unnumbered blocks use the starred variant. The
// block is omitted entirely when empty because alignat fails to compile
// without items.
func NewAlignat(aligns int, numbering bool, content ...any) *latex.Environment {
	opts := []latex.EnvironmentOption{
		latex.WithStartArguments(strconv.Itoa(aligns)),
		latex.WithChildren(content...),
		latex.OmitIfEmpty(),
		latex.WithRequires("amsmath"),
	}
	if !numbering {
		opts = append(opts, latex.Starred())
	}
	return latex.NewEnvironment("alignat", opts...)
}
