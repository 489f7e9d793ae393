package latex

import "strings"

// Environment wraps content in a \begin{name}...\end{name} block. The %
// line-continuation markers around the content keep LaTeX from inserting
// spurious whitespace at the block boundaries.
type Environment struct {
	name        string
	starred     bool
	options     *Options
	arguments   *Arguments
	children    []any
	separator   string
	omitIfEmpty bool
	packages    []string
}

type EnvironmentOption func(*Environment)

// Starred appends the * variant marker to the environment name.
func Starred() EnvironmentOption {
	return func(e *Environment) { e.starred = true }
}

// WithEnvOptions sets the [..] option block following \begin{name}.
func WithEnvOptions(values ...any) EnvironmentOption {
	return func(e *Environment) { e.options = NewOptions(values...) }
}

// WithStartArguments sets the {..} argument blocks following \begin{name}.
func WithStartArguments(values ...any) EnvironmentOption {
	return func(e *Environment) { e.arguments = NewArguments(values...) }
}

// WithChildren appends content nodes, joined by the content separator.
func WithChildren(children ...any) EnvironmentOption {
	return func(e *Environment) { e.children = append(e.children, children...) }
}

// WithSeparator overrides the default newline content separator.
func WithSeparator(sep string) EnvironmentOption {
	return func(e *Environment) { e.separator = sep }
}

// OmitIfEmpty suppresses the whole block when there is no content. Some
// environments (alignat among them) fail to compile when empty.
func OmitIfEmpty() EnvironmentOption {
	return func(e *Environment) { e.omitIfEmpty = true }
}

// WithRequires declares LaTeX packages the environment depends on.
func WithRequires(packages ...string) EnvironmentOption {
	return func(e *Environment) { e.packages = append(e.packages, packages...) }
}

func NewEnvironment(name string, opts ...EnvironmentOption) *Environment {
	e := &Environment{
		name:      name,
		options:   NewOptions(),
		arguments: NewArguments(),
		separator: "\n",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Environment) Name() string {
	if e.starred {
		return e.name + "*"
	}
	return e.name
}

func (e *Environment) Requires() []string { return e.packages }

// RenderContent joins the child nodes without the begin/end wrapping.
func (e *Environment) RenderContent() string {
	parts := make([]string, 0, len(e.children))
	for _, child := range e.children {
		parts = append(parts, Stringify(child))
	}
	return strings.Join(parts, e.separator)
}

func (e *Environment) Render() string {
	content := e.RenderContent()
	if e.omitIfEmpty && content == "" {
		return ""
	}

	name := e.Name()

	var b strings.Builder
	b.WriteString(`\begin{` + name + `}`)
	b.WriteString(e.options.Render())
	b.WriteString(e.arguments.Render())
	b.WriteString("%\n")
	b.WriteString(content)
	b.WriteString("%\n")
	b.WriteString(`\end{` + name + `}`)
	return b.String()
}
