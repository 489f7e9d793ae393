// Package latex builds an in-memory object graph of LaTeX commands,
// parameter blocks, and environments and serializes it to markup text.
package latex

import "fmt"

// Renderer produces LaTeX markup for one node of the object graph.
// Render is a pure read of owned state and may be called repeatedly.
type Renderer interface {
	Render() string
}

// Requirer is implemented by nodes that need LaTeX packages loaded in
// the document preamble.
type Requirer interface {
	Requires() []string
}

// Raw is a fragment emitted verbatim, with no escaping applied.
type Raw string

func (r Raw) Render() string { return string(r) }

// Stringify converts a parameter or content value to its markup text.
// Renderers render themselves; everything else goes through fmt.
func Stringify(v any) string {
	switch t := v.(type) {
	case Renderer:
		return t.Render()
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
