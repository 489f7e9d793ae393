// Package convert turns markdown documents into LaTeX markup built from
// the latex object graph.
package convert

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/texkit/texkit/internal/latex"
)

// Result is the converted markup plus the LaTeX packages it depends on.
type Result struct {
	LaTeX    string
	Requires []string
}

// sectioning maps markdown heading levels to LaTeX sectioning commands.
// Deeper levels clamp to subparagraph.
var sectioning = []string{
	"section",
	"subsection",
	"subsubsection",
	"paragraph",
	"subparagraph",
}

// Markdown converts a markdown document to LaTeX. Text content is escaped;
// code blocks and spans pass through verbatim.
func Markdown(content []byte) (*Result, error) {
	mdParser := parser.NewWithExtensions(parser.CommonExtensions)
	doc := mdParser.Parse(content)

	c := &converter{requires: make(map[string]bool)}

	var blocks []string
	for _, node := range doc.GetChildren() {
		if block := c.renderBlock(node); block != "" {
			blocks = append(blocks, block)
		}
	}

	return &Result{
		LaTeX:    strings.Join(blocks, "\n\n"),
		Requires: c.requireList(),
	}, nil
}

type converter struct {
	requires map[string]bool
}

func (c *converter) require(pkg string) {
	c.requires[pkg] = true
}

func (c *converter) requireList() []string {
	// Stable output order regardless of document structure.
	var out []string
	for _, pkg := range []string{"graphicx", "hyperref", "ulem"} {
		if c.requires[pkg] {
			out = append(out, pkg)
		}
	}
	return out
}

func (c *converter) renderBlock(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Heading:
		return c.renderHeading(n)
	case *ast.Paragraph:
		return c.renderInline(n)
	case *ast.List:
		return c.renderList(n)
	case *ast.CodeBlock:
		return renderCodeBlock(n)
	case *ast.BlockQuote:
		return c.renderBlockQuote(n)
	case *ast.HorizontalRule:
		return `\hrule`
	default:
		return c.renderInline(node)
	}
}

func (c *converter) renderHeading(heading *ast.Heading) string {
	level := heading.Level
	if level < 1 {
		level = 1
	}
	if level > len(sectioning) {
		level = len(sectioning)
	}

	name := sectioning[level-1]
	return latex.Slash(name, latex.Raw(c.renderInline(heading))).Render()
}

func (c *converter) renderList(list *ast.List) string {
	name := "itemize"
	if list.ListFlags&ast.ListTypeOrdered != 0 {
		name = "enumerate"
	}

	var items []any
	for _, child := range list.GetChildren() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}

		var parts []string
		for _, grandchild := range item.GetChildren() {
			if part := c.renderBlock(grandchild); part != "" {
				parts = append(parts, part)
			}
		}

		items = append(items, latex.Raw(`\item `+strings.Join(parts, "\n")))
	}

	env := latex.NewEnvironment(name, latex.WithChildren(items...), latex.OmitIfEmpty())
	return env.Render()
}

// renderCodeBlock bypasses the Environment type: verbatim content must not
// carry the % line-continuation guards, which would print literally.
func renderCodeBlock(block *ast.CodeBlock) string {
	literal := strings.TrimRight(string(block.Literal), "\n")
	return "\\begin{verbatim}\n" + literal + "\n\\end{verbatim}"
}

func (c *converter) renderBlockQuote(quote *ast.BlockQuote) string {
	var parts []any
	for _, child := range quote.GetChildren() {
		if part := c.renderBlock(child); part != "" {
			parts = append(parts, latex.Raw(part))
		}
	}

	env := latex.NewEnvironment("quote", latex.WithChildren(parts...), latex.OmitIfEmpty())
	return env.Render()
}

// renderInline flattens a block's inline children into escaped LaTeX text.
func (c *converter) renderInline(node ast.Node) string {
	var b strings.Builder
	for _, child := range node.GetChildren() {
		b.WriteString(c.renderSpan(child))
	}
	return strings.TrimSpace(b.String())
}

func (c *converter) renderSpan(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Text:
		return latex.Escape(normalizeWhitespace(n.Literal))
	case *ast.Emph:
		return latex.Slash("emph", latex.Raw(c.renderInline(n))).Render()
	case *ast.Strong:
		return latex.Slash("textbf", latex.Raw(c.renderInline(n))).Render()
	case *ast.Del:
		c.require("ulem")
		return latex.Slash("sout", latex.Raw(c.renderInline(n))).Render()
	case *ast.Code:
		return latex.Slash("texttt", latex.Raw(latex.Escape(string(n.Literal)))).Render()
	case *ast.Link:
		c.require("hyperref")
		return latex.Slash("href", latex.Raw(string(n.Destination)), latex.Raw(c.renderInline(n))).Render()
	case *ast.Image:
		c.require("graphicx")
		return latex.Slash("includegraphics", latex.Raw(string(n.Destination))).Render()
	case *ast.Hardbreak:
		return "\\\\\n"
	default:
		return c.renderInline(node)
	}
}

// normalizeWhitespace collapses soft line breaks inside a paragraph to
// single spaces, preserving leading/trailing separation between spans.
func normalizeWhitespace(literal []byte) string {
	if len(literal) == 0 {
		return ""
	}

	fields := strings.Fields(string(literal))
	joined := strings.Join(fields, " ")

	if joined == "" {
		return " "
	}
	if startsWithSpace(literal) {
		joined = " " + joined
	}
	if endsWithSpace(literal) {
		joined += " "
	}
	return joined
}

func startsWithSpace(b []byte) bool {
	trimmed := bytes.TrimLeft(b, " \t\n")
	return len(trimmed) != len(b)
}

func endsWithSpace(b []byte) bool {
	trimmed := bytes.TrimRight(b, " \t\n")
	return len(trimmed) != len(b)
}
