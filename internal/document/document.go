// Package document assembles rendered snippets into complete .tex files.
package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
	"github.com/texkit/texkit/internal/latex"
)

const DefaultClass = "article"

// Document is a minimal LaTeX file: a preamble built from commands plus a
// document environment wrapping the content. Packages declared by content
// nodes via Requires() are merged into the preamble automatically.
type Document struct {
	Class        string
	ClassOptions []string
	Packages     []string
	Children     []any
}

func (d *Document) class() string {
	if d.Class == "" {
		return DefaultClass
	}
	return d.Class
}

// packages returns the explicit and content-required package names,
// deduplicated in first-seen order.
func (d *Document) packages() []string {
	seen := make(map[string]bool)
	var out []string

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	for _, name := range d.Packages {
		add(name)
	}
	for _, child := range d.Children {
		if req, ok := child.(latex.Requirer); ok {
			for _, name := range req.Requires() {
				add(name)
			}
		}
	}

	return out
}

func (d *Document) Render() string {
	var b strings.Builder

	var classOpts []latex.CommandOption
	if len(d.ClassOptions) > 0 {
		classOpts = append(classOpts, latex.WithOptions(d.ClassOptions))
	}
	classOpts = append(classOpts, latex.WithArguments(d.class()))

	// Slot values are scalars and slices, so coercion cannot fail here.
	documentclass, _ := latex.NewCommand("documentclass", classOpts...)
	b.WriteString(documentclass.Render())
	b.WriteByte('\n')

	for _, name := range d.packages() {
		b.WriteString(latex.Slash("usepackage", name).Render())
		b.WriteByte('\n')
	}

	body := latex.NewEnvironment("document",
		latex.WithChildren(d.Children...),
		latex.WithSeparator("\n\n"),
	)
	b.WriteString(body.Render())
	b.WriteByte('\n')

	return b.String()
}

// Write renders the document and writes it below dir, replacing any
// existing file atomically.
func Write(doc *Document, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", oops.
			Code("WRITE_FAILED").
			With("path", dir).
			Wrapf(err, "creating output directory")
	}

	path := filepath.Join(dir, filename)
	if err := WriteFileAtomic(path, []byte(doc.Render())); err != nil {
		return "", err
	}

	return path, nil
}

// WriteFileAtomic writes content through a temporary file and renames it
// into place so readers never observe a partial file.
func WriteFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".texkit-*.tmp")
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "creating temporary file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, err := tempFile.Write(content); err != nil {
		_ = tempFile.Close()
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "writing temporary file")
	}

	if err := tempFile.Close(); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "closing temporary file")
	}

	if err := os.Rename(tempPath, path); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "replacing destination file")
	}

	return nil
}
