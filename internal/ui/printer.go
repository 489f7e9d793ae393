package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/texkit/texkit/internal/render"
)

type styles struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	bold   *color.Color
}

func newStyles() styles {
	return styles{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		dim:    color.New(color.Faint),
		bold:   color.New(color.Bold),
	}
}

// RenderPrinter writes per-snippet render outcomes to stderr with colored
// output.
type RenderPrinter struct {
	w      io.Writer
	dryRun bool
	mu     sync.Mutex
	s      styles
}

// NewRenderPrinter creates a RenderPrinter that writes to stderr.
func NewRenderPrinter(dryRun bool) *RenderPrinter {
	return &RenderPrinter{
		w:      os.Stderr,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// NewRenderPrinterWithWriter creates a RenderPrinter that writes to the
// given writer.
func NewRenderPrinterWithWriter(w io.Writer, dryRun bool) *RenderPrinter {
	return &RenderPrinter{
		w:      w,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// PrintResult renders one snippet outcome line.
func (p *RenderPrinter) PrintResult(r render.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := p.s.bold.Sprint(r.Name)

	if r.Err != nil {
		fmt.Fprintf(p.w, "%s %s: %s\n",
			p.s.red.Sprint("✗"),
			name,
			r.Err,
		)
		return
	}

	detail := fmt.Sprintf("(%d bytes)", r.Size)
	if p.dryRun {
		detail = "(dry run)"
	}

	fmt.Fprintf(p.w, "%s %s %s %s\n",
		p.s.green.Sprint("✓"),
		name,
		p.s.dim.Sprint(r.Path),
		p.s.dim.Sprint(detail),
	)
}

// PrintSummary renders a final summary line after all snippets finished.
func (p *RenderPrinter) PrintSummary(results []render.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rendered := 0
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		rendered++
	}

	fmt.Fprintln(p.w)

	label := "render complete"
	if p.dryRun {
		label = p.s.yellow.Sprint("dry-run complete")
	}

	parts := fmt.Sprintf("%s: %d snippet(s), %d rendered",
		label,
		len(results),
		rendered,
	)

	if failed > 0 {
		parts += fmt.Sprintf(", %s",
			p.s.red.Sprintf("%d failed", failed),
		)
	}

	fmt.Fprintln(p.w, parts)

	if p.dryRun {
		fmt.Fprintln(p.w, p.s.dim.Sprint("no files were written"))
	}
}
