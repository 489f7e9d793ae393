package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

type SnippetStatus struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Shape      string    `json:"shape,omitempty"`
	Style      string    `json:"style,omitempty"`
	Display    string    `json:"display,omitempty"`
	Source     string    `json:"source,omitempty"`
	Output     string    `json:"output"`
	Status     string    `json:"status"`
	Size       int64     `json:"size,omitempty"`
	RenderedAt time.Time `json:"rendered_at,omitempty"`
}

type ListOptions struct {
	JSON    bool
	Verbose bool
}

func RenderSnippetList(snippets []SnippetStatus, opts ListOptions) error {
	if opts.JSON {
		return renderSnippetListJSON(snippets)
	}

	renderSnippetListTable(snippets, opts)
	return nil
}

func renderSnippetListJSON(snippets []SnippetStatus) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(snippets); err != nil {
		return fmt.Errorf("encode snippet list json: %w", err)
	}

	return nil
}

func renderSnippetListTable(snippets []SnippetStatus, opts ListOptions) {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.SetStyle(table.StyleRounded)

	if opts.Verbose {
		writer.AppendHeader(table.Row{"SNIPPET", "TYPE", "DETAIL", "SOURCE", "STATUS", "OUTPUT"})
	} else {
		writer.AppendHeader(table.Row{"SNIPPET", "TYPE", "DETAIL", "STATUS"})
	}

	for _, snippet := range snippets {
		detail := RenderDetail(snippet)
		status := RenderStatus(snippet)

		if opts.Verbose {
			writer.AppendRow(table.Row{
				snippet.Name,
				snippet.Type,
				detail,
				snippet.Source,
				status,
				snippet.Output,
			})
			continue
		}

		writer.AppendRow(table.Row{
			snippet.Name,
			snippet.Type,
			detail,
			status,
		})
	}

	writer.Render()
}

// RenderDetail summarizes the type-specific settings of a snippet for the
// list table: shape and bracket style for matrices, display mode for
// equations, the source for markdown.
func RenderDetail(snippet SnippetStatus) string {
	switch snippet.Type {
	case "matrix":
		if snippet.Style != "" {
			return fmt.Sprintf("%s (%smatrix)", snippet.Shape, snippet.Style)
		}
		return snippet.Shape
	case "equation":
		return snippet.Display
	case "markdown":
		return snippet.Source
	default:
		return ""
	}
}

// RenderStatus formats the rendered state of a snippet, including the output
// size when one has been written.
func RenderStatus(snippet SnippetStatus) string {
	if snippet.Status == "rendered" && snippet.Size > 0 {
		return fmt.Sprintf("%s (%d bytes)", snippet.Status, snippet.Size)
	}

	return snippet.Status
}
