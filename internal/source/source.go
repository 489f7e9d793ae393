// Package source resolves snippet input data: local files by path or
// glob, remote files by URL, and CSV cell data for matrix grids.
package source

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
	"github.com/texkit/texkit/internal/texmath"
)

// Input is one resolved piece of content, named after its origin.
type Input struct {
	Name    string
	Content []byte
}

// ResolveLocal reads the files matching pattern, interpreted relative to
// baseDir unless absolute. Plain paths (no meta characters) are read
// directly so a missing file is reported as an error rather than an
// empty match set.
func ResolveLocal(baseDir, pattern string) ([]Input, error) {
	resolved := pattern
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(baseDir, pattern)
	}

	if !hasGlobMeta(pattern) {
		content, err := os.ReadFile(resolved)
		if err != nil {
			return nil, oops.
				Code("INPUT_NOT_FOUND").
				With("path", resolved).
				Hint("Check the snippet's path relative to the config file").
				Wrapf(err, "reading input file %q", resolved)
		}

		return []Input{{Name: filepath.Base(resolved), Content: content}}, nil
	}

	matches, err := doublestar.FilepathGlob(resolved)
	if err != nil {
		return nil, oops.
			Code("INPUT_NOT_FOUND").
			With("pattern", resolved).
			Wrapf(err, "expanding glob %q", pattern)
	}

	if len(matches) == 0 {
		return nil, oops.
			Code("INPUT_NOT_FOUND").
			With("pattern", resolved).
			Hint("Check the glob pattern against the project layout").
			Errorf("no files match pattern %q", pattern)
	}

	sort.Strings(matches)

	inputs := make([]Input, 0, len(matches))
	for _, match := range matches {
		content, readErr := os.ReadFile(match)
		if readErr != nil {
			return nil, oops.
				Code("INPUT_NOT_FOUND").
				With("path", match).
				Wrapf(readErr, "reading matched file %q", match)
		}

		inputs = append(inputs, Input{Name: filepath.Base(match), Content: content})
	}

	return inputs, nil
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// LoadCSVGrid parses CSV rows into a dense grid of string cells. Records
// must be rectangular; encoding/csv enforces that already, and NewDense
// rejects anything that slips through with a quoted field count change.
func LoadCSVGrid(r io.Reader) (*texmath.Dense, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, oops.
			Code("INPUT_INVALID").
			Hint("Matrix data files must be rectangular CSV").
			Wrapf(err, "parsing csv matrix data")
	}

	rows := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		rows[i] = row
	}

	return texmath.NewDense(rows)
}

// GridFromRows converts config-supplied string rows into a grid.
func GridFromRows(rows [][]string) (*texmath.Dense, error) {
	converted := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		converted[i] = cells
	}

	return texmath.NewDense(converted)
}
