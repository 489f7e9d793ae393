package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultOutput           = "build"
	validationTagRequiredIf = "required_if"
)

type Config struct {
	Output    string             `koanf:"output"`
	Snippets  map[string]Snippet `koanf:"snippets" validate:"required,dive"`
	ConfigDir string             `koanf:"-"`
}

// Snippet describes one generated .tex fragment. The fields used depend
// on Type: matrices take grid input, equations a formula, markdown a
// local path/glob or URL.
type Snippet struct {
	Type string `koanf:"type" validate:"required,oneof=matrix equation markdown"`

	// matrix
	Shape     string     `koanf:"shape"     validate:"omitempty,oneof=matrix determinant vector column"`
	Style     string     `koanf:"style"     validate:"omitempty,oneof=p b B v V"`
	Alignment string     `koanf:"alignment"`
	Rows      [][]string `koanf:"rows"`
	Data      string     `koanf:"data"` // CSV file path or URL

	// equation
	Formula string `koanf:"formula" validate:"required_if=Type equation"`
	Display string `koanf:"display" validate:"omitempty,oneof=inline dollar brackets"`

	// markdown
	Path string `koanf:"path"`
	URL  string `koanf:"url" validate:"omitempty,url"`

	// output filename override (defaults to <name>.tex)
	Out string `koanf:"out"`
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}

	for snippetName, snippetCfg := range c.Snippets {
		if snippetCfg.Type == "matrix" {
			if snippetCfg.Shape == "" {
				snippetCfg.Shape = "matrix"
			}
			if snippetCfg.Style == "" {
				snippetCfg.Style = "p"
			}
		}

		if snippetCfg.Type == "equation" && snippetCfg.Display == "" {
			snippetCfg.Display = "brackets"
		}

		c.Snippets[snippetName] = snippetCfg
	}
}

func (c *Config) Validate() error {
	v := newValidator()

	for snippetName, snippetCfg := range c.Snippets {
		valErr := v.Struct(snippetCfg)
		if valErr != nil {
			var validationErrors validator.ValidationErrors
			if !errors.As(valErr, &validationErrors) {
				return oops.
					Code("CONFIG_INVALID").
					With("snippet", snippetName).
					Wrapf(valErr, "validating snippet %q", snippetName)
			}

			for _, fe := range validationErrors {
				return mapValidationError(snippetName, snippetCfg, fe)
			}
		}

		if err := validateInputs(snippetName, snippetCfg); err != nil {
			return err
		}
	}

	return nil
}

// validateInputs covers the cross-field rules the struct tags cannot
// express: matrices need exactly one grid input, markdown exactly one
// content input.
func validateInputs(snippetName string, snippetCfg Snippet) error {
	switch snippetCfg.Type {
	case "matrix":
		hasRows := len(snippetCfg.Rows) > 0
		hasData := snippetCfg.Data != ""
		if hasRows == hasData {
			return oops.
				Code("CONFIG_INVALID").
				With("snippet", snippetName).
				With("field", "rows").
				Hint("Set exactly one of rows or data for matrix snippets").
				Errorf("matrix snippet %q needs either rows or data", snippetName)
		}

	case "markdown":
		hasPath := snippetCfg.Path != ""
		hasURL := snippetCfg.URL != ""
		if hasPath == hasURL {
			return oops.
				Code("CONFIG_INVALID").
				With("snippet", snippetName).
				With("field", "path").
				Hint("Set exactly one of path or url for markdown snippets").
				Errorf("markdown snippet %q needs either path or url", snippetName)
		}
	}

	return nil
}

func mapValidationError(snippetName string, snippetCfg Snippet, fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch {
	case fe.Tag() == "oneof" && field == "type":
		return oops.
			Code("UNKNOWN_SNIPPET_TYPE").
			With("snippet", snippetName).
			With("type", snippetCfg.Type).
			Hint("Supported types: matrix, equation, markdown").
			Errorf("unknown snippet type %q for snippet %q", snippetCfg.Type, snippetName)

	case fe.Tag() == "required" && field == "type":
		return oops.
			Code("CONFIG_INVALID").
			With("snippet", snippetName).
			With("field", "type").
			Hint("Set type to matrix, equation, or markdown").
			Errorf("missing type for snippet %q", snippetName)

	case fe.Tag() == "oneof" && field == "style":
		return oops.
			Code("CONFIG_INVALID").
			With("snippet", snippetName).
			With("field", "style").
			With("value", snippetCfg.Style).
			Hint("Supported bracket styles: p, b, B, v, V").
			Errorf("invalid bracket style %q for snippet %q", snippetCfg.Style, snippetName)

	case fe.Tag() == "oneof" && field == "shape":
		return oops.
			Code("CONFIG_INVALID").
			With("snippet", snippetName).
			With("field", "shape").
			With("value", snippetCfg.Shape).
			Hint("Supported shapes: matrix, determinant, vector, column").
			Errorf("invalid shape %q for snippet %q", snippetCfg.Shape, snippetName)

	case fe.Tag() == validationTagRequiredIf && field == "formula":
		return oops.
			Code("CONFIG_INVALID").
			With("snippet", snippetName).
			With("field", "formula").
			Hint("Set formula for equation snippets").
			Errorf("missing formula for snippet %q", snippetName)

	case fe.Tag() == "oneof" && field == "display":
		return oops.
			Code("CONFIG_INVALID").
			With("snippet", snippetName).
			With("field", "display").
			With("value", snippetCfg.Display).
			Hint("Supported display modes: inline, dollar, brackets").
			Errorf("invalid display mode %q for snippet %q", snippetCfg.Display, snippetName)

	case fe.Tag() == "url":
		return oops.
			Code("CONFIG_INVALID").
			With("snippet", snippetName).
			With("field", "url").
			With("value", snippetCfg.URL).
			Hint("Set url to an absolute http(s) URL").
			Errorf("invalid url %q for snippet %q", snippetCfg.URL, snippetName)

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("snippet", snippetName).
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q in snippet %q", field, snippetName)
	}
}

// OutputFile resolves the output .tex path for a snippet below the
// configured output directory.
func (c *Config) OutputFile(snippetName string, snippetCfg Snippet) string {
	baseOutputDir := c.Output
	if !filepath.IsAbs(baseOutputDir) {
		baseOutputDir = filepath.Join(c.ConfigDir, c.Output)
	}

	filename := snippetCfg.Out
	if filename == "" {
		filename = snippetName + ".tex"
	}

	return filepath.Join(baseOutputDir, filename)
}
