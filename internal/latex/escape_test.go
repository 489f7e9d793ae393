package latex_test

import (
	"testing"

	"github.com/texkit/texkit/internal/latex"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"ampersand", "a & b", `a \& b`},
		{"percent", "100%", `100\%`},
		{"dollar", "$5", `\$5`},
		{"hash and underscore", "#tag_name", `\#tag\_name`},
		{"braces", "{x}", `\{x\}`},
		{"tilde", "~user", `\textasciitilde{}user`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := latex.Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
