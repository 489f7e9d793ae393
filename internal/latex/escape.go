package latex

import "strings"

// escaper rewrites LaTeX special characters in a single pass. Backslash
// must map to \textbackslash{} rather than \\ because \\ is a line break.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape rewrites s so it renders literally in LaTeX text mode.
func Escape(s string) string {
	return escaper.Replace(s)
}
