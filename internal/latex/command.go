package latex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// Command is a named LaTeX operation with an options block, an arguments
// block, and an optional second arguments block. The extra block is a
// distinct state from an empty one: its presence flips the render layout
// so that an argument can precede the option block.
type Command struct {
	name      string
	arguments *Arguments
	options   *Options
	extra     *Arguments // nil means absent
}

// CommandOption configures one parameter slot of a command under
// construction. Each slot is normalized exactly once by NewCommand.
type CommandOption func(*commandSpec)

type commandSpec struct {
	arguments any
	options   any
	extra     any
	hasExtra  bool
}

// WithArguments sets the main argument block. Accepts nil, a scalar, a
// slice of scalars, or an *Arguments.
func WithArguments(v any) CommandOption {
	return func(s *commandSpec) { s.arguments = v }
}

// WithOptions sets the option block. Accepts nil, a scalar, a slice of
// scalars, or an *Options.
func WithOptions(v any) CommandOption {
	return func(s *commandSpec) { s.options = v }
}

// WithExtraArguments sets the trailing argument block. Supplying it, even
// with an empty value, switches the command to the
// \name{arguments}[options]{extra} layout.
func WithExtraArguments(v any) CommandOption {
	return func(s *commandSpec) {
		s.extra = v
		s.hasExtra = true
	}
}

// NewCommand builds a command, coercing each parameter slot to its
// container kind. A container of the wrong kind cannot be coerced and
// fails with a TYPE_MISMATCH error.
func NewCommand(name string, opts ...CommandOption) (*Command, error) {
	var spec commandSpec
	for _, opt := range opts {
		opt(&spec)
	}

	arguments, err := coerceArguments(name, "arguments", spec.arguments)
	if err != nil {
		return nil, err
	}

	options, err := coerceOptions(name, spec.options)
	if err != nil {
		return nil, err
	}

	var extra *Arguments
	if spec.hasExtra {
		extra, err = coerceArguments(name, "extra_arguments", spec.extra)
		if err != nil {
			return nil, err
		}
	}

	return &Command{
		name:      name,
		arguments: arguments,
		options:   options,
		extra:     extra,
	}, nil
}

// Slash builds a simple \name{arg}{arg} command from scalar arguments.
// It is the spelling used for the common macro case where no slot can
// fail coercion: Slash("frac", "x", "y") renders \frac{x}{y}.
func Slash(name string, args ...any) *Command {
	return &Command{
		name:      name,
		arguments: NewArguments(args...),
		options:   NewOptions(),
	}
}

func coerceArguments(command, slot string, v any) (*Arguments, error) {
	switch t := v.(type) {
	case nil:
		return NewArguments(), nil
	case *Arguments:
		return t, nil
	case *Options:
		return nil, oops.
			Code("TYPE_MISMATCH").
			With("command", command).
			With("slot", slot).
			Hint("Pass an *Arguments, a scalar, or a slice of scalars").
			Errorf("cannot use *Options as the %s of \\%s", slot, command)
	default:
		return NewArguments(t), nil
	}
}

func coerceOptions(command string, v any) (*Options, error) {
	switch t := v.(type) {
	case nil:
		return NewOptions(), nil
	case *Options:
		return t, nil
	case *Arguments:
		return nil, oops.
			Code("TYPE_MISMATCH").
			With("command", command).
			With("slot", "options").
			Hint("Pass an *Options, a scalar, or a slice of scalars").
			Errorf("cannot use *Arguments as the options of \\%s", command)
	default:
		return NewOptions(t), nil
	}
}

func (c *Command) Name() string { return c.name }

// Render emits the command in one of two exclusive layouts. Without extra
// arguments the options precede the arguments; with them the arguments
// come first, then options, then the extra block.
func (c *Command) Render() string {
	if c.extra == nil {
		return `\` + c.name + c.options.Render() + c.arguments.Render()
	}

	return `\` + c.name + c.arguments.Render() + c.options.Render() + c.extra.Render()
}

func (c *Command) Equal(other *Command) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.key() == other.key()
}

func (c *Command) Hash() uint64 {
	return hashKey(c.key())
}

func (c *Command) key() string {
	var b strings.Builder
	b.WriteString("command\x1f")
	b.WriteString(c.name)
	b.WriteByte(0x1e)
	b.WriteString(c.arguments.key("arguments"))
	b.WriteByte(0x1e)
	b.WriteString(c.options.key("options"))
	b.WriteByte(0x1e)
	if c.extra != nil {
		b.WriteString(c.extra.key("arguments"))
	}
	return b.String()
}

// CommandDef declares a new macro via \newcommand. NArgs and Default are
// emitted as separate bracket groups, which the [a,b] option syntax of
// Command cannot express.
type CommandDef struct {
	Name    string
	Expr    string
	NArgs   int
	Default string
}

func (d *CommandDef) Render() string {
	var b strings.Builder
	b.WriteString(`\newcommand{\`)
	b.WriteString(d.Name)
	b.WriteString(`}`)
	if d.NArgs > 0 {
		b.WriteString("[" + strconv.Itoa(d.NArgs) + "]")
	}
	if d.Default != "" {
		fmt.Fprintf(&b, "[%s]", d.Default)
	}
	b.WriteString("{" + d.Expr + "}")
	return b.String()
}
