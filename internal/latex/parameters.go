package latex

import (
	"hash/fnv"
	"reflect"
	"strings"
)

// KV is a keyed parameter value. Keyed values render as key=value and
// always follow the positional values.
type KV struct {
	Key   string
	Value any
}

// parameterList holds the ordered positional and keyed values shared by
// Options and Arguments. It is immutable once built; callers needing a
// different parameter set construct a replacement.
type parameterList struct {
	positional []any
	keyed      []KV
}

// newParameterList splits values into positional and keyed entries.
// A single non-string slice or array is flattened into the positional
// sequence so that NewOptions(values) and NewOptions(v1, v2, ...) agree.
func newParameterList(values ...any) parameterList {
	if len(values) == 1 {
		values = flattenSingle(values[0])
	}

	var p parameterList
	for _, v := range values {
		if kv, ok := v.(KV); ok {
			p.setKeyed(kv)
			continue
		}
		p.positional = append(p.positional, v)
	}

	return p
}

// setKeyed stores a keyed value. Keys are unique: a repeated key keeps
// its first insertion position and takes the last value supplied.
func (p *parameterList) setKeyed(kv KV) {
	for i, existing := range p.keyed {
		if existing.Key == kv.Key {
			p.keyed[i].Value = kv.Value
			return
		}
	}
	p.keyed = append(p.keyed, kv)
}

func flattenSingle(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case string, KV, Raw:
		return []any{t}
	case []any:
		return t
	case []KV:
		out := make([]any, len(t))
		for i, kv := range t {
			out[i] = kv
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// items renders every parameter to its textual form, positional values
// first, keyed values as key=value in construction order.
func (p parameterList) items() []string {
	out := make([]string, 0, len(p.positional)+len(p.keyed))
	for _, v := range p.positional {
		out = append(out, Stringify(v))
	}
	for _, kv := range p.keyed {
		out = append(out, kv.Key+"="+Stringify(kv.Value))
	}
	return out
}

// format wraps the joined items in prefix/suffix, or returns the empty
// string when there is nothing to render. Empty parameter blocks are
// omitted entirely rather than emitted as [] or {}.
func (p parameterList) format(prefix, separator, suffix string) string {
	items := p.items()
	if len(items) == 0 {
		return ""
	}

	return prefix + strings.Join(items, separator) + suffix
}

// key returns the canonical identity string used for structural equality
// and hashing. The unit separator keeps adjacent values from colliding.
func (p parameterList) key(kind string) string {
	var b strings.Builder
	b.WriteString(kind)
	for _, v := range p.positional {
		b.WriteByte(0x1f)
		b.WriteString(Stringify(v))
	}
	b.WriteByte(0x1e)
	for _, kv := range p.keyed {
		b.WriteByte(0x1f)
		b.WriteString(kv.Key)
		b.WriteByte(0x1f)
		b.WriteString(Stringify(kv.Value))
	}
	return b.String()
}

func hashKey(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return h.Sum64()
}

// Options is the square-bracket parameter block of a command. Positional
// values render before keyed values, comma separated: [a,b,k=v].
type Options struct {
	parameterList
}

func NewOptions(values ...any) *Options {
	return &Options{newParameterList(values...)}
}

func (o *Options) Render() string {
	return o.format("[", ",", "]")
}

func (o *Options) Equal(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.key("options") == other.key("options")
}

func (o *Options) Hash() uint64 {
	return hashKey(o.key("options"))
}

// Arguments is the curly-brace parameter block of a command. Every value
// gets its own brace pair: {a}{b}{k=v}.
type Arguments struct {
	parameterList
}

func NewArguments(values ...any) *Arguments {
	return &Arguments{newParameterList(values...)}
}

func (a *Arguments) Render() string {
	return a.format("{", "}{", "}")
}

func (a *Arguments) Equal(other *Arguments) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.key("arguments") == other.key("arguments")
}

func (a *Arguments) Hash() uint64 {
	return hashKey(a.key("arguments"))
}
