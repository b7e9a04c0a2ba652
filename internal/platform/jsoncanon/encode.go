package jsoncanon

import (
	"fmt"
	"slices"
	"strings"
)

type Options struct {
	Indent   int
	SortKeys bool
}

// Encode renders v in canonical form: one member or element per line,
// Indent spaces per level, ": " after keys, empty containers inline,
// floats in shortest round-trip form and non-ASCII text left unescaped. The result has no trailing newline.
func Encode(v Value, opts Options) string {
	indent := opts.Indent
	if indent < 0 {
		indent = 0
	}
	e := encoder{indent: strings.Repeat(" ", indent), sortKeys: opts.SortKeys}
	e.value(v, 0)
	return e.buf.String()
}

type encoder struct {
	buf      strings.Builder
	indent   string
	sortKeys bool
}

func (e *encoder) value(v Value, depth int) {
	switch v.Kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		if v.Bool {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case KindNumber:
		e.buf.WriteString(formatNumber(v.Number))
	case KindString:
		e.quote(v.String)
	case KindArray:
		e.array(v.Items, depth)
	case KindObject:
		e.object(v.Members, depth)
	}
}

func (e *encoder) array(items []Value, depth int) {
	if len(items) == 0 {
		e.buf.WriteString("[]")
		return
	}
	e.buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline(depth + 1)
		e.value(item, depth+1)
	}
	e.newline(depth)
	e.buf.WriteByte(']')
}

func (e *encoder) object(members []Member, depth int) {
	if len(members) == 0 {
		e.buf.WriteString("{}")
		return
	}
	if e.sortKeys {
		members = slices.Clone(members)
		slices.SortStableFunc(members, func(a, b Member) int {
			return strings.Compare(a.Key, b.Key)
		})
	}
	e.buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline(depth + 1)
		e.quote(m.Key)
		e.buf.WriteString(": ")
		e.value(m.Value, depth+1)
	}
	e.newline(depth)
	e.buf.WriteByte('}')
}

func (e *encoder) newline(depth int) {
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}

func (e *encoder) quote(s string) {
	e.buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			e.buf.WriteString(`\"`)
		case '\\':
			e.buf.WriteString(`\\`)
		case '\b':
			e.buf.WriteString(`\b`)
		case '\f':
			e.buf.WriteString(`\f`)
		case '\n':
			e.buf.WriteString(`\n`)
		case '\r':
			e.buf.WriteString(`\r`)
		case '\t':
			e.buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&e.buf, `\u%04x`, r)
				continue
			}
			e.buf.WriteRune(r)
		}
	}
	e.buf.WriteByte('"')
}
