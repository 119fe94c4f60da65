// Package expr models expressions emitted into the generated widget source.
// Values are purely representational: validation decides what to build, this
// package only knows how to render it as target-language text.
package expr

import (
	"fmt"
	"strings"
)

// Expr is a fragment of target-language source text. Implementations are
// immutable values created once per validated configuration occurrence and
// owned by the caller until the final emitter consumes them.
type Expr interface {
	Render() string
}

// Literal is a directly-rendered token: a named constant, a number, or any
// other text that needs no quoting.
type Literal string

// Render implements Expr.
func (l Literal) Render() string { return string(l) }

// Raw is pass-through code supplied by the user (for example the body of an
// inline expression). It renders verbatim.
type Raw string

// Render implements Expr.
func (r Raw) Render() string { return string(r) }

// Call is a function-call-shaped expression wrapping sub-expressions,
// e.g. lv_color_hex(0xFF0000).
type Call struct {
	Fn   string
	Args []Expr
}

// NewCall builds a Call from a function name and its arguments.
func NewCall(fn string, args ...Expr) Call {
	return Call{Fn: fn, Args: args}
}

// Render implements Expr.
func (c Call) Render() string {
	parts := make([]string, len(c.Args))
	for i, arg := range c.Args {
		parts[i] = arg.Render()
	}
	return fmt.Sprintf("%s(%s)", c.Fn, strings.Join(parts, ", "))
}

// Int renders a signed integer token.
func Int(v int64) Literal {
	return Literal(fmt.Sprintf("%d", v))
}

// Float renders a floating point token with the shortest round-trippable form.
func Float(v float64) Literal {
	return Literal(fmt.Sprintf("%g", v))
}

// Hex renders an unsigned value as a 0x-prefixed hex token, zero padded to
// six digits as expected for packed RGB colors.
func Hex(v uint32) Literal {
	return Literal(fmt.Sprintf("0x%06X", v))
}

// Bool renders a boolean token.
func Bool(v bool) Literal {
	if v {
		return Literal("true")
	}
	return Literal("false")
}

// Str wraps a string in an escaped, double-quoted literal.
func Str(s string) Literal {
	return Literal(Escape(s))
}

// Escape produces a safely quoted target-language string literal. Printable
// ASCII passes through; quotes, backslashes and everything else are escaped
// with octal sequences so the output survives any source encoding.
func Escape(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, b := range []byte(s) {
		switch {
		case b == '\\':
			sb.WriteString(`\\`)
		case b == '"':
			sb.WriteString(`\"`)
		case b >= 0x20 && b < 0x7f:
			sb.WriteByte(b)
		default:
			fmt.Fprintf(&sb, "\\%03o", b)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
