// Package pattern composes regular-expression fragments.
//
// Fragments are values rather than strings so composition stays explicit:
// every combinator wraps its operands in a non-capturing group, and only
// Full anchors an expression. Render returns RE2 syntax accepted by regexp.
package pattern

import (
	"regexp"
	"strconv"
	"strings"
)

// Fragment is a piece of a regular expression.
type Fragment interface {
	Render() string
}

type raw string

func (r raw) Render() string { return string(r) }

// Raw wraps regular-expression text verbatim.
func Raw(expr string) Fragment { return raw(expr) }

// Literal matches s exactly.
func Literal(s string) Fragment { return raw(regexp.QuoteMeta(s)) }

// Class matches one rune from chars. Runes that are special inside a
// bracket expression are escaped.
func Class(chars string) Fragment {
	b := &strings.Builder{}
	b.WriteByte('[')
	for _, r := range chars {
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return raw(b.String())
}

type seq []Fragment

func (s seq) Render() string {
	b := &strings.Builder{}
	for _, f := range s {
		if f != nil {
			b.WriteString(f.Render())
		}
	}
	return b.String()
}

// Seq concatenates fragments. Nil fragments are skipped.
func Seq(fs ...Fragment) Fragment { return seq(fs) }

type alt []Fragment

func (a alt) Render() string {
	parts := make([]string, 0, len(a))
	for _, f := range a {
		if f != nil {
			parts = append(parts, f.Render())
		}
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

// Alt matches any one of fs.
func Alt(fs ...Fragment) Fragment { return alt(fs) }

type optional struct{ f Fragment }

func (o optional) Render() string { return "(?:" + o.f.Render() + ")?" }

// Optional matches f zero or one time. Optional(nil) is nil.
func Optional(f Fragment) Fragment {
	if f == nil {
		return nil
	}
	return optional{f: f}
}

type repeat struct {
	f        Fragment
	min, max int
}

func (r repeat) Render() string {
	inner := "(?:" + r.f.Render() + ")"
	switch {
	case r.min == 0 && r.max < 0:
		return inner + "*"
	case r.min == 1 && r.max < 0:
		return inner + "+"
	case r.max < 0:
		return inner + "{" + strconv.Itoa(r.min) + ",}"
	case r.min == r.max:
		return inner + "{" + strconv.Itoa(r.min) + "}"
	default:
		return inner + "{" + strconv.Itoa(r.min) + "," + strconv.Itoa(r.max) + "}"
	}
}

// Repeat matches f between min and max times. A negative max is unbounded.
func Repeat(f Fragment, min, max int) Fragment { return repeat{f: f, min: min, max: max} }

// Digits matches between min and max ASCII digits.
func Digits(min, max int) Fragment { return Repeat(raw("[0-9]"), min, max) }

type full struct{ f Fragment }

func (a full) Render() string { return "^(?:" + a.f.Render() + ")$" }

// Full anchors f so that only whole-string matches succeed.
func Full(f Fragment) Fragment { return full{f: f} }

// Compile renders and compiles f. It panics on invalid syntax, which can only
// come from a malformed Raw fragment.
func Compile(f Fragment) *regexp.Regexp { return regexp.MustCompile(f.Render()) }
