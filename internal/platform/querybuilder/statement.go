// Package querybuilder renders small postgres statements with positional ($n) arguments.
package querybuilder

import (
	"strconv"
	"strings"
)

// statement accumulates SQL text and the arguments bound so far.
type statement struct {
	sb   strings.Builder
	args []any
}

func (s *statement) raw(parts ...string) {
	for _, p := range parts {
		s.sb.WriteString(p)
	}
}

// bind appends v and writes its placeholder.
func (s *statement) bind(v any) {
	s.args = append(s.args, v)
	s.sb.WriteByte('$')
	s.sb.WriteString(strconv.Itoa(len(s.args)))
}

func (s *statement) joined(n int, sep string, each func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			s.sb.WriteString(sep)
		}
		each(i)
	}
}

// fragment writes text, binding one argument per '?'. Surplus '?' stay literal.
func (s *statement) fragment(text string, args []any) {
	if len(args) == 0 {
		s.sb.WriteString(text)
		return
	}
	for len(text) > 0 {
		idx := strings.IndexByte(text, '?')
		if idx < 0 || len(args) == 0 {
			s.sb.WriteString(text)
			return
		}
		s.sb.WriteString(text[:idx])
		s.bind(args[0])
		args = args[1:]
		text = text[idx+1:]
	}
}

func (s *statement) where(conds []Condition) {
	if len(conds) == 0 {
		return
	}
	s.raw(" WHERE ")
	s.joined(len(conds), " AND ", func(i int) { conds[i].render(s) })
}

func (s *statement) tail(suffix string) {
	if suffix != "" {
		s.raw(" ", suffix)
	}
}

func (s *statement) build() (string, []any, error) {
	return s.sb.String(), s.args, nil
}

// Condition renders one predicate of a WHERE clause.
type Condition interface {
	render(s *statement)
}

type comparison struct {
	column string
	op     string
	value  any
}

func (c comparison) render(s *statement) {
	s.raw(c.column, " ", c.op, " ")
	s.bind(c.value)
}

func Eq(column string, value any) Condition {
	return comparison{column: column, op: "=", value: value}
}

func NotEq(column string, value any) Condition {
	return comparison{column: column, op: "<>", value: value}
}

type membership struct {
	column string
	values []any
}

// In renders an IN list. An empty list matches nothing.
func In(column string, values []any) Condition {
	return membership{column: column, values: values}
}

func (c membership) render(s *statement) {
	if len(c.values) == 0 {
		s.raw("1=0")
		return
	}
	s.raw(c.column, " IN (")
	s.joined(len(c.values), ", ", func(i int) { s.bind(c.values[i]) })
	s.raw(")")
}

type rawPredicate struct {
	text string
	args []any
}

// Expr renders a raw predicate. Each ? is replaced by the next positional placeholder.
func Expr(expr string, args ...any) Condition {
	return rawPredicate{text: expr, args: args}
}

func (c rawPredicate) render(s *statement) {
	s.fragment(c.text, c.args)
}
