package generator

import (
	"strings"

	"github.com/decipher3114/go-resl/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Expr
	parent *state
	indent int
	pretty bool
}

func (s *state) wrap(node ast.Expr) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		pretty: s.pretty,
	}
}

// splice replaces the current node without adding a level to the parent
// chain. Used to see through explicit grouping, so parenthesization
// decisions consult the real enclosing operator.
func (s *state) splice(node ast.Expr) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s.parent,
		indent: s.indent,
		pretty: s.pretty,
	}
}

func (s *state) line() {
	if s.pretty {
		s.out.WriteString("\n")
	}
}

func (s *state) lineAndPad() {
	if !s.pretty {
		return
	}
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}
