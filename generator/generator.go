// Package generator renders syntax trees and evaluated Value trees back to
// RESL text, in compact or pretty mode. The rendering is canonical, not an
// echo of the original spelling: strings are re-escaped, numbers re-rendered,
// and parentheses reduced to the minimum that preserves grouping.
package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/decipher3114/go-resl/ast"
)

// Generate renders an AST expression to canonical RESL source text. In
// pretty mode aggregates break across lines with a four-space indent unit
// and the output ends with a newline.
func Generate(expr ast.Expr, pretty bool) string {
	s := &state{
		out:    &strings.Builder{},
		node:   expr,
		parent: &state{},
		pretty: pretty,
	}
	gen(s)
	s.line()
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))
	case *ast.IntegerLiteral:
		s.out.WriteString(strconv.FormatInt(n.Value, 10))
	case *ast.FloatLiteral:
		s.out.WriteString(floatString(n.Value))
	case *ast.StringLiteral:
		writeQuoted(s.out, n.Value)
	case *ast.ListLiteral:
		s.out.WriteString("[")

		s.indent++
		for i, element := range n.Value {
			s.lineAndPad()
			gen(s.wrap(element))
			if i < len(n.Value)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--

		if len(n.Value) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("]")
	case *ast.MapLiteral:
		s.out.WriteString("{")

		s.indent++
		for i, entry := range n.Entries {
			s.lineAndPad()
			writeQuoted(s.out, entry.Key)
			s.out.WriteString(":")
			if s.pretty {
				s.out.WriteString(" ")
			}
			gen(s.wrap(entry.Value))
			if i < len(n.Entries)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--

		if len(n.Entries) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.UnaryExpression:
		s.out.WriteString(n.Operator.String())

		operand := ast.Unparen(n.Operand)
		wrap := false
		switch operand.(type) {
		case *ast.BinaryExpression, *ast.UnaryExpression:
			wrap = true
		}

		if wrap {
			s.out.WriteString("(")
		}
		gen(s.wrap(operand))
		if wrap {
			s.out.WriteString(")")
		}
	case *ast.BinaryExpression:
		if pn, ok := s.parent.node.(*ast.BinaryExpression); ok {
			operatorPrecedence := n.Operator.Precedence()
			parentOperatorPrecedence := pn.Operator.Precedence()
			if operatorPrecedence < parentOperatorPrecedence ||
				operatorPrecedence == parentOperatorPrecedence && ast.Unparen(pn.Right) == ast.Expr(n) {
				s.out.WriteString("(")
				defer s.out.WriteString(")")
			}
		}
		gen(s.wrap(n.Left))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrap(n.Right))
	case *ast.ParenExpression:
		gen(s.splice(ast.Unparen(n.Expr)))
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// floatString renders a float canonically: shortest representation with a
// lowercase exponent, forced to carry a '.' or exponent so it re-parses as a
// Float. Non-finite values are render-only; no literal syntax produces them.
func floatString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// writeQuoted re-escapes a string canonically: '"', '\\', and control
// characters are escaped, everything else passes through as UTF-8.
func writeQuoted(out *strings.Builder, s string) {
	out.WriteString(`"`)
	for _, chr := range s {
		switch chr {
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\n`)
		case '\t':
			out.WriteString(`\t`)
		case '\r':
			out.WriteString(`\r`)
		default:
			if chr < 0x20 {
				fmt.Fprintf(out, `\u%04x`, chr)
			} else {
				out.WriteRune(chr)
			}
		}
	}
	out.WriteString(`"`)
}
