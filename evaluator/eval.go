// Package evaluator reduces a RESL syntax tree to an owned Value tree.
// Evaluation is a pure single pass with no environment and no shared state;
// concurrent evaluations are independent.
package evaluator

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/decipher3114/go-resl/ast"
	"github.com/decipher3114/go-resl/token"
	"github.com/decipher3114/go-resl/value"
)

// Error describes an evaluation failure: a type mismatch, division or modulo
// by zero, or integer overflow. It names the offending operator and the byte
// offset of the originating node. The first error aborts evaluation; no
// partial Value tree is returned.
type Error struct {
	Operator token.Token
	Idx      ast.Idx
	Message  string
}

func (e *Error) Error() string {
	if e.Operator != token.Undetermined {
		return fmt.Sprintf("evaluation error at offset %d: operator %q: %s", e.Idx, e.Operator.String(), e.Message)
	}
	return fmt.Sprintf("evaluation error at offset %d: %s", e.Idx, e.Message)
}

// Evaluate reduces expr to a freshly allocated Value tree. The returned tree
// shares no nodes with any other tree; the caller owns it exclusively.
func Evaluate(expr ast.Expr) (*value.Value, error) {
	v, err := eval(expr)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func eval(expr ast.Expr) (*value.Value, *Error) {
	switch n := expr.(type) {
	case *ast.NullLiteral:
		return value.Null(), nil
	case *ast.BooleanLiteral:
		return value.Bool(n.Value), nil
	case *ast.IntegerLiteral:
		return value.Int(n.Value), nil
	case *ast.FloatLiteral:
		return value.Float(n.Value), nil
	case *ast.StringLiteral:
		// Copied, not aliased: the AST dies before the Value is returned.
		return value.Str(strings.Clone(n.Value)), nil
	case *ast.ListLiteral:
		items := make([]*value.Value, 0, len(n.Value))
		for _, element := range n.Value {
			item, err := eval(element)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return value.List(items), nil
	case *ast.MapLiteral:
		m := value.Map(len(n.Entries))
		for _, entry := range n.Entries {
			val, err := eval(entry.Value)
			if err != nil {
				return nil, err
			}
			m.Set(strings.Clone(entry.Key), val)
		}
		return m, nil
	case *ast.UnaryExpression:
		return evalUnary(n)
	case *ast.BinaryExpression:
		if n.Operator == token.LogicalAnd || n.Operator == token.LogicalOr {
			return evalLogical(n)
		}
		left, err := eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := eval(n.Right)
		if err != nil {
			return nil, err
		}
		return evalBinary(n.Operator, n.Left.Idx0(), left, right)
	case *ast.ParenExpression:
		return eval(n.Expr)
	}
	panic(fmt.Sprintf("eval: unexpected node type %T", expr))
}

func evalUnary(n *ast.UnaryExpression) (*value.Value, *Error) {
	operand, err := eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case token.Minus:
		switch operand.Tag {
		case value.TagInteger:
			if operand.Int == math.MinInt64 {
				return nil, &Error{Operator: n.Operator, Idx: n.Idx, Message: "integer overflow"}
			}
			return value.Int(-operand.Int), nil
		case value.TagFloat:
			return value.Float(-operand.Num), nil
		}
	case token.Not:
		if operand.Tag == value.TagBoolean {
			return value.Bool(!operand.Bool), nil
		}
	}
	return nil, &Error{
		Operator: n.Operator,
		Idx:      n.Idx,
		Message:  fmt.Sprintf("invalid operand: %s", operand.Tag),
	}
}

// evalLogical implements && and ||. Both operands must be Boolean; the right
// operand is never evaluated once the left determines the result, so errors
// it would raise are suppressed.
func evalLogical(n *ast.BinaryExpression) (*value.Value, *Error) {
	left, err := eval(n.Left)
	if err != nil {
		return nil, err
	}
	if left.Tag != value.TagBoolean {
		return nil, &Error{
			Operator: n.Operator,
			Idx:      n.Left.Idx0(),
			Message:  fmt.Sprintf("invalid operand: %s", left.Tag),
		}
	}
	if n.Operator == token.LogicalAnd && !left.Bool {
		return value.Bool(false), nil
	}
	if n.Operator == token.LogicalOr && left.Bool {
		return value.Bool(true), nil
	}
	right, err := eval(n.Right)
	if err != nil {
		return nil, err
	}
	if right.Tag != value.TagBoolean {
		return nil, &Error{
			Operator: n.Operator,
			Idx:      n.Right.Idx0(),
			Message:  fmt.Sprintf("invalid operand: %s", right.Tag),
		}
	}
	return value.Bool(right.Bool), nil
}

func evalBinary(op token.Token, idx ast.Idx, left, right *value.Value) (*value.Value, *Error) {
	switch op {
	case token.Equal:
		return value.Bool(value.Equal(left, right)), nil
	case token.NotEqual:
		return value.Bool(!value.Equal(left, right)), nil
	case token.Less, token.LessOrEqual, token.Greater, token.GreaterOrEqual:
		return evalOrdering(op, idx, left, right)
	case token.Plus, token.Minus, token.Multiply, token.Slash, token.Remainder:
		return evalArithmetic(op, idx, left, right)
	}
	panic(fmt.Sprintf("evalBinary: unexpected operator %q", op.String()))
}

// evalOrdering implements < <= > >=, defined for numbers (with Integer
// promoted to Float on mixed operands) and for strings byte-lexicographically.
func evalOrdering(op token.Token, idx ast.Idx, left, right *value.Value) (*value.Value, *Error) {
	switch {
	case left.Tag == value.TagInteger && right.Tag == value.TagInteger:
		return value.Bool(compareOrdered(op, left.Int, right.Int)), nil
	case left.Tag == value.TagString && right.Tag == value.TagString:
		return value.Bool(compareOrdered(op, left.Str, right.Str)), nil
	}
	if lhs, ok := left.AsFloat(); ok {
		if rhs, ok := right.AsFloat(); ok {
			return value.Bool(compareOrdered(op, lhs, rhs)), nil
		}
	}
	return nil, typeError(op, idx, left, right)
}

func compareOrdered[T constraints.Ordered](op token.Token, lhs, rhs T) bool {
	switch op {
	case token.Less:
		return lhs < rhs
	case token.LessOrEqual:
		return lhs <= rhs
	case token.Greater:
		return lhs > rhs
	case token.GreaterOrEqual:
		return lhs >= rhs
	}
	return false
}

func evalArithmetic(op token.Token, idx ast.Idx, left, right *value.Value) (*value.Value, *Error) {
	if left.Tag == value.TagInteger && right.Tag == value.TagInteger {
		return evalIntegerArithmetic(op, idx, left.Int, right.Int)
	}
	if lhs, ok := left.AsFloat(); ok {
		if rhs, ok := right.AsFloat(); ok {
			// IEEE754 throughout: division by zero yields an infinity or NaN.
			switch op {
			case token.Plus:
				return value.Float(lhs + rhs), nil
			case token.Minus:
				return value.Float(lhs - rhs), nil
			case token.Multiply:
				return value.Float(lhs * rhs), nil
			case token.Slash:
				return value.Float(lhs / rhs), nil
			case token.Remainder:
				return value.Float(math.Mod(lhs, rhs)), nil
			}
		}
	}
	if op == token.Plus && left.Tag == value.TagString && right.Tag == value.TagString {
		return value.Str(left.Str + right.Str), nil
	}
	return nil, typeError(op, idx, left, right)
}

// evalIntegerArithmetic performs checked 64-bit arithmetic. Overflow and
// zero divisors are evaluation errors, never wraparound.
func evalIntegerArithmetic(op token.Token, idx ast.Idx, lhs, rhs int64) (*value.Value, *Error) {
	switch op {
	case token.Plus:
		sum := lhs + rhs
		if (sum > lhs) != (rhs > 0) {
			return nil, overflowError(op, idx)
		}
		return value.Int(sum), nil
	case token.Minus:
		diff := lhs - rhs
		if (diff < lhs) != (rhs > 0) {
			return nil, overflowError(op, idx)
		}
		return value.Int(diff), nil
	case token.Multiply:
		if lhs == 0 || rhs == 0 {
			return value.Int(0), nil
		}
		if (lhs == math.MinInt64 && rhs == -1) || (rhs == math.MinInt64 && lhs == -1) {
			return nil, overflowError(op, idx)
		}
		product := lhs * rhs
		if product/rhs != lhs {
			return nil, overflowError(op, idx)
		}
		return value.Int(product), nil
	case token.Slash:
		if rhs == 0 {
			return nil, &Error{Operator: op, Idx: idx, Message: "division by zero"}
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return nil, overflowError(op, idx)
		}
		return value.Int(lhs / rhs), nil
	case token.Remainder:
		if rhs == 0 {
			return nil, &Error{Operator: op, Idx: idx, Message: "division by zero"}
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return nil, overflowError(op, idx)
		}
		return value.Int(lhs % rhs), nil
	}
	panic(fmt.Sprintf("evalIntegerArithmetic: unexpected operator %q", op.String()))
}

func overflowError(op token.Token, idx ast.Idx) *Error {
	return &Error{Operator: op, Idx: idx, Message: "integer overflow"}
}

func typeError(op token.Token, idx ast.Idx, left, right *value.Value) *Error {
	return &Error{
		Operator: op,
		Idx:      idx,
		Message:  fmt.Sprintf("invalid operands: %s and %s", left.Tag, right.Tag),
	}
}
