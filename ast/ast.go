package ast

import "github.com/decipher3114/go-resl/token"

// Idx is the byte offset of a node or token within RESL source text.
type Idx int

// Node is implemented by all AST nodes.
type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
}

type (
	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	NullLiteral struct {
		Idx Idx
	}

	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	IntegerLiteral struct {
		Idx   Idx
		Value int64
	}

	FloatLiteral struct {
		Idx   Idx
		Value float64
	}

	StringLiteral struct {
		Idx   Idx
		Value string
	}

	ListLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        []Expr
	}

	// MapEntry is one key-expression pair of a MapLiteral. The key is always
	// a resolved string: bare identifier keys are sugar for their spelling.
	MapEntry struct {
		KeyIdx Idx
		Key    string
		Value  Expr
	}

	MapLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Entries    []MapEntry
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  Expr
	}

	BinaryExpression struct {
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	// ParenExpression records an explicit source-level grouping. It has no
	// semantics of its own; evaluation and structural comparison see through it.
	ParenExpression struct {
		LeftParenthesis  Idx
		RightParenthesis Idx
		Expr             Expr
	}
)

func (n *NullLiteral) Idx0() Idx      { return n.Idx }
func (n *BooleanLiteral) Idx0() Idx   { return n.Idx }
func (n *IntegerLiteral) Idx0() Idx   { return n.Idx }
func (n *FloatLiteral) Idx0() Idx     { return n.Idx }
func (n *StringLiteral) Idx0() Idx    { return n.Idx }
func (n *ListLiteral) Idx0() Idx      { return n.LeftBracket }
func (n *MapLiteral) Idx0() Idx       { return n.LeftBrace }
func (n *UnaryExpression) Idx0() Idx  { return n.Idx }
func (n *BinaryExpression) Idx0() Idx { return n.Left.Idx0() }
func (n *ParenExpression) Idx0() Idx  { return n.LeftParenthesis }

func (*NullLiteral) _expr()      {}
func (*BooleanLiteral) _expr()   {}
func (*IntegerLiteral) _expr()   {}
func (*FloatLiteral) _expr()     {}
func (*StringLiteral) _expr()    {}
func (*ListLiteral) _expr()      {}
func (*MapLiteral) _expr()       {}
func (*UnaryExpression) _expr()  {}
func (*BinaryExpression) _expr() {}
func (*ParenExpression) _expr()  {}

// Unparen strips any grouping nodes from around e.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*ParenExpression)
		if !ok {
			return e
		}
		e = p.Expr
	}
}

// Equal reports whether a and b are structurally equal: same node shape and
// same literal values. Source positions and explicit grouping are ignored,
// so a tree re-parsed from its canonical rendering compares equal to the
// original.
func Equal(a, b Expr) bool {
	a, b = Unparen(a), Unparen(b)
	switch an := a.(type) {
	case *NullLiteral:
		_, ok := b.(*NullLiteral)
		return ok
	case *BooleanLiteral:
		bn, ok := b.(*BooleanLiteral)
		return ok && an.Value == bn.Value
	case *IntegerLiteral:
		bn, ok := b.(*IntegerLiteral)
		return ok && an.Value == bn.Value
	case *FloatLiteral:
		bn, ok := b.(*FloatLiteral)
		return ok && an.Value == bn.Value
	case *StringLiteral:
		bn, ok := b.(*StringLiteral)
		return ok && an.Value == bn.Value
	case *ListLiteral:
		bn, ok := b.(*ListLiteral)
		if !ok || len(an.Value) != len(bn.Value) {
			return false
		}
		for i := range an.Value {
			if !Equal(an.Value[i], bn.Value[i]) {
				return false
			}
		}
		return true
	case *MapLiteral:
		bn, ok := b.(*MapLiteral)
		if !ok || len(an.Entries) != len(bn.Entries) {
			return false
		}
		for i := range an.Entries {
			if an.Entries[i].Key != bn.Entries[i].Key {
				return false
			}
			if !Equal(an.Entries[i].Value, bn.Entries[i].Value) {
				return false
			}
		}
		return true
	case *UnaryExpression:
		bn, ok := b.(*UnaryExpression)
		return ok && an.Operator == bn.Operator && Equal(an.Operand, bn.Operand)
	case *BinaryExpression:
		bn, ok := b.(*BinaryExpression)
		return ok && an.Operator == bn.Operator &&
			Equal(an.Left, bn.Left) && Equal(an.Right, bn.Right)
	}
	return false
}
