package ast

import (
	"testing"

	"github.com/decipher3114/go-resl/token"
)

func TestUnparen(t *testing.T) {
	inner := &IntegerLiteral{Value: 7}
	wrapped := Expr(inner)
	for i := 0; i < 3; i++ {
		wrapped = &ParenExpression{Expr: wrapped}
	}
	if got := Unparen(wrapped); got != Expr(inner) {
		t.Fatalf("Unparen returned %T, want the inner literal", got)
	}
	if got := Unparen(inner); got != Expr(inner) {
		t.Fatalf("Unparen of a non-grouping node returned %T", got)
	}
}

func TestEqualIgnoresPositionsAndGrouping(t *testing.T) {
	a := &BinaryExpression{
		Operator: token.Plus,
		Left:     &IntegerLiteral{Idx: 0, Value: 1},
		Right:    &IntegerLiteral{Idx: 4, Value: 2},
	}
	b := &ParenExpression{Expr: &BinaryExpression{
		Operator: token.Plus,
		Left:     &IntegerLiteral{Idx: 10, Value: 1},
		Right:    &ParenExpression{Expr: &IntegerLiteral{Idx: 99, Value: 2}},
	}}
	if !Equal(a, b) {
		t.Errorf("Equal = false; want true for trees differing only in positions and grouping")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Expr
		want bool
	}{
		{
			name: "null vs null",
			a:    &NullLiteral{},
			b:    &NullLiteral{},
			want: true,
		},
		{
			name: "integer vs float of same magnitude",
			a:    &IntegerLiteral{Value: 1},
			b:    &FloatLiteral{Value: 1},
			want: false,
		},
		{
			name: "differing binary operators",
			a:    &BinaryExpression{Operator: token.Plus, Left: &IntegerLiteral{Value: 1}, Right: &IntegerLiteral{Value: 2}},
			b:    &BinaryExpression{Operator: token.Minus, Left: &IntegerLiteral{Value: 1}, Right: &IntegerLiteral{Value: 2}},
			want: false,
		},
		{
			name: "lists element order matters",
			a:    &ListLiteral{Value: []Expr{&IntegerLiteral{Value: 1}, &IntegerLiteral{Value: 2}}},
			b:    &ListLiteral{Value: []Expr{&IntegerLiteral{Value: 2}, &IntegerLiteral{Value: 1}}},
			want: false,
		},
		{
			name: "map entry order matters",
			a: &MapLiteral{Entries: []MapEntry{
				{Key: "a", Value: &IntegerLiteral{Value: 1}},
				{Key: "b", Value: &IntegerLiteral{Value: 2}},
			}},
			b: &MapLiteral{Entries: []MapEntry{
				{Key: "b", Value: &IntegerLiteral{Value: 2}},
				{Key: "a", Value: &IntegerLiteral{Value: 1}},
			}},
			want: false,
		},
		{
			name: "identical maps",
			a: &MapLiteral{Entries: []MapEntry{
				{Key: "a", Value: &StringLiteral{Value: "x"}},
			}},
			b: &MapLiteral{Entries: []MapEntry{
				{Key: "a", Value: &StringLiteral{Value: "x"}},
			}},
			want: true,
		},
		{
			name: "unary operand compared recursively",
			a:    &UnaryExpression{Operator: token.Minus, Operand: &IntegerLiteral{Value: 3}},
			b:    &UnaryExpression{Operator: token.Minus, Operand: &ParenExpression{Expr: &IntegerLiteral{Value: 3}}},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v; want %v", got, tt.want)
			}
		})
	}
}
