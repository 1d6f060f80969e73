// Package resl implements RESL, a small textual expression/data language:
// source text is lexed, parsed, optionally evaluated, and rendered back to
// canonical text.
//
// The three public operations are pure and synchronous. They retain no state
// between calls and share no mutable state, so they are safe to call from
// multiple goroutines, provided each call's inputs and outputs stay with
// that caller. A returned Value tree is owned exclusively by the caller and
// must be released exactly once with (*value.Value).Release; the library
// never frees a tree it has handed out and never keeps a reference to one.
//
// Errors are typed: *parser.Error for lexical and syntactic failures,
// *evaluator.Error for evaluation failures. A failed operation returns no
// result at all, never a partial tree or truncated text.
package resl

import (
	"github.com/decipher3114/go-resl/evaluator"
	"github.com/decipher3114/go-resl/generator"
	"github.com/decipher3114/go-resl/parser"
	"github.com/decipher3114/go-resl/value"
)

// Format parses source and renders the canonical form of its syntax tree
// without evaluating it.
func Format(source string, pretty bool) (string, error) {
	expr, err := parser.Parse(source)
	if err != nil {
		return "", err
	}
	return generator.Generate(expr, pretty), nil
}

// Evaluate parses and evaluates source, returning an owned Value tree.
func Evaluate(source string) (*value.Value, error) {
	expr, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return evaluator.Evaluate(expr)
}

// EvaluateAndFormat parses and evaluates source, then renders the resulting
// value. The intermediate tree is released internally.
func EvaluateAndFormat(source string, pretty bool) (string, error) {
	val, err := Evaluate(source)
	if err != nil {
		return "", err
	}
	defer val.Release()
	return generator.GenerateValue(val, pretty), nil
}
