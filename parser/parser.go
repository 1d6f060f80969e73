package parser

import (
	"errors"
	"strconv"

	"github.com/decipher3114/go-resl/ast"
	"github.com/decipher3114/go-resl/token"
)

// parser holds the scanning and parsing state for one source string.
// A parser is used for exactly one parse pass; tokens are not persisted.
type parser struct {
	str    string
	length int

	chr       rune // current character, -1 at end of input
	chrOffset int  // offset of current character
	offset    int  // offset of next character

	token        token.Token
	literal      string // raw text of the current token, if any
	parsedString string // decoded value of a string token
	idx          ast.Idx

	eof bool // Eof token already produced

	err *Error
}

func newParser(src string) *parser {
	p := &parser{
		str:    src,
		length: len(src),
	}
	p.read()
	return p
}

// Parse parses the source text of a single RESL expression and returns the
// corresponding ast.Expr. The first lexical or syntactic error aborts the
// parse and is returned as a *Error; no partial tree is produced.
func Parse(src string) (ast.Expr, error) {
	return newParser(src).parse()
}

func (p *parser) parse() (ast.Expr, error) {
	p.next()
	expr := p.parseExpression(1)
	if p.err == nil && p.token != token.Eof {
		p.errorExpected(int(p.idx), "end of input")
	}
	if p.err != nil {
		return nil, p.err
	}
	return expr, nil
}

func (p *parser) next() {
	p.token, p.literal, p.parsedString, p.idx = p.scan()
}

// tokenText describes the current token for error messages.
func (p *parser) tokenText() string {
	switch p.token {
	case token.Eof:
		return "end of input"
	case token.Identifier:
		return "identifier " + strconv.Quote(p.literal)
	case token.Integer, token.Float:
		return "number " + p.literal
	case token.String:
		return "string " + strconv.Quote(p.parsedString)
	case token.Boolean:
		return p.literal
	}
	return "'" + p.token.String() + "'"
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.idx
	if p.token != value {
		p.errorExpected(int(idx), "'"+value.String()+"'")
		return idx
	}
	p.next()
	return idx
}

// parseExpression parses binary expressions by precedence climbing. Every
// RESL operator is left-associative, so the recursive call raises the
// minimum binding power by one.
func (p *parser) parseExpression(minPrecedence int) ast.Expr {
	left := p.parseUnaryExpression()
	for left != nil {
		precedence := p.token.Precedence()
		if precedence < minPrecedence || precedence == 0 {
			break
		}
		operator := p.token
		p.next()
		right := p.parseExpression(precedence + 1)
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpression{Operator: operator, Left: left, Right: right}
	}
	return left
}

// parseUnaryExpression parses at most one prefix operator; its operand must
// be a primary expression, so chained prefixes require parentheses.
func (p *parser) parseUnaryExpression() ast.Expr {
	if p.token == token.Minus || p.token == token.Not {
		operator, idx := p.token, p.idx
		p.next()
		operand := p.parsePrimaryExpression()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpression{Operator: operator, Idx: idx, Operand: operand}
	}
	return p.parsePrimaryExpression()
}

func (p *parser) parsePrimaryExpression() ast.Expr {
	idx := p.idx
	switch p.token {
	case token.Null:
		p.next()
		return &ast.NullLiteral{Idx: idx}
	case token.Boolean:
		value := p.literal == "true"
		p.next()
		return &ast.BooleanLiteral{Idx: idx, Value: value}
	case token.Integer:
		value, err := strconv.ParseInt(p.literal, 10, 64)
		if err != nil {
			p.errorf(ParseError, int(idx), "integer literal out of range: %s", p.literal)
			return nil
		}
		p.next()
		return &ast.IntegerLiteral{Idx: idx, Value: value}
	case token.Float:
		// Overflowing magnitudes saturate to infinity, as IEEE754 dictates.
		value, err := strconv.ParseFloat(p.literal, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			p.errorf(ParseError, int(idx), "malformed float literal: %s", p.literal)
			return nil
		}
		p.next()
		return &ast.FloatLiteral{Idx: idx, Value: value}
	case token.String:
		value := p.parsedString
		p.next()
		return &ast.StringLiteral{Idx: idx, Value: value}
	case token.LeftBracket:
		return p.parseListLiteral()
	case token.LeftBrace:
		return p.parseMapLiteral()
	case token.LeftParenthesis:
		p.next()
		expr := p.parseExpression(1)
		if expr == nil {
			return nil
		}
		end := p.expect(token.RightParenthesis)
		if p.err != nil {
			return nil
		}
		return &ast.ParenExpression{LeftParenthesis: idx, RightParenthesis: end, Expr: expr}
	case token.Illegal:
		return nil
	}
	p.errorExpected(int(idx), "an expression")
	return nil
}

// parseListLiteral parses '[' (expr (',' expr)* ','?)? ']'.
func (p *parser) parseListLiteral() ast.Expr {
	left := p.idx
	p.next()
	var elements []ast.Expr
	for p.token != token.RightBracket && p.token != token.Eof && p.err == nil {
		element := p.parseExpression(1)
		if element == nil {
			return nil
		}
		elements = append(elements, element)
		if p.token != token.Comma {
			break
		}
		p.next()
	}
	right := p.expect(token.RightBracket)
	if p.err != nil {
		return nil
	}
	return &ast.ListLiteral{LeftBracket: left, RightBracket: right, Value: elements}
}

// parseMapLiteral parses '{' (entry (',' entry)* ','?)? '}' where an entry is
// a string or bare identifier key, a colon, and a value expression.
func (p *parser) parseMapLiteral() ast.Expr {
	left := p.idx
	p.next()
	var entries []ast.MapEntry
	for p.token != token.RightBrace && p.token != token.Eof && p.err == nil {
		entry, ok := p.parseMapEntry()
		if !ok {
			return nil
		}
		entries = append(entries, entry)
		if p.token != token.Comma {
			break
		}
		p.next()
	}
	right := p.expect(token.RightBrace)
	if p.err != nil {
		return nil
	}
	return &ast.MapLiteral{LeftBrace: left, RightBrace: right, Entries: entries}
}

func (p *parser) parseMapEntry() (ast.MapEntry, bool) {
	entry := ast.MapEntry{KeyIdx: p.idx}
	switch p.token {
	case token.String:
		entry.Key = p.parsedString
	case token.Identifier:
		// A bare identifier key is sugar for a string key of the same
		// spelling; no resolution happens.
		entry.Key = p.literal
	default:
		p.errorExpected(int(p.idx), "a string key", "an identifier key")
		return entry, false
	}
	p.next()
	p.expect(token.Colon)
	if p.err != nil {
		return entry, false
	}
	entry.Value = p.parseExpression(1)
	return entry, entry.Value != nil
}
