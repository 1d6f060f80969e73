package parser

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/decipher3114/go-resl/ast"
	"github.com/decipher3114/go-resl/token"
)

func digitValue(chr rune) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

func isDecimalDigit(chr rune) bool {
	return '0' <= chr && chr <= '9'
}

func isIdentifierStart(chr rune) bool {
	return chr == '_' || 'a' <= chr && chr <= 'z' || 'A' <= chr && chr <= 'Z'
}

func isIdentifierPart(chr rune) bool {
	return isIdentifierStart(chr) || isDecimalDigit(chr)
}

// read advances the character cursor by one rune.
func (p *parser) read() {
	if p.offset < p.length {
		p.chrOffset = p.offset
		chr, width := rune(p.str[p.offset]), 1
		if chr >= utf8.RuneSelf {
			chr, width = utf8.DecodeRuneInString(p.str[p.offset:])
		}
		p.offset += width
		p.chr = chr
	} else {
		p.chrOffset = p.length
		p.chr = -1 // EOF
	}
}

// scan produces the next token. Whitespace and line comments are skipped and
// never emitted; end of input yields token.Eof exactly once, and scanning
// past it is an error.
func (p *parser) scan() (tkn token.Token, literal, parsed string, idx ast.Idx) {
	for {
		switch p.chr {
		case ' ', '\t', '\r', '\n':
			p.read()
			continue
		}

		idx = ast.Idx(p.chrOffset)

		switch chr := p.chr; {
		case isIdentifierStart(chr):
			literal = p.scanIdentifier()
			if keyword, ok := token.LiteralKeyword(literal); ok {
				return keyword, literal, "", idx
			}
			return token.Identifier, literal, "", idx
		case isDecimalDigit(chr):
			tkn, literal = p.scanNumber()
			return tkn, literal, "", idx
		default:
			p.read()
			switch chr {
			case -1:
				if p.eof {
					p.errorf(LexError, int(idx), "token requested past end of input")
					return token.Illegal, "", "", idx
				}
				p.eof = true
				return token.Eof, "", "", idx
			case '"':
				parsed = p.scanString(int(idx))
				if p.err != nil {
					return token.Illegal, "", "", idx
				}
				return token.String, "", parsed, idx
			case '+':
				return token.Plus, "", "", idx
			case '-':
				return token.Minus, "", "", idx
			case '*':
				return token.Multiply, "", "", idx
			case '/':
				if p.chr == '/' {
					p.skipLineComment()
					continue
				}
				return token.Slash, "", "", idx
			case '%':
				return token.Remainder, "", "", idx
			case '(':
				return token.LeftParenthesis, "", "", idx
			case ')':
				return token.RightParenthesis, "", "", idx
			case '[':
				return token.LeftBracket, "", "", idx
			case ']':
				return token.RightBracket, "", "", idx
			case '{':
				return token.LeftBrace, "", "", idx
			case '}':
				return token.RightBrace, "", "", idx
			case ':':
				return token.Colon, "", "", idx
			case ',':
				return token.Comma, "", "", idx
			case '=':
				if p.chr == '=' {
					p.read()
					return token.Equal, "", "", idx
				}
				p.errorf(LexError, int(idx), "unexpected character '='")
				return token.Illegal, "", "", idx
			case '!':
				if p.chr == '=' {
					p.read()
					return token.NotEqual, "", "", idx
				}
				return token.Not, "", "", idx
			case '<':
				if p.chr == '=' {
					p.read()
					return token.LessOrEqual, "", "", idx
				}
				return token.Less, "", "", idx
			case '>':
				if p.chr == '=' {
					p.read()
					return token.GreaterOrEqual, "", "", idx
				}
				return token.Greater, "", "", idx
			case '&':
				if p.chr == '&' {
					p.read()
					return token.LogicalAnd, "", "", idx
				}
				p.errorf(LexError, int(idx), "unexpected character '&'")
				return token.Illegal, "", "", idx
			case '|':
				if p.chr == '|' {
					p.read()
					return token.LogicalOr, "", "", idx
				}
				p.errorf(LexError, int(idx), "unexpected character '|'")
				return token.Illegal, "", "", idx
			default:
				p.errorf(LexError, int(idx), "unexpected character %q", chr)
				return token.Illegal, "", "", idx
			}
		}
	}
}

func (p *parser) skipLineComment() {
	for p.chr != '\n' && p.chr >= 0 {
		p.read()
	}
}

func (p *parser) scanIdentifier() string {
	offset := p.chrOffset
	for isIdentifierPart(p.chr) {
		p.read()
	}
	return p.str[offset:p.chrOffset]
}

// scanNumber captures the digit text of a numeric literal by longest match.
// A literal containing '.' or an exponent marker is a Float; otherwise an
// Integer. Magnitude is not parsed here.
func (p *parser) scanNumber() (token.Token, string) {
	offset := p.chrOffset
	tkn := token.Integer

	for isDecimalDigit(p.chr) {
		p.read()
	}
	if p.chr == '.' {
		tkn = token.Float
		p.read()
		if !isDecimalDigit(p.chr) {
			p.errorf(LexError, p.chrOffset, "malformed number: expected digit after '.'")
			return token.Illegal, ""
		}
		for isDecimalDigit(p.chr) {
			p.read()
		}
	}
	if p.chr == 'e' || p.chr == 'E' {
		tkn = token.Float
		p.read()
		if p.chr == '+' || p.chr == '-' {
			p.read()
		}
		if !isDecimalDigit(p.chr) {
			p.errorf(LexError, p.chrOffset, "malformed number: expected exponent digits")
			return token.Illegal, ""
		}
		for isDecimalDigit(p.chr) {
			p.read()
		}
	}
	if isIdentifierStart(p.chr) {
		p.errorf(LexError, p.chrOffset, "malformed number: unexpected character %q", p.chr)
		return token.Illegal, ""
	}
	return tkn, p.str[offset:p.chrOffset]
}

// scanString decodes a string literal. The opening quote has already been
// consumed; idx is its byte offset.
func (p *parser) scanString(idx int) string {
	var b strings.Builder
	for {
		chr := p.chr
		if chr < 0 || chr == '\n' {
			p.errorf(LexError, idx, "unterminated string literal")
			return ""
		}
		p.read()
		if chr == '"' {
			return b.String()
		}
		if chr != '\\' {
			b.WriteRune(chr)
			continue
		}

		escOffset := p.chrOffset
		esc := p.chr
		if esc < 0 {
			p.errorf(LexError, idx, "unterminated string literal")
			return ""
		}
		p.read()
		switch esc {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'u':
			r := p.scanHexEscape(escOffset)
			if p.err != nil {
				return ""
			}
			if utf16.IsSurrogate(r) && p.chr == '\\' && p.offset < p.length && p.str[p.offset] == 'u' {
				p.read() // backslash
				p.read() // u
				r2 := p.scanHexEscape(p.chrOffset)
				if p.err != nil {
					return ""
				}
				if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
					b.WriteRune(combined)
					break
				}
				b.WriteRune(r)
				b.WriteRune(r2)
				break
			}
			b.WriteRune(r)
		default:
			p.errorf(LexError, escOffset, "invalid escape sequence '\\%c'", esc)
			return ""
		}
	}
}

// scanHexEscape reads the four hex digits of a \uXXXX escape.
func (p *parser) scanHexEscape(offset int) rune {
	var value rune
	for i := 0; i < 4; i++ {
		digit := digitValue(p.chr)
		if digit >= 16 {
			p.errorf(LexError, offset, "invalid unicode escape sequence")
			return utf8.RuneError
		}
		value = value*16 + rune(digit)
		p.read()
	}
	return value
}
