package parser

import (
	"fmt"
	"strings"
)

// ErrorKind distinguishes the stage that produced an Error.
type ErrorKind int

const (
	// LexError reports an invalid lexeme: a bad escape, an unterminated
	// string, or a malformed number.
	LexError ErrorKind = iota
	// ParseError reports an unexpected or missing token.
	ParseError
)

func (k ErrorKind) String() string {
	if k == LexError {
		return "lexical error"
	}
	return "syntax error"
}

// Error describes a lexical or syntactic failure at one source position.
// The first error aborts the parse; no partial syntax tree is produced.
type Error struct {
	Kind     ErrorKind
	Offset   int      // byte offset into the source
	Line     int      // 1-based line number
	Column   int      // 1-based column number
	LineText string   // content of the offending source line
	Expected []string // tokens or constructs that would have been valid here
	Found    string   // what was found instead, if known
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Message)
}

// position resolves a byte offset to a 1-based line and column plus the
// content of the surrounding line.
func position(src string, offset int) (line, column int, lineText string) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(src)
	for i := lineStart; i < len(src); i++ {
		if src[i] == '\n' {
			lineEnd = i
			break
		}
	}
	return line, offset - lineStart + 1, src[lineStart:lineEnd]
}

func (p *parser) errorf(kind ErrorKind, offset int, format string, args ...any) {
	if p.err != nil {
		return
	}
	line, column, lineText := position(p.str, offset)
	p.err = &Error{
		Kind:     kind,
		Offset:   offset,
		Line:     line,
		Column:   column,
		LineText: lineText,
		Message:  fmt.Sprintf(format, args...),
	}
}

// errorExpected records a ParseError naming the constructs that would have
// been valid at offset and the token actually found there.
func (p *parser) errorExpected(offset int, expected ...string) {
	if p.err != nil {
		return
	}
	found := p.tokenText()
	line, column, lineText := position(p.str, offset)
	p.err = &Error{
		Kind:     ParseError,
		Offset:   offset,
		Line:     line,
		Column:   column,
		LineText: lineText,
		Expected: expected,
		Found:    found,
		Message:  fmt.Sprintf("expected %s, found %s", joinExpected(expected), found),
	}
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}
