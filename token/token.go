package token

import (
	"strconv"
)

// Token is the set of lexical tokens in RESL.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the left binding power of a binary operator token.
// Higher values bind tighter; zero means the token is not a binary operator.
func (t Token) Precedence() int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Equal, NotEqual:
		return 3
	case Less, LessOrEqual, Greater, GreaterOrEqual:
		return 4
	case Plus, Minus:
		return 5
	case Multiply, Slash, Remainder:
		return 6
	}
	return 0
}

// LiteralKeyword returns the keyword token if literal is a keyword, or 0 otherwise.
func LiteralKeyword(literal string) (Token, bool) {
	t, exists := keywordTable[literal]
	return t, exists
}
