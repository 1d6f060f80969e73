package token

const (
	Undetermined Token = iota

	Illegal
	Eof

	String
	Integer
	Float

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	LogicalAnd // &&
	LogicalOr  // ||

	Equal          // ==
	NotEqual       // !=
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=

	Not // !

	LeftParenthesis  // (
	RightParenthesis // )
	LeftBracket      // [
	RightBracket     // ]
	LeftBrace        // {
	RightBrace       // }
	Colon            // :
	Comma            // ,

	Identifier
	Boolean
	Null
)

var token2string = [...]string{
	Undetermined:     "UNKNOWN",
	Illegal:          "ILLEGAL",
	Eof:              "EOF",
	String:           "STRING",
	Integer:          "INTEGER",
	Float:            "FLOAT",
	Plus:             "+",
	Minus:            "-",
	Multiply:         "*",
	Slash:            "/",
	Remainder:        "%",
	LogicalAnd:       "&&",
	LogicalOr:        "||",
	Equal:            "==",
	NotEqual:         "!=",
	Less:             "<",
	Greater:          ">",
	LessOrEqual:      "<=",
	GreaterOrEqual:   ">=",
	Not:              "!",
	LeftParenthesis:  "(",
	RightParenthesis: ")",
	LeftBracket:      "[",
	RightBracket:     "]",
	LeftBrace:        "{",
	RightBrace:       "}",
	Colon:            ":",
	Comma:            ",",
	Identifier:       "IDENTIFIER",
	Boolean:          "BOOLEAN",
	Null:             "null",
}

var keywordTable = map[string]Token{
	"true":  Boolean,
	"false": Boolean,
	"null":  Null,
}
