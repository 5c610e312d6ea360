// Package token defines lexical tokens for the perf language.
package token

import "fmt"

// Type represents a lexical token type.
type Type uint8

const (
	ILLEGAL Type = iota // <illegal>

	// Operators and delimiters
	operatorStart
	LPAREN        // (
	RPAREN        // )
	LBRACE        // {
	RBRACE        // }
	COMMA         // ,
	PERIOD        // .
	SEMICOLON     // ;
	COLON         // :
	MINUS         // -
	PLUS          // +
	SLASH         // /
	ASTERISK      // *
	PERCENT       // %
	AMPERSAND     // &
	EXCLAIM       // !
	EXCLAIM_EQUAL // !=
	EQUAL         // =
	EQUAL_EQUAL   // ==
	GREATER       // >
	GREATER_EQUAL // >=
	LESS          // <
	LESS_EQUAL    // <=
	operatorEnd

	// Literals
	IDENTIFIER // identifier
	STRING     // string
	NUMBER     // number
	INTEGER    // integer

	// Keywords
	keywordStart
	FUNC     // func
	VAR      // var
	LET      // let
	CONST    // const
	IF       // if
	ELSE     // else
	FOR      // for
	WHILE    // while
	TRUE     // true
	FALSE    // false
	RETURN   // return
	DO       // do
	CLASS    // class
	CONTINUE // continue
	BREAK    // break
	keywordEnd

	EOF // EOF
)

// names holds the canonical TOKEN_* name of every type. It is indexed by Type
// and never modified.
var names = [...]string{
	ILLEGAL:       "TOKEN_ILLEGAL",
	LPAREN:        "TOKEN_LEFT_PARENTHESES",
	RPAREN:        "TOKEN_RIGHT_PARENTHESES",
	LBRACE:        "TOKEN_LEFT_BRACE",
	RBRACE:        "TOKEN_RIGHT_BRACE",
	COMMA:         "TOKEN_COMMA",
	PERIOD:        "TOKEN_PERIOD",
	SEMICOLON:     "TOKEN_SEMICOLON",
	COLON:         "TOKEN_COLON",
	MINUS:         "TOKEN_MINUS",
	PLUS:          "TOKEN_PLUS",
	SLASH:         "TOKEN_SLASH",
	ASTERISK:      "TOKEN_ASTERISK",
	PERCENT:       "TOKEN_PERCENT",
	AMPERSAND:     "TOKEN_AMPERSAND",
	EXCLAIM:       "TOKEN_EXCLAIM",
	EXCLAIM_EQUAL: "TOKEN_EXCLAIM_EQUAL",
	EQUAL:         "TOKEN_EQUAL",
	EQUAL_EQUAL:   "TOKEN_EQUAL_EQUAL",
	GREATER:       "TOKEN_GREATER",
	GREATER_EQUAL: "TOKEN_GREATER_EQUAL",
	LESS:          "TOKEN_LESS",
	LESS_EQUAL:    "TOKEN_LESS_EQUAL",
	IDENTIFIER:    "TOKEN_IDENTIFIER",
	STRING:        "TOKEN_STRING",
	NUMBER:        "TOKEN_NUMBER",
	INTEGER:       "TOKEN_INTEGER",
	FUNC:          "TOKEN_KEYWORD_FUNC",
	VAR:           "TOKEN_KEYWORD_VAR",
	LET:           "TOKEN_KEYWORD_LET",
	CONST:         "TOKEN_KEYWORD_CONST",
	IF:            "TOKEN_KEYWORD_IF",
	ELSE:          "TOKEN_KEYWORD_ELSE",
	FOR:           "TOKEN_KEYWORD_FOR",
	WHILE:         "TOKEN_KEYWORD_WHILE",
	TRUE:          "TOKEN_KEYWORD_TRUE",
	FALSE:         "TOKEN_KEYWORD_FALSE",
	RETURN:        "TOKEN_KEYWORD_RETURN",
	DO:            "TOKEN_KEYWORD_DO",
	CLASS:         "TOKEN_KEYWORD_CLASS",
	CONTINUE:      "TOKEN_KEYWORD_CONTINUE",
	BREAK:         "TOKEN_KEYWORD_BREAK",
	EOF:           "TOKEN_EOF",
}

// spellings maps operator and keyword types to their source text.
var spellings = map[Type]string{
	LPAREN:        "(",
	RPAREN:        ")",
	LBRACE:        "{",
	RBRACE:        "}",
	COMMA:         ",",
	PERIOD:        ".",
	SEMICOLON:     ";",
	COLON:         ":",
	MINUS:         "-",
	PLUS:          "+",
	SLASH:         "/",
	ASTERISK:      "*",
	PERCENT:       "%",
	AMPERSAND:     "&",
	EXCLAIM:       "!",
	EXCLAIM_EQUAL: "!=",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Type{
	"func":     FUNC,
	"var":      VAR,
	"let":      LET,
	"const":    CONST,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"true":     TRUE,
	"false":    FALSE,
	"return":   RETURN,
	"do":       DO,
	"class":    CLASS,
	"continue": CONTINUE,
	"break":    BREAK,
}

func init() {
	for word, t := range keywords {
		spellings[t] = word
	}
}

// Name returns the canonical TOKEN_* name of the type, as printed by the
// driver's token listing.
func (t Type) Name() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return fmt.Sprintf("TOKEN_%d", t)
}

// String returns the source spelling for operators and keywords and a
// lower-case description for everything else.
func (t Type) String() string {
	if s, ok := spellings[t]; ok {
		return s
	}
	switch t {
	case IDENTIFIER:
		return "identifier"
	case STRING:
		return "string"
	case NUMBER:
		return "number"
	case INTEGER:
		return "integer"
	case EOF:
		return "end of file"
	case ILLEGAL:
		return "illegal"
	default:
		return fmt.Sprintf("token(%d)", t)
	}
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Type) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Type) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token is a literal (identifier, string, number, integer).
func (t Type) IsLiteral() bool {
	return t == IDENTIFIER || t == STRING || t == NUMBER || t == INTEGER
}

// Lookup returns the keyword type for ident, or IDENTIFIER if ident is not a keyword.
// The whole text must match: "returnValue" is an identifier.
func Lookup(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENTIFIER
}

// Types returns every valid token type in declaration order.
func Types() []Type {
	var out []Type
	for t := range names {
		if names[t] != "" && Type(t) != ILLEGAL {
			out = append(out, Type(t))
		}
	}
	return out
}

// Token is a scanned token with its position and value.
//
// Exactly one value field is meaningful, selected by Type: Text for
// IDENTIFIER and STRING, Int for INTEGER, Float for NUMBER.
type Token struct {
	Type Type
	Pos  Position
	Raw  string // exact source text, quotes and separators included

	Text  string
	Int   uint64
	Float float64
}

// End returns the position immediately after the token's source text.
func (t *Token) End() Position {
	end := t.Pos
	end.Offset += len(t.Raw)
	for i := 0; i < len(t.Raw); i++ {
		if t.Raw[i] == '\n' {
			end.Line++
			end.Column = 0
		} else {
			end.Column++
		}
	}
	return end
}

// Value returns the token's value as an interface, or nil for tokens that
// carry none.
func (t *Token) Value() any {
	switch t.Type {
	case IDENTIFIER, STRING:
		return t.Text
	case INTEGER:
		return t.Int
	case NUMBER:
		return t.Float
	default:
		return nil
	}
}

// String returns a short description used in diagnostics.
func (t *Token) String() string {
	switch t.Type {
	case IDENTIFIER:
		return t.Text
	case STRING:
		return fmt.Sprintf("%q", t.Text)
	case INTEGER, NUMBER:
		return t.Raw
	default:
		return t.Type.String()
	}
}
