package perflang

import (
	"errors"
	"fmt"

	"github.com/kolkov/perflang/internal/lexer"
	"github.com/kolkov/perflang/internal/parser"
)

// LexError represents a lexical error in perf source code.
type LexError struct {
	Line    int    // 1-based line number
	Column  int    // 0-based column number
	Message string // Error description

	cause error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// Unwrap returns the underlying lexer error.
func (e *LexError) Unwrap() error { return e.cause }

// ParseError represents a syntax error in perf source code.
type ParseError struct {
	Line    int    // 1-based line number
	Column  int    // 0-based column number
	Token   string // Name of the offending token, e.g. TOKEN_EOF
	Message string // Error description

	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error { return e.cause }

// publicError converts internal lexer and parser errors to the public types.
// Other errors are returned unchanged.
func publicError(err error) error {
	var le *lexer.LexError
	if errors.As(err, &le) {
		return &LexError{
			Line:    le.Pos.Line,
			Column:  le.Pos.Column,
			Message: le.Message,
			cause:   le,
		}
	}

	var pe *parser.ParseError
	if errors.As(err, &pe) {
		out := &ParseError{
			Line:    pe.Pos().Line,
			Column:  pe.Pos().Column,
			Message: pe.Message,
			cause:   pe,
		}
		if pe.Token != nil {
			out.Token = pe.Token.Type.Name()
		}
		return out
	}
	return err
}
