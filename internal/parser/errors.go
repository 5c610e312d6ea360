// Package parser provides a recursive descent parser for perf expressions.
package parser

import (
	"fmt"

	"github.com/kolkov/perflang/internal/token"
)

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and includes the offending token.
type ParseError struct {
	Token   *token.Token // Token where the error occurred
	Message string       // Human-readable error message
	Got     string       // Token that was found (optional)
	Want    string       // Token that was expected (optional)
}

// Pos returns the position of the offending token, or token.NoPos.
func (e *ParseError) Pos() token.Position {
	if e.Token == nil {
		return token.NoPos
	}
	return e.Token.Pos
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if pos := e.Pos(); pos.IsValid() {
		return fmt.Sprintf("%s: %s", pos, e.Message)
	}
	return e.Message
}

// Unwrap returns nil as ParseError doesn't wrap other errors.
func (e *ParseError) Unwrap() error {
	return nil
}

// errorf creates a ParseError at tok with formatted message.
func errorf(tok *token.Token, format string, args ...any) *ParseError {
	return &ParseError{
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
		Got:     describe(tok),
	}
}

// expectedError creates a ParseError for a missing token.
func expectedError(tok *token.Token, want token.Type, msg string) *ParseError {
	return &ParseError{
		Token:   tok,
		Message: msg,
		Want:    want.String(),
		Got:     describe(tok),
	}
}

// describe returns a description of tok for error details.
func describe(tok *token.Token) string {
	if tok == nil {
		return ""
	}
	switch tok.Type {
	case token.IDENTIFIER, token.NUMBER, token.INTEGER:
		return tok.Raw
	case token.STRING:
		return "string " + tok.Raw
	default:
		return tok.Type.String()
	}
}
