package lexer

import (
	"fmt"

	"github.com/kolkov/perflang/internal/token"
)

// LexError represents a malformed comment, string, or numeric literal, or a
// byte that starts no token. The first LexError aborts the digest.
type LexError struct {
	Pos     token.Position // Position where the offending construct starts
	Message string         // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *LexError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func errorf(pos token.Position, format string, args ...any) *LexError {
	return &LexError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
