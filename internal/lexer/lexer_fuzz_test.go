// Package lexer provides perf source code tokenization.
package lexer

import (
	"testing"

	"github.com/kolkov/perflang/internal/token"
)

// FuzzLexer tests that the lexer handles arbitrary input without panicking
// and that successful digests produce well-formed token arrays.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		// Expressions
		`1 + 2 * 3`,
		`!-x`,
		`(a == b) != (c <= d)`,

		// Numbers
		`0x1A 0b101 0o17 1_000 3.14`,
		`0x 0b2 1. 1._ 0z`,

		// Strings and comments
		`"hello" "esc\"aped"`,
		`// line` + "\n" + `/* block */`,

		// Edge cases
		``,
		`"unterminated`,
		`/* unterminated`,
		"\x00",
		`@#$`,
		`"привет"`,
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		toks, err := Tokenize(src)
		if err != nil {
			if _, ok := err.(*LexError); !ok {
				t.Fatalf("unexpected error type %T", err)
			}
			return
		}

		if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
			t.Fatalf("digest must end with EOF")
		}

		prev := -1
		for i, tok := range toks {
			if tok.Pos.Line < 1 || tok.Pos.Column < 0 {
				t.Errorf("token[%d]: invalid position %v", i, tok.Pos)
			}
			if tok.Pos.Offset <= prev && tok.Type != token.EOF {
				t.Errorf("token[%d]: offsets not increasing", i)
			}
			if end := tok.Pos.Offset + len(tok.Raw); end > len(src) || src[tok.Pos.Offset:end] != tok.Raw {
				t.Errorf("token[%d]: Raw does not match source", i)
			}
			prev = tok.Pos.Offset
		}
	})
}
