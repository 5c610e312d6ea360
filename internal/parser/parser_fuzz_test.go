package parser_test

import (
	"errors"
	"testing"

	"github.com/kolkov/perflang/internal/ast"
	"github.com/kolkov/perflang/internal/lexer"
	"github.com/kolkov/perflang/internal/parser"
)

// FuzzParser tests the parser with random inputs to find crashes
// and ownership leaks.
func FuzzParser(f *testing.F) {
	seeds := []string{
		// Empty and minimal
		"",
		"x",
		"1;",

		// Expressions
		"1 + 2 * 3",
		"(a == b) != (c <= d)",
		"!-x / 4 - 2",
		`"s" == "t"`,
		"true != false",

		// Errors
		"(",
		"(1 + 2",
		"1 +",
		"func f",
		"()",
		"a; (b",
		"while",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		tokens, err := lexer.Tokenize(src)
		if err != nil {
			return
		}

		arena := ast.NewArena()
		p := parser.New(arena)
		nodes, err := p.Digest(tokens)
		if err != nil {
			var perr *parser.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("unexpected error type %T", err)
			}
			if nodes != nil {
				t.Fatalf("failed digest returned %d nodes", len(nodes))
			}
			if arena.Live() != 0 {
				t.Fatalf("failed digest leaked %d nodes", arena.Live())
			}
			return
		}

		total := 0
		for _, n := range nodes {
			if _, ok := n.(*ast.ExprStmt); !ok {
				t.Fatalf("top-level node is %T", n)
			}
			total += ast.Count(n)
		}
		if total != arena.Live() {
			t.Fatalf("tree has %d nodes, arena reports %d live", total, arena.Live())
		}

		arena.ReleaseAll(nodes)
		if arena.Live() != 0 {
			t.Fatalf("release left %d live nodes", arena.Live())
		}
	})
}
