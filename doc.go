// Package perflang provides the front end of the perf scripting language:
// a lexer that turns source text into tokens and a recursive descent parser
// that turns tokens into expression trees.
//
// # Quick Start
//
// Tokenize source:
//
//	tokens, err := perflang.Tokenize(`x + 0x1F`)
//	fmt.Println(perflang.TokenNames(tokens))
//	// [TOKEN_IDENTIFIER TOKEN_PLUS TOKEN_INTEGER TOKEN_EOF]
//
// Parse source into statements:
//
//	res, err := perflang.Parse(`1 + 2 * 3`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer res.Release()
//
// # Ownership
//
// Leaves of the tree point into [Result.Tokens], so the token array must
// outlive the nodes. Nodes are tracked by an arena; [Result.Release] frees
// them and [Result.Live] reports how many remain. A failed parse leaves no
// live nodes.
//
// # Configuration
//
// The [Config] type selects what [Exec] prints and how:
//   - Mode: the token stream or the syntax tree
//   - Format: text, table or yaml
//   - Filter: a regular expression over token names
//
// [LoadConfig] reads a Config from a TOML or YAML file.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [LexError]: malformed tokens in the source
//   - [ParseError]: syntax errors in the token stream
//
// Lines are 1-based and columns 0-based in both.
//
// # Thread Safety
//
// Every call creates its own lexer and parser, so the functions of this
// package are safe for concurrent use. A [Result] is not.
package perflang
