package perflang

import (
	"io"

	"github.com/kolkov/perflang/internal/ast"
	"github.com/kolkov/perflang/internal/filter"
	"github.com/kolkov/perflang/internal/lexer"
	"github.com/kolkov/perflang/internal/parser"
	"github.com/kolkov/perflang/internal/render"
	"github.com/kolkov/perflang/internal/token"
)

// Version is the perflang version string.
const Version = "0.1.0"

// Result holds a parsed program: the token array and the top-level
// statements whose leaves point into it.
type Result struct {
	Tokens []token.Token
	Nodes  []ast.Node

	arena *ast.Arena
}

// Live returns the number of nodes of the result that are still allocated.
func (r *Result) Live() int { return r.arena.Live() }

// Release releases every node of the result. The tokens stay valid.
func (r *Result) Release() {
	r.arena.ReleaseAll(r.Nodes)
	r.Nodes = nil
}

// Tokenize splits src into tokens, ending with an EOF token.
//
// Example:
//
//	tokens, err := perflang.Tokenize("1 + x")
//	// tokens: INTEGER PLUS IDENTIFIER EOF
func Tokenize(src string) ([]token.Token, error) {
	return TokenizeFile("", src)
}

// TokenizeFile is like Tokenize but records name in token positions.
func TokenizeFile(name, src string) ([]token.Token, error) {
	tokens, err := lexer.New(lexer.WithFilename(name)).Digest(src)
	if err != nil {
		return nil, publicError(err)
	}
	return tokens, nil
}

// Parse tokenizes and parses src.
//
// Example:
//
//	res, err := perflang.Parse("1 + 2 * 3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer res.Release()
func Parse(src string) (*Result, error) {
	return ParseFile("", src)
}

// ParseFile is like Parse but records name in token positions.
func ParseFile(name, src string) (*Result, error) {
	tokens, err := TokenizeFile(name, src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses an existing token array. The array must outlive the
// result. A missing trailing EOF is appended to a copy, which becomes
// Result.Tokens.
func ParseTokens(tokens []token.Token) (*Result, error) {
	p := parser.New(nil)
	nodes, err := p.Digest(tokens)
	if err != nil {
		return nil, publicError(err)
	}
	return &Result{Tokens: p.Tokens(), Nodes: nodes, arena: p.Arena()}, nil
}

// MustParse is like Parse but panics if src cannot be parsed.
func MustParse(src string) *Result {
	res, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return res
}

// TokenNames returns the TOKEN_* name of every token.
func TokenNames(tokens []token.Token) []string {
	names := make([]string, len(tokens))
	for i := range tokens {
		names[i] = tokens[i].Type.Name()
	}
	return names
}

// Exec digests src and writes the result to out as configured:
// the token stream in tokens mode, the statements in ast mode.
// name labels positions in errors and may be empty.
//
// Example:
//
//	err := perflang.Exec("", "1 + 2", os.Stdout, &perflang.Config{Mode: perflang.ModeAST})
func Exec(name, src string, out io.Writer, config *Config) error {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	tokens, err := TokenizeFile(name, src)
	if err != nil {
		return err
	}

	if cfg.Mode == ModeAST {
		res, err := ParseTokens(tokens)
		if err != nil {
			return err
		}
		defer res.Release()
		return render.Nodes(out, format, res.Nodes)
	}

	f, err := filter.Compile(cfg.Filter)
	if err != nil {
		return err
	}
	return render.Tokens(out, format, f.Apply(tokens))
}
