package parser

import (
	"github.com/kolkov/perflang/internal/ast"
	"github.com/kolkov/perflang/internal/growth"
	"github.com/kolkov/perflang/internal/lexer"
	"github.com/kolkov/perflang/internal/token"
)

// Parser is a recursive descent parser for perf expressions.
//
// The parser is LL(1): every decision looks only at the current token, and
// the cursor never moves backwards. Nodes are allocated through the parser's
// arena. Every partial tree is released before an error is returned, so a
// failed digest leaves no live nodes behind.
type Parser struct {
	arena  *ast.Arena
	tokens []token.Token
	pos    int          // index of the current token
	tok    *token.Token // current token
	errTok *token.Token // token involved in the last error
}

// New creates a parser that allocates nodes in arena.
// A nil arena is replaced by a fresh one.
func New(arena *ast.Arena) *Parser {
	if arena == nil {
		arena = ast.NewArena()
	}
	return &Parser{arena: arena}
}

// Parse tokenizes and parses src with a fresh arena.
// Lexical errors are returned as *lexer.LexError.
func Parse(src string) ([]ast.Node, *ast.Arena, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, nil, err
	}
	p := New(nil)
	nodes, err := p.Digest(tokens)
	return nodes, p.arena, err
}

// Arena returns the arena the parser allocates nodes from.
func (p *Parser) Arena() *ast.Arena { return p.arena }

// ErrToken returns the token involved in the last error, or nil.
func (p *Parser) ErrToken() *token.Token { return p.errTok }

// Tokens returns the token array of the last Digest. It is the caller's
// array unless an EOF had to be appended, in which case it is a copy.
// Leaf nodes point into this array.
func (p *Parser) Tokens() []token.Token { return p.tokens }

// Digest parses tokens into a list of top-level statements.
//
// Leaves point into tokens, so the slice must outlive the returned nodes.
// A token list that does not end with EOF is parsed as if one followed.
// On error Digest releases everything it built and returns nil nodes.
func (p *Parser) Digest(tokens []token.Token) ([]ast.Node, error) {
	p.reset(tokens)

	nodes := growth.Make[ast.Node]()
	for p.tok.Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			p.arena.ReleaseAll(nodes)
			return nil, err
		}
		nodes = growth.Append(nodes, stmt)
	}
	return nodes, nil
}

func (p *Parser) reset(tokens []token.Token) {
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		eof := token.Token{Type: token.EOF, Pos: token.Position{Line: 1}}
		if n > 0 {
			eof.Pos = tokens[n-1].End()
		}
		tokens = append(tokens[:n:n], eof)
	}
	p.tokens = tokens
	p.pos = 0
	p.tok = &p.tokens[0]
	p.errTok = nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token. The cursor stays on the final EOF.
func (p *Parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
		p.tok = &p.tokens[p.pos]
	}
}

// match returns true if current token matches any of the given types.
func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// fail records err and returns it with no node.
func (p *Parser) fail(err *ParseError) (ast.Node, error) {
	p.errTok = err.Token
	return nil, err
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// parseStatement parses one top-level statement.
func (p *Parser) parseStatement() (ast.Node, error) {
	if p.tok.Type == token.FUNC {
		return p.fail(errorf(p.tok, "not yet implemented"))
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var semi *token.Token
	if p.tok.Type == token.SEMICOLON {
		semi = p.tok
		p.next()
	}
	return p.arena.NewExprStmt(expr, semi), nil
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

// parseExpression parses a full expression.
func (p *Parser) parseExpression() (ast.Node, error) {
	return p.parseEquality()
}

// parseEquality parses == and != expressions.
func (p *Parser) parseEquality() (ast.Node, error) {
	return p.parseBinary(p.parseComparison, token.EXCLAIM_EQUAL, token.EQUAL_EQUAL)
}

// parseComparison parses <, <=, > and >= expressions.
func (p *Parser) parseComparison() (ast.Node, error) {
	return p.parseBinary(p.parseAddition,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

// parseAddition parses + and - expressions.
func (p *Parser) parseAddition() (ast.Node, error) {
	return p.parseBinary(p.parseMultiplication, token.PLUS, token.MINUS)
}

// parseMultiplication parses * and / expressions.
func (p *Parser) parseMultiplication() (ast.Node, error) {
	return p.parseBinary(p.parseUnary, token.ASTERISK, token.SLASH)
}

// parseBinary parses a left-associative chain of operands joined by ops.
// A Binary node is built only when an operator is consumed.
func (p *Parser) parseBinary(higher func() (ast.Node, error), ops ...token.Type) (ast.Node, error) {
	lhs, err := higher()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.tok
		p.next()
		rhs, err := higher()
		if err != nil {
			p.arena.Release(lhs)
			return nil, err
		}
		lhs = p.arena.NewBinary(op, lhs, rhs)
	}
	return lhs, nil
}

// parseUnary parses prefix ! and - expressions.
func (p *Parser) parseUnary() (ast.Node, error) {
	if !p.match(token.EXCLAIM, token.MINUS) {
		return p.parsePrimary()
	}

	op := p.tok
	p.next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.arena.NewUnary(op, operand), nil
}

// parsePrimary parses literals, identifiers and parenthesized expressions.
func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.tok
	switch {
	case tok.Type == token.IDENTIFIER:
		p.next()
		return p.arena.NewVariable(tok), nil

	case tok.Type.IsLiteral(), tok.Type == token.TRUE, tok.Type == token.FALSE:
		p.next()
		return p.arena.NewConstant(tok), nil

	case tok.Type == token.LPAREN:
		return p.parseGroup()

	default:
		return p.fail(errorf(tok, "unexpected token"))
	}
}

// parseGroup parses '(' expression ')'.
func (p *Parser) parseGroup() (ast.Node, error) {
	lparen := p.tok
	p.next()
	if p.tok.Type == token.EOF {
		return p.fail(errorf(p.tok, "expected identifier, number, integer or string literal"))
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.tok.Type != token.RPAREN {
		p.arena.Release(expr)
		return p.fail(expectedError(p.tok, token.RPAREN, "expected closing parenthesis"))
	}
	rparen := p.tok
	p.next()
	return p.arena.NewGroup(lparen, rparen, expr), nil
}
