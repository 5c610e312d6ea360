// Package lexer provides perf source code tokenization.
package lexer

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/kolkov/perflang/internal/growth"
	"github.com/kolkov/perflang/internal/token"
)

// Lexer digests perf source code into a token array.
//
// A Lexer holds no state between Digest calls other than its options, so one
// value may be reused for consecutive inputs (the REPL digests line by line).
// It is not safe for concurrent use; create one Lexer per goroutine.
type Lexer struct {
	filename string

	src string
	ch  byte           // Current character (0 at end of input)
	pos token.Position // Position of ch
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithFilename stamps every token position with name.
func WithFilename(name string) Option {
	return func(l *Lexer) {
		l.filename = name
	}
}

// New creates a new Lexer.
func New(opts ...Option) *Lexer {
	l := &Lexer{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize digests src with a default Lexer.
func Tokenize(src string) ([]token.Token, error) {
	return New().Digest(src)
}

// Digest scans src into tokens. The returned array always ends with an EOF
// token on success.
//
// A NUL byte ends the input, as does the end of the string. On failure the
// tokens emitted before the fault are returned together with a *LexError.
func (l *Lexer) Digest(src string) ([]token.Token, error) {
	l.reset(src)
	tokens := growth.Make[token.Token]()

	for {
		if err := l.skipWhitespaceAndComments(); err != nil {
			return tokens, err
		}
		if l.ch == 0 {
			break
		}
		tok, err := l.scan()
		if err != nil {
			return tokens, err
		}
		tokens = growth.Append(tokens, tok)
	}

	return growth.Append(tokens, token.Token{Type: token.EOF, Pos: l.pos}), nil
}

func (l *Lexer) reset(src string) {
	l.src = src
	l.pos = token.Position{Filename: l.filename, Line: 1}
	l.load()
}

func (l *Lexer) scan() (token.Token, error) {
	start := l.pos

	switch {
	case isAlpha(l.ch):
		return l.scanIdent(start), nil
	case isDigit(l.ch):
		return l.scanNumber(start)
	case l.ch == '"':
		return l.scanString(start)
	}

	var typ token.Type
	switch l.ch {
	case '(':
		typ = token.LPAREN
	case ')':
		typ = token.RPAREN
	case '{':
		typ = token.LBRACE
	case '}':
		typ = token.RBRACE
	case ',':
		typ = token.COMMA
	case '.':
		typ = token.PERIOD
	case ';':
		typ = token.SEMICOLON
	case ':':
		typ = token.COLON
	case '-':
		typ = token.MINUS
	case '+':
		typ = token.PLUS
	case '/':
		typ = token.SLASH
	case '*':
		typ = token.ASTERISK
	case '%':
		typ = token.PERCENT
	case '&':
		typ = token.AMPERSAND
	case '!':
		typ = l.pair(token.EXCLAIM, token.EXCLAIM_EQUAL)
	case '=':
		typ = l.pair(token.EQUAL, token.EQUAL_EQUAL)
	case '>':
		typ = l.pair(token.GREATER, token.GREATER_EQUAL)
	case '<':
		typ = l.pair(token.LESS, token.LESS_EQUAL)
	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.pos.Offset:])
		return token.Token{}, errorf(start, "unexpected character %q", r)
	}
	l.next()
	return l.token(typ, start), nil
}

// pair returns double if the character after the current one is '=', consuming
// the current character in that case.
func (l *Lexer) pair(single, double token.Type) token.Type {
	if l.peek() == '=' {
		l.next()
		return double
	}
	return single
}

func (l *Lexer) scanIdent(start token.Position) token.Token {
	for isAlphanumeric(l.ch) {
		l.next()
	}
	tok := l.token(token.IDENTIFIER, start)
	if typ := token.Lookup(tok.Raw); typ != token.IDENTIFIER {
		tok.Type = typ
		return tok
	}
	tok.Text = tok.Raw
	return tok
}

func (l *Lexer) scanNumber(start token.Position) (token.Token, error) {
	base := 10

	if l.ch == '0' && isAlpha(l.peek()) {
		l.next() // 0
		switch l.ch {
		case 'b':
			base = 2
		case 'o':
			base = 8
		case 'x':
			base = 16
		default:
			return token.Token{}, errorf(start, "unknown numeric base prefix '0%c'", l.ch)
		}
		l.next()
		if !isDigitOf(l.ch, base) {
			return token.Token{}, errorf(start, "expected digits after numeric base prefix")
		}
	}

	var digits []byte
	isFloat := false
	fraction := 0

scan:
	for {
		switch {
		case l.ch == '_':
			// Digit separator
		case isDigitOf(l.ch, base):
			digits = append(digits, l.ch)
			if isFloat {
				fraction++
			}
		case l.ch == '.' && base == 10 && !isFloat:
			digits = append(digits, '.')
			isFloat = true
		default:
			break scan
		}
		l.next()
	}

	if isFloat {
		if fraction == 0 {
			return token.Token{}, errorf(start, "expected digits after decimal point")
		}
		f, err := strconv.ParseFloat(string(digits), 64)
		if err != nil {
			return token.Token{}, errorf(start, "number literal out of range")
		}
		tok := l.token(token.NUMBER, start)
		tok.Float = f
		return tok, nil
	}

	n, err := strconv.ParseUint(string(digits), base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return token.Token{}, errorf(start, "integer literal out of range")
		}
		return token.Token{}, errorf(start, "malformed integer literal")
	}
	tok := l.token(token.INTEGER, start)
	tok.Int = n
	return tok, nil
}

// scanString scans a double-quoted string. Escapes are kept verbatim: a
// backslash only prevents the following character from closing the string.
func (l *Lexer) scanString(start token.Position) (token.Token, error) {
	l.next() // consume opening quote
	from := l.pos.Offset

	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{}, errorf(start, "unterminated string")
		}
		if l.ch == '\\' {
			l.next()
			if l.ch == 0 {
				return token.Token{}, errorf(start, "unterminated string")
			}
		}
		l.next()
	}

	text := l.src[from:l.pos.Offset]
	l.next() // consume closing quote

	tok := l.token(token.STRING, start)
	tok.Text = text
	return tok, nil
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		switch {
		case isWhitespace(l.ch):
			l.next()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != 0 && l.ch != '\n' {
				l.next()
			}
		case l.ch == '/' && l.peek() == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) skipBlockComment() error {
	start := l.pos
	l.next() // /
	l.next() // *
	for l.ch != 0 {
		if l.ch == '*' && l.peek() == '/' {
			l.next()
			l.next()
			return nil
		}
		l.next()
	}
	return errorf(start, "unterminated comment")
}

func (l *Lexer) token(typ token.Type, start token.Position) token.Token {
	return token.Token{
		Type: typ,
		Pos:  start,
		Raw:  l.src[start.Offset:l.pos.Offset],
	}
}

// next advances past the current character, keeping line and column in step.
func (l *Lexer) next() {
	if l.ch == 0 {
		return
	}
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	} else {
		l.pos.Column++
	}
	l.pos.Offset++
	l.load()
}

func (l *Lexer) load() {
	if l.pos.Offset < len(l.src) {
		l.ch = l.src[l.pos.Offset]
		return
	}
	l.ch = 0
}

func (l *Lexer) peek() byte {
	if i := l.pos.Offset + 1; i < len(l.src) {
		return l.src[i]
	}
	return 0
}

// Helper functions

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphanumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

// isDigitOf reports whether ch is a digit in the given base.
func isDigitOf(ch byte, base int) bool {
	switch base {
	case 2:
		return ch == '0' || ch == '1'
	case 8:
		return ch >= '0' && ch <= '7'
	case 16:
		return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
	default:
		return isDigit(ch)
	}
}
