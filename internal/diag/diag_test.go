package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/perflang/internal/lexer"
	"github.com/kolkov/perflang/internal/parser"
	"github.com/kolkov/perflang/internal/token"
)

func TestPrintParseError(t *testing.T) {
	src := "x\n1 + while"
	_, _, err := parser.Parse(src)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, src, false).PrintError(err))

	want := "2:4: error: unexpected token\n" +
		"1 + while\n" +
		"    ^^^^^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintLexError(t *testing.T) {
	src := "\tv = @"
	_, err := lexer.New(lexer.WithFilename("a.perf")).Digest(src)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, src, false).PrintError(err))

	want := "a.perf:1:5: error: unexpected character '@'\n" +
		"\tv = @\n" +
		"\t    ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintAtEOF(t *testing.T) {
	src := "(1 + 2"
	_, _, err := parser.Parse(src)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, src, false).PrintError(err))

	want := "1:6: error: expected closing parenthesis\n" +
		"(1 + 2\n" +
		"      ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintPlainError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, "", false).PrintError(errors.New("boom")))
	assert.Equal(t, "error: boom\n", buf.String())
}

func TestColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "x", true)
	require.NoError(t, p.Print(Diagnostic{Pos: token.Position{Line: 1}, Length: 1, Message: "m"}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestFromError(t *testing.T) {
	_, ok := FromError(errors.New("plain"))
	assert.False(t, ok)

	perr := &parser.ParseError{
		Token:   &token.Token{Type: token.WHILE, Raw: "while", Pos: token.Position{Line: 1, Column: 2}},
		Message: "unexpected token",
	}
	d, ok := FromError(perr)
	require.True(t, ok)
	assert.Equal(t, 5, d.Length)
	assert.Equal(t, 2, d.Pos.Column)

	// An empty token still gets one caret.
	eof := &parser.ParseError{Token: &token.Token{Type: token.EOF, Pos: token.Position{Line: 1, Column: 6, Offset: 6}}}
	d, ok = FromError(eof)
	require.True(t, ok)
	assert.Equal(t, 1, d.Length)
}

func TestLineAt(t *testing.T) {
	src := "one\r\ntwo\nthree"
	line, ok := lineAt(src, token.Position{Line: 2, Offset: 6})
	require.True(t, ok)
	assert.Equal(t, "two", line)

	line, ok = lineAt(src, token.Position{Line: 1, Offset: 1})
	require.True(t, ok)
	assert.Equal(t, "one", line)

	_, ok = lineAt(src, token.Position{Line: 1, Offset: 100})
	assert.False(t, ok)
	_, ok = lineAt(src, token.NoPos)
	assert.False(t, ok)
}
