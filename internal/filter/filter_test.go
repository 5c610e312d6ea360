package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/perflang/internal/token"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		typ     token.Type
		expect  bool
	}{
		{"", token.PLUS, true},
		{"KEYWORD", token.WHILE, true},
		{"KEYWORD", token.IDENTIFIER, false},
		{"^TOKEN_(INTEGER|NUMBER)$", token.INTEGER, true},
		{"^TOKEN_(INTEGER|NUMBER)$", token.STRING, false},
		{"EQUAL", token.LESS_EQUAL, true},
		{"EQUAL", token.EQUAL, true},
		{"EQUAL$", token.EQUAL_EQUAL, true},
		{"^TOKEN_EQUAL$", token.EQUAL_EQUAL, false},
		{"EOF", token.EOF, true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.typ.Name(), func(t *testing.T) {
			f, err := Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, f.Match(tt.typ))
		})
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile("(unclosed")
	assert.Error(t, err)

	_, err = Compile("[")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	tokens := []token.Token{
		{Type: token.IDENTIFIER, Raw: "x"},
		{Type: token.PLUS, Raw: "+"},
		{Type: token.INTEGER, Raw: "1"},
		{Type: token.EOF},
	}

	f, err := Compile("IDENTIFIER|INTEGER")
	require.NoError(t, err)
	got := f.Apply(tokens)
	require.Len(t, got, 2)
	assert.Equal(t, "x", got[0].Raw)
	assert.Equal(t, "1", got[1].Raw)
	assert.Len(t, tokens, 4)

	all, err := Compile("")
	require.NoError(t, err)
	assert.Len(t, all.Apply(tokens), 4)

	var none *Filter
	assert.True(t, none.Match(token.PLUS))
	assert.Len(t, none.Apply(tokens), 4)
}

func TestMatchUnknownType(t *testing.T) {
	f, err := Compile("^TOKEN_ILLEGAL$")
	require.NoError(t, err)
	assert.True(t, f.Match(token.ILLEGAL))
	assert.False(t, f.Match(token.EOF))
}
