// Package filter selects tokens by type name.
//
// A filter is a regular expression matched against the canonical TOKEN_*
// name of each token type, so "KEYWORD" keeps every keyword and
// "^TOKEN_(INTEGER|NUMBER)$" keeps numeric literals.
package filter

import (
	"github.com/coregx/coregex"

	"github.com/kolkov/perflang/internal/token"
)

// Filter matches token types against a compiled pattern.
// The match result of every type is computed once at compile time,
// so a Filter is safe for concurrent use.
type Filter struct {
	re   *coregex.Regexp
	keep map[token.Type]bool
}

// Compile creates a Filter from pattern. An empty pattern matches every type.
func Compile(pattern string) (*Filter, error) {
	f := &Filter{keep: make(map[token.Type]bool)}
	if pattern != "" {
		re, err := coregex.Compile(pattern)
		if err != nil {
			return nil, err
		}
		f.re = re
	}

	for _, typ := range token.Types() {
		f.keep[typ] = f.re == nil || f.re.MatchString(typ.Name())
	}
	return f, nil
}

// Match reports whether tokens of type typ pass the filter.
// A nil Filter matches every type.
func (f *Filter) Match(typ token.Type) bool {
	if f == nil {
		return true
	}
	if keep, ok := f.keep[typ]; ok {
		return keep
	}
	return f.re == nil || f.re.MatchString(typ.Name())
}

// Apply returns the tokens that pass the filter, in order.
// The input slice is not modified.
func (f *Filter) Apply(tokens []token.Token) []token.Token {
	if f == nil || f.re == nil {
		return tokens
	}
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if f.Match(tok.Type) {
			out = append(out, tok)
		}
	}
	return out
}
