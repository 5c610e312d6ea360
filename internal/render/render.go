// Package render writes token streams and syntax trees in the formats the
// perf driver offers: plain text, an aligned table or YAML.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/perflang/internal/ast"
	"github.com/kolkov/perflang/internal/token"
)

// Format selects an output representation.
type Format string

const (
	Text  Format = "text"
	Table Format = "table"
	YAML  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{Text, Table, YAML}

// ParseFormat validates s as a Format. The empty string selects Text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Text, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want text, table or yaml)", s)
}

// Tokens writes tokens to w in format.
//
// The text form prints one "Token i/n: TOKEN_NAME" line per token with a
// zero-based index and the total count, as the perf driver always has.
func Tokens(w io.Writer, format Format, tokens []token.Token) error {
	switch format {
	case Text, "":
		return tokensText(w, tokens)
	case Table:
		return tokensTable(w, tokens)
	case YAML:
		return encodeYAML(w, tokenDocs(tokens))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func tokensText(w io.Writer, tokens []token.Token) error {
	for i := range tokens {
		if _, err := fmt.Fprintf(w, "Token %d/%d: %s\n", i, len(tokens), tokens[i].Type.Name()); err != nil {
			return err
		}
	}
	return nil
}

func tokensTable(w io.Writer, tokens []token.Token) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Type", "Raw", "Position", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for i := range tokens {
		tok := &tokens[i]
		table.Append([]string{
			strconv.Itoa(i),
			tok.Type.Name(),
			tok.Raw,
			tok.Pos.String(),
			valueString(tok),
		})
	}
	table.Render()
	return nil
}

func valueString(tok *token.Token) string {
	switch v := tok.Value().(type) {
	case nil:
		return ""
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

// tokenDoc is the YAML shape of a token.
type tokenDoc struct {
	Type   string `yaml:"type"`
	Raw    string `yaml:"raw,omitempty"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
	Value  any    `yaml:"value,omitempty"`
}

func tokenDocs(tokens []token.Token) []tokenDoc {
	docs := make([]tokenDoc, len(tokens))
	for i := range tokens {
		tok := &tokens[i]
		docs[i] = tokenDoc{
			Type:   tok.Type.Name(),
			Raw:    tok.Raw,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
			Value:  tok.Value(),
		}
	}
	return docs
}

// Nodes writes the statements of a syntax tree to w in format.
func Nodes(w io.Writer, format Format, nodes []ast.Node) error {
	switch format {
	case Text, "":
		p := ast.NewPrinter(w)
		for _, n := range nodes {
			if err := p.PrintTree(n); err != nil {
				return err
			}
		}
		return nil
	case Table:
		return nodesTable(w, nodes)
	case YAML:
		docs := make([]*nodeDoc, len(nodes))
		for i, n := range nodes {
			docs[i] = newNodeDoc(n)
		}
		return encodeYAML(w, docs)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func nodesTable(w io.Writer, nodes []ast.Node) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Stmt", "Depth", "Kind", "Token", "Span"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for i, root := range nodes {
		depth := map[ast.Node]int{}
		ast.Inspect(root, func(n, parent ast.Node) bool {
			if parent != nil {
				depth[n] = depth[parent] + 1
			}
			table.Append([]string{
				strconv.Itoa(i),
				strconv.Itoa(depth[n]),
				n.Kind().String(),
				nodeToken(n),
				token.Span{Start: n.Pos(), End: n.End()}.String(),
			})
			return true
		})
	}
	table.Render()
	return nil
}

// nodeToken returns the raw text of the token a node is labelled with.
func nodeToken(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Constant:
		return n.Token.Raw
	case *ast.Variable:
		return n.Token.Raw
	case *ast.Unary:
		return n.Op.Raw
	case *ast.Binary:
		return n.Op.Raw
	default:
		return ""
	}
}

// nodeDoc is the YAML shape of a node.
type nodeDoc struct {
	Kind     string     `yaml:"kind"`
	Token    string     `yaml:"token,omitempty"`
	Span     string     `yaml:"span"`
	Children []*nodeDoc `yaml:"children,omitempty"`
}

func newNodeDoc(n ast.Node) *nodeDoc {
	doc := &nodeDoc{
		Kind:  n.Kind().String(),
		Token: nodeToken(n),
		Span:  token.Span{Start: n.Pos(), End: n.End()}.String(),
	}
	for _, child := range ast.Children(n) {
		doc.Children = append(doc.Children, newNodeDoc(child))
	}
	return doc
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
