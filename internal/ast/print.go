package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer provides pretty-printing for AST nodes.
// It outputs a human-readable representation suitable for debugging.
//
// The compact form nests children in parentheses on one line:
//
//	Binary(+, Constant(1), Binary(*, Constant(2), Constant(3)))
//
// The tree form prints one node per line, indenting children.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the compact representation of the node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// PrintTree writes the indented tree representation of the node,
// terminated by a newline.
func (p *Printer) PrintTree(node Node) error {
	p.printTree(node)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		p.printf("<nil>")
		return
	}

	switch n := node.(type) {
	case *Constant:
		p.printf("Constant(%s)", n.Token.Raw)
	case *Variable:
		p.printf("Variable(%s)", n.Token.Raw)
	case *Group:
		p.printf("Group(")
		p.printNode(n.Expr)
		p.printf(")")
	case *Unary:
		p.printf("Unary(%s, ", n.Op.Raw)
		p.printNode(n.Operand)
		p.printf(")")
	case *Binary:
		p.printf("Binary(%s, ", n.Op.Raw)
		p.printNode(n.Left)
		p.printf(", ")
		p.printNode(n.Right)
		p.printf(")")
	case *ExprStmt:
		p.printf("ExprStmt(")
		p.printNode(n.Expr)
		p.printf(")")
	default:
		p.printf("<%T>", node)
	}
}

func (p *Printer) printTree(node Node) {
	p.writeIndent()
	switch n := node.(type) {
	case nil:
		p.printf("<nil>\n")
		return
	case *Constant:
		p.printf("Constant %s\n", n.Token.Raw)
	case *Variable:
		p.printf("Variable %s\n", n.Token.Raw)
	case *Unary:
		p.printf("Unary %s\n", n.Op.Raw)
	case *Binary:
		p.printf("Binary %s\n", n.Op.Raw)
	case *ExprStmt:
		if n.Semi != nil {
			p.printf("ExprStmt ;\n")
		} else {
			p.printf("ExprStmt\n")
		}
	default:
		p.printf("%s\n", node.Kind())
	}

	p.indent++
	for _, child := range Children(node) {
		p.printTree(child)
	}
	p.indent--
}

// String returns the compact representation of the node.
func String(node Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	p.Print(node)
	return sb.String()
}

// Tree returns the indented tree representation of the node.
func Tree(node Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	p.PrintTree(node)
	return sb.String()
}
