// Package ast defines the abstract syntax tree for perf expressions.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Constant, Variable - leaves that borrow a token
//	├── Group              - parenthesized expression
//	├── Unary, Binary      - operations
//	└── ExprStmt           - top-level expression statement
//
// Leaves hold pointers into the token array produced by the lexer; they never
// own tokens, so the token array must outlive the tree. Composite nodes own
// their children exclusively. Every node is allocated through an [Arena],
// which releases subtrees exactly once.
package ast

import (
	"fmt"

	"github.com/kolkov/perflang/internal/token"
)

// Kind identifies the variant of a node.
type Kind uint8

const (
	KindConstant Kind = iota
	KindVariable
	KindGroup
	KindUnary
	KindBinary
	KindExprStmt
)

var kindNames = [...]string{
	KindConstant: "Constant",
	KindVariable: "Variable",
	KindGroup:    "Group",
	KindUnary:    "Unary",
	KindBinary:   "Binary",
	KindExprStmt: "ExprStmt",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Kind returns the variant of the node.
	Kind() Kind

	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position

	owner() *ownership // marker method to prevent external implementations
}

// ownership carries the arena bookkeeping of a node.
type ownership struct {
	arena    *Arena
	attached bool // owned by a parent node
	released bool
}

func (o *ownership) owner() *ownership { return o }

// Released reports whether the node has been released by its arena.
// A released node has no children and must not be used.
func (o *ownership) Released() bool { return o.released }

// Constant is a literal leaf: integer, number, string, true or false.
type Constant struct {
	ownership
	Token *token.Token
}

// Variable is an identifier leaf.
type Variable struct {
	ownership
	Token *token.Token
}

// Group is a parenthesized expression.
// Example: (a + b)
type Group struct {
	ownership
	Lparen *token.Token
	Rparen *token.Token
	Expr   Node
}

// Unary is a prefix operation.
// Examples: -x, !flag
type Unary struct {
	ownership
	Op      *token.Token // MINUS or EXCLAIM
	Operand Node
}

// Binary is an infix operation.
// Examples: a + b, x == y
type Binary struct {
	ownership
	Op    *token.Token
	Left  Node
	Right Node
}

// ExprStmt is an expression used as a top-level statement.
type ExprStmt struct {
	ownership
	Expr Node
	Semi *token.Token // terminating ';', nil if absent
}

func (*Constant) Kind() Kind { return KindConstant }
func (*Variable) Kind() Kind { return KindVariable }
func (*Group) Kind() Kind    { return KindGroup }
func (*Unary) Kind() Kind    { return KindUnary }
func (*Binary) Kind() Kind   { return KindBinary }
func (*ExprStmt) Kind() Kind { return KindExprStmt }

func (n *Constant) Pos() token.Position { return n.Token.Pos }
func (n *Constant) End() token.Position { return n.Token.End() }
func (n *Variable) Pos() token.Position { return n.Token.Pos }
func (n *Variable) End() token.Position { return n.Token.End() }
func (n *Group) Pos() token.Position    { return n.Lparen.Pos }
func (n *Group) End() token.Position    { return n.Rparen.End() }
func (n *Unary) Pos() token.Position    { return n.Op.Pos }
func (n *Unary) End() token.Position    { return n.Operand.End() }
func (n *Binary) Pos() token.Position   { return n.Left.Pos() }
func (n *Binary) End() token.Position   { return n.Right.End() }
func (n *ExprStmt) Pos() token.Position { return n.Expr.Pos() }

func (n *ExprStmt) End() token.Position {
	if n.Semi != nil {
		return n.Semi.End()
	}
	return n.Expr.End()
}

// Name returns the identifier of a variable.
func (n *Variable) Name() string { return n.Token.Text }

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Group:
		return nonNil(n.Expr)
	case *Unary:
		return nonNil(n.Operand)
	case *Binary:
		return nonNil(n.Left, n.Right)
	case *ExprStmt:
		return nonNil(n.Expr)
	default:
		return nil
	}
}

func nonNil(nodes ...Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Node = (*Constant)(nil)
	_ Node = (*Variable)(nil)
	_ Node = (*Group)(nil)
	_ Node = (*Unary)(nil)
	_ Node = (*Binary)(nil)
	_ Node = (*ExprStmt)(nil)
)
