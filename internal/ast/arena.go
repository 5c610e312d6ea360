package ast

import "github.com/kolkov/perflang/internal/token"

// Arena allocates nodes and accounts for their lifetime.
//
// Building a node through the arena transfers ownership of its children to
// it; a child can have only one parent. Release tears a subtree down bottom-up
// and is idempotent, so error paths may release overlapping partial trees
// without corrupting state. The garbage collector reclaims the memory; the
// arena tracks which nodes are still live.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	allocated int
	released  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Allocated returns the number of nodes ever allocated by the arena.
func (a *Arena) Allocated() int { return a.allocated }

// Live returns the number of allocated nodes that have not been released.
func (a *Arena) Live() int { return a.allocated - a.released }

// NewConstant allocates a literal leaf borrowing tok.
func (a *Arena) NewConstant(tok *token.Token) *Constant {
	n := &Constant{Token: tok}
	a.track(&n.ownership)
	return n
}

// NewVariable allocates an identifier leaf borrowing tok.
func (a *Arena) NewVariable(tok *token.Token) *Variable {
	n := &Variable{Token: tok}
	a.track(&n.ownership)
	return n
}

// NewGroup allocates a parenthesized expression owning expr.
func (a *Arena) NewGroup(lparen, rparen *token.Token, expr Node) *Group {
	a.adopt(expr)
	n := &Group{Lparen: lparen, Rparen: rparen, Expr: expr}
	a.track(&n.ownership)
	return n
}

// NewUnary allocates a prefix operation owning operand.
func (a *Arena) NewUnary(op *token.Token, operand Node) *Unary {
	a.adopt(operand)
	n := &Unary{Op: op, Operand: operand}
	a.track(&n.ownership)
	return n
}

// NewBinary allocates an infix operation owning left and right.
func (a *Arena) NewBinary(op *token.Token, left, right Node) *Binary {
	a.adopt(left)
	a.adopt(right)
	n := &Binary{Op: op, Left: left, Right: right}
	a.track(&n.ownership)
	return n
}

// NewExprStmt allocates an expression statement owning expr. semi may be nil.
func (a *Arena) NewExprStmt(expr Node, semi *token.Token) *ExprStmt {
	a.adopt(expr)
	n := &ExprStmt{Expr: expr, Semi: semi}
	a.track(&n.ownership)
	return n
}

// Release releases n and every node below it, children first, and detaches
// the children from their parents. Releasing nil or an already released
// node is a no-op.
func (a *Arena) Release(n Node) {
	if n == nil {
		return
	}
	o := n.owner()
	if o.released {
		return
	}
	if o.arena != a {
		panic("ast: node released through a foreign arena")
	}

	for _, child := range Children(n) {
		child.owner().attached = false
		a.Release(child)
	}

	switch n := n.(type) {
	case *Group:
		n.Expr = nil
	case *Unary:
		n.Operand = nil
	case *Binary:
		n.Left, n.Right = nil, nil
	case *ExprStmt:
		n.Expr = nil
	}

	o.released = true
	a.released++
}

// ReleaseAll releases every node in nodes.
func (a *Arena) ReleaseAll(nodes []Node) {
	for _, n := range nodes {
		a.Release(n)
	}
}

func (a *Arena) track(o *ownership) {
	o.arena = a
	a.allocated++
}

// adopt marks child as owned by a parent under construction. Sharing a node
// between two parents, or reusing a released node, is a programming error.
func (a *Arena) adopt(child Node) {
	if child == nil {
		panic("ast: nil child")
	}
	o := child.owner()
	switch {
	case o.released:
		panic("ast: child node was released")
	case o.attached:
		panic("ast: child node already has a parent")
	case o.arena != a:
		panic("ast: child node belongs to another arena")
	}
	o.attached = true
}
