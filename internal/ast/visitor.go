package ast

// Visitor defines the generic visitor pattern for AST traversal.
// Type parameter T is the return type of visit methods.
//
// Example usage for counting operators:
//
//	type opCounter struct{}
//	func (c opCounter) VisitConstant(*Constant) int { return 0 }
//	func (c opCounter) VisitBinary(n *Binary) int {
//	    return 1 + Accept[int](n.Left, c) + Accept[int](n.Right, c)
//	}
//	// ... other methods
type Visitor[T any] interface {
	VisitConstant(*Constant) T
	VisitVariable(*Variable) T
	VisitGroup(*Group) T
	VisitUnary(*Unary) T
	VisitBinary(*Binary) T
	VisitExprStmt(*ExprStmt) T
}

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all variables
//
//	count := 0
//	ast.Walk(stmt, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Variable); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Inspect traverses an AST with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the root node.
// If fn returns false, the children of that node are not visited.
func Inspect(node Node, fn func(node, parent Node) bool) {
	inspect(node, nil, fn)
}

func inspect(node, parent Node, fn func(node, parent Node) bool) {
	if node == nil || !fn(node, parent) {
		return
	}
	for _, child := range Children(node) {
		inspect(child, node, fn)
	}
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	n := 0
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return n
}

// Depth returns the height of the tree rooted at node; a leaf has depth 1.
func Depth(node Node) int {
	if node == nil {
		return 0
	}
	deepest := 0
	for _, child := range Children(node) {
		deepest = max(deepest, Depth(child))
	}
	return deepest + 1
}

// Accept dispatches node to the matching Visit method of v.
// A nil node yields the zero value of T.
func Accept[T any](node Node, v Visitor[T]) T {
	switch n := node.(type) {
	case *Constant:
		return v.VisitConstant(n)
	case *Variable:
		return v.VisitVariable(n)
	case *Group:
		return v.VisitGroup(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Binary:
		return v.VisitBinary(n)
	case *ExprStmt:
		return v.VisitExprStmt(n)
	default:
		var zero T
		return zero
	}
}
