package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It starts by calling f on
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// children returns the non-nil direct children of a node in source order.
func children(node Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if n != nil {
				out = append(out, n)
			}
		}
	}
	switch n := node.(type) {
	case *Program:
		add(n.Stmts...)
	case *Block:
		add(n.Stmts...)
	case *VarDecl:
		if n.Name != nil {
			add(n.Name)
		}
		if n.Value != nil {
			add(n.Value)
		}
	case *Return:
		if n.Value != nil {
			add(n.Value)
		}
	case *If:
		add(n.Cond)
		if n.Consequence != nil {
			add(n.Consequence)
		}
		if n.Alternative != nil {
			add(n.Alternative)
		}
	case *ExprStmt:
		add(n.X)
	case *Import:
		if n.Default != nil {
			add(n.Default)
		}
		if n.Star != nil {
			add(n.Star)
		}
		for _, spec := range n.Named {
			if spec.Name != nil {
				add(spec.Name)
			}
			if spec.Alias != nil {
				add(spec.Alias)
			}
		}
		if n.Path != nil {
			add(n.Path)
		}
	case *Export:
		if n.Decl != nil {
			add(n.Decl)
		}
		if n.X != nil {
			add(n.X)
		}
		for _, spec := range n.Named {
			if spec.Name != nil {
				add(spec.Name)
			}
			if spec.Alias != nil {
				add(spec.Alias)
			}
		}
		if n.Path != nil {
			add(n.Path)
		}
	case *Prefix:
		add(n.X)
	case *Postfix:
		add(n.X)
	case *Infix:
		add(n.X, n.Y)
	case *Ternary:
		add(n.Cond, n.IfTrue, n.IfFalse)
	case *Assign:
		add(n.X, n.Y)
	case *Call:
		add(n.Fun)
		add(n.Args...)
	case *Spread:
		add(n.X)
	case *Member:
		add(n.X)
		if n.Computed {
			add(n.Index)
		} else if n.Attr != nil {
			add(n.Attr)
		}
	case *New:
		add(n.X)
	case *Func:
		if n.Name != nil {
			add(n.Name)
		}
		for _, p := range n.Params {
			add(p)
		}
		if n.Body != nil {
			add(n.Body)
		}
	}
	// Ident, literals, and Bad nodes have no children.
	return out
}
