package parser

import (
	"github.com/sift-js/sift/ast"
	"github.com/sift-js/sift/internal/arena"
)

// nodeAllocator owns the typed arenas backing a single parse. The
// high-frequency expression kinds each get a dedicated arena so the nodes of
// one tree live in a handful of chunks and are discarded together with the
// AST. Rare statement forms are not worth an arena and use ordinary heap
// allocation at their construction sites.
type nodeAllocator struct {
	idents    arena.Arena[ast.Ident]
	numbers   arena.Arena[ast.Number]
	strings   arena.Arena[ast.String]
	prefixes  arena.Arena[ast.Prefix]
	infixes   arena.Arena[ast.Infix]
	members   arena.Arena[ast.Member]
	calls     arena.Arena[ast.Call]
	exprStmts arena.Arena[ast.ExprStmt]
}

func (a *nodeAllocator) ident(v ast.Ident) *ast.Ident {
	return a.idents.New(v)
}

func (a *nodeAllocator) number(v ast.Number) *ast.Number {
	return a.numbers.New(v)
}

func (a *nodeAllocator) string_(v ast.String) *ast.String {
	return a.strings.New(v)
}

func (a *nodeAllocator) prefix(v ast.Prefix) *ast.Prefix {
	return a.prefixes.New(v)
}

func (a *nodeAllocator) infix(v ast.Infix) *ast.Infix {
	return a.infixes.New(v)
}

func (a *nodeAllocator) member(v ast.Member) *ast.Member {
	return a.members.New(v)
}

func (a *nodeAllocator) call(v ast.Call) *ast.Call {
	return a.calls.New(v)
}

func (a *nodeAllocator) exprStmt(v ast.ExprStmt) *ast.ExprStmt {
	return a.exprStmts.New(v)
}
