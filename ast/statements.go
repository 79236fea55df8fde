package ast

import (
	"bytes"
	"strings"

	"github.com/sift-js/sift/token"
)

// Program is the root node of every parsed file. It holds the ordered
// top-level statements and is the only node without a parent.
type Program struct {
	Stmts []Node // top-level statements
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.NoPos
}

func (p *Program) End() token.Position {
	if n := len(p.Stmts); n > 0 {
		return p.Stmts[n-1].End()
	}
	return token.NoPos
}

// First returns the first statement in the program, or nil if it is empty.
func (p *Program) First() Node {
	if len(p.Stmts) > 0 {
		return p.Stmts[0]
	}
	return nil
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, stmt := range p.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(stmt.String())
	}
	return out.String()
}

// Block is a node that holds a brace-delimited sequence of statements, used
// for function bodies and conditional branches.
type Block struct {
	Lbrace token.Position // position of "{"
	Stmts  []Node         // statements in the block
	Rbrace token.Position // position of "}"
}

func (s *Block) stmtNode() {}

func (s *Block) Pos() token.Position { return s.Lbrace }
func (s *Block) End() token.Position { return s.Rbrace.Advance(1) }

// EndsWithReturn reports whether the final statement in the block is a
// return statement.
func (s *Block) EndsWithReturn() bool {
	n := len(s.Stmts)
	if n == 0 {
		return false
	}
	_, isReturn := s.Stmts[n-1].(*Return)
	return isReturn
}

func (s *Block) String() string {
	var out bytes.Buffer
	for i, stmt := range s.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(stmt.String())
	}
	return out.String()
}

// VarDecl is a statement that declares a variable with an initial value.
// This covers "const x = value", "let x = value", and "var x = value".
type VarDecl struct {
	KindPos token.Position // position of the declaring keyword
	Kind    string         // "const", "let", or "var"
	Name    *Ident         // variable name
	Value   Expr           // initializer; nil only in recovered trees
}

func (s *VarDecl) stmtNode() {}

func (s *VarDecl) Pos() token.Position { return s.KindPos }

func (s *VarDecl) End() token.Position {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Name.End()
}

func (s *VarDecl) String() string {
	var out bytes.Buffer
	out.WriteString(s.Kind + " ")
	out.WriteString(s.Name.Name)
	out.WriteString(" = ")
	if s.Value != nil {
		out.WriteString(s.Value.String())
	}
	return out.String()
}

// Return defines a return statement with an optional value.
type Return struct {
	Return token.Position // position of "return" keyword
	Value  Expr           // returned value; nil for a bare return
}

func (s *Return) stmtNode() {}

func (s *Return) Pos() token.Position { return s.Return }

func (s *Return) End() token.Position {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Return.Advance(6) // len("return")
}

func (s *Return) String() string {
	var out bytes.Buffer
	out.WriteString("return")
	if s.Value != nil {
		out.WriteString(" " + s.Value.String())
	}
	return out.String()
}

// If is a statement node that represents an if statement with an optional
// else branch. The else branch is either a *Block or a nested *If for
// "else if" chains.
type If struct {
	If          token.Position // position of "if" keyword
	Cond        Expr           // condition
	Consequence *Block         // then branch
	Alternative Stmt           // *Block or *If; nil if no else
}

func (s *If) stmtNode() {}

func (s *If) Pos() token.Position { return s.If }

func (s *If) End() token.Position {
	if s.Alternative != nil {
		return s.Alternative.End()
	}
	return s.Consequence.End()
}

func (s *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(s.Cond.String())
	out.WriteString(") { ")
	out.WriteString(s.Consequence.String())
	out.WriteString(" }")
	if s.Alternative != nil {
		out.WriteString(" else ")
		if _, nested := s.Alternative.(*If); nested {
			out.WriteString(s.Alternative.String())
		} else {
			out.WriteString("{ ")
			out.WriteString(s.Alternative.String())
			out.WriteString(" }")
		}
	}
	return out.String()
}

// ExprStmt is a statement consisting of a single expression.
type ExprStmt struct {
	X Expr // the expression
}

func (s *ExprStmt) stmtNode() {}

func (s *ExprStmt) Pos() token.Position { return s.X.Pos() }
func (s *ExprStmt) End() token.Position { return s.X.End() }

func (s *ExprStmt) String() string { return s.X.String() }

// ImportSpec is a single named binding in an import or export clause, with
// an optional local alias ("a as b").
type ImportSpec struct {
	Name  *Ident // imported or exported name
	Alias *Ident // local alias; nil to bind under Name
}

func (s ImportSpec) String() string {
	if s.Alias != nil {
		return s.Name.Name + " as " + s.Alias.Name
	}
	return s.Name.Name
}

// Import is a statement node for an ES module import declaration. Any
// combination of a default binding, a namespace binding, and named bindings
// may be present; a bare "import 'path'" has none.
type Import struct {
	Import  token.Position // position of "import" keyword
	Default *Ident         // default binding; nil if none
	Star    *Ident         // namespace binding for "* as ns"; nil if none
	Named   []ImportSpec   // named bindings
	Path    *String        // module specifier
}

func (s *Import) stmtNode() {}

func (s *Import) Pos() token.Position { return s.Import }
func (s *Import) End() token.Position { return s.Path.End() }

func (s *Import) String() string {
	var out bytes.Buffer
	out.WriteString("import ")
	var clauses []string
	if s.Default != nil {
		clauses = append(clauses, s.Default.Name)
	}
	if s.Star != nil {
		clauses = append(clauses, "* as "+s.Star.Name)
	}
	if len(s.Named) > 0 {
		names := make([]string, 0, len(s.Named))
		for _, spec := range s.Named {
			names = append(names, spec.String())
		}
		clauses = append(clauses, "{ "+strings.Join(names, ", ")+" }")
	}
	if len(clauses) > 0 {
		out.WriteString(strings.Join(clauses, ", "))
		out.WriteString(" from ")
	}
	out.WriteString(s.Path.String())
	return out.String()
}

// Export is a statement node for an ES module export declaration. Exactly
// one of Decl, X, or Named is populated: a declaration form
// ("export const x = 1"), a default expression ("export default expr"), or
// a clause form ("export { a, b as c }", optionally re-exported from Path).
type Export struct {
	Export  token.Position // position of "export" keyword
	Default bool           // true for "export default"
	Decl    Stmt           // exported declaration; nil for other forms
	X       Expr           // default-exported expression; nil for other forms
	Named   []ImportSpec   // named bindings for the clause form
	Path    *String        // re-export source; nil unless "from" is present
}

func (s *Export) stmtNode() {}

func (s *Export) Pos() token.Position { return s.Export }

func (s *Export) End() token.Position {
	switch {
	case s.Path != nil:
		return s.Path.End()
	case s.Decl != nil:
		return s.Decl.End()
	case s.X != nil:
		return s.X.End()
	}
	return s.Export.Advance(6) // len("export")
}

func (s *Export) String() string {
	var out bytes.Buffer
	out.WriteString("export ")
	switch {
	case s.Default:
		out.WriteString("default ")
		if s.Decl != nil {
			out.WriteString(s.Decl.String())
		} else if s.X != nil {
			out.WriteString(s.X.String())
		}
	case s.Decl != nil:
		out.WriteString(s.Decl.String())
	default:
		names := make([]string, 0, len(s.Named))
		for _, spec := range s.Named {
			names = append(names, spec.String())
		}
		out.WriteString("{ " + strings.Join(names, ", ") + " }")
		if s.Path != nil {
			out.WriteString(" from ")
			out.WriteString(s.Path.String())
		}
	}
	return out.String()
}
