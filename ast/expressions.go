package ast

import (
	"bytes"
	"strings"

	"github.com/sift-js/sift/token"
)

// Ident is an expression node that refers to a variable by name.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Ident) String() string { return x.Name }

// Prefix is an operator expression where the operator precedes the operand.
// Examples include "!ok", "-x", and "typeof x".
type Prefix struct {
	OpPos token.Position // position of operator
	Op    string         // operator: "!", "-", "+", "typeof"
	X     Expr           // operand
}

func (x *Prefix) exprNode() {}

func (x *Prefix) Pos() token.Position { return x.OpPos }
func (x *Prefix) End() token.Position { return x.X.End() }

func (x *Prefix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	if x.Op == "typeof" {
		out.WriteString(" ")
	}
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// Postfix is an operator expression where the operator follows the operand,
// as in "i++" and "i--".
type Postfix struct {
	X     Expr           // operand
	OpPos token.Position // position of operator
	Op    string         // operator: "++" or "--"
}

func (x *Postfix) exprNode() {}

func (x *Postfix) Pos() token.Position { return x.X.Pos() }
func (x *Postfix) End() token.Position { return x.OpPos.Advance(len(x.Op)) }

func (x *Postfix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(x.Op)
	out.WriteString(")")
	return out.String()
}

// Infix is an operator expression where the operator is between the operands.
// Examples include "x + y" and "a === b".
type Infix struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "+", "-", "*", "===", etc.
	Y     Expr           // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position { return x.X.Pos() }
func (x *Infix) End() token.Position { return x.Y.End() }

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Ternary is an expression node that evaluates to one of two values based
// on a condition.
type Ternary struct {
	Cond     Expr           // condition
	Question token.Position // position of "?"
	IfTrue   Expr           // value if condition is truthy
	Colon    token.Position // position of ":"
	IfFalse  Expr           // value if condition is falsy
}

func (x *Ternary) exprNode() {}

func (x *Ternary) Pos() token.Position { return x.Cond.Pos() }
func (x *Ternary) End() token.Position { return x.IfFalse.End() }

func (x *Ternary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Cond.String())
	out.WriteString(" ? ")
	out.WriteString(x.IfTrue.String())
	out.WriteString(" : ")
	out.WriteString(x.IfFalse.String())
	out.WriteString(")")
	return out.String()
}

// Assign is an expression node that assigns a value to a target, optionally
// combined with an arithmetic operation ("x = 1", "x += 1").
type Assign struct {
	X     Expr           // assignment target (Ident or Member)
	OpPos token.Position // position of operator
	Op    string         // operator: "=", "+=", "-=", "*=", "/="
	Y     Expr           // assigned value
}

func (x *Assign) exprNode() {}

func (x *Assign) Pos() token.Position { return x.X.Pos() }
func (x *Assign) End() token.Position { return x.Y.End() }

func (x *Assign) String() string {
	var out bytes.Buffer
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	return out.String()
}

// Call is an expression node that describes the invocation of a function.
type Call struct {
	Fun    Expr           // function expression
	Lparen token.Position // position of "("
	Args   []Node         // function arguments (Expr or Spread)
	Rparen token.Position // position of ")"
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

func (x *Call) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	out.WriteString(x.Fun.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// Spread represents a spread expression (...expr) in a call argument list.
type Spread struct {
	Ellipsis token.Position // position of "..."
	X        Expr           // expression being spread
}

func (x *Spread) exprNode() {}

func (x *Spread) Pos() token.Position { return x.Ellipsis }
func (x *Spread) End() token.Position { return x.X.End() }

func (x *Spread) String() string { return "..." + x.X.String() }

// Member is an expression node for property access, covering both the dot
// form "a.b" and the computed form "a[b]", plus optional chaining "a?.b".
type Member struct {
	X        Expr           // object expression
	Period   token.Position // position of ".", "?.", or "["
	Attr     *Ident         // property name; nil when Computed
	Index    Expr           // bracket expression; nil unless Computed
	Rbrack   token.Position // position of "]" for computed access
	Computed bool           // true for "a[b]"
	Optional bool           // true for "a?.b"
}

func (x *Member) exprNode() {}

func (x *Member) Pos() token.Position { return x.X.Pos() }

func (x *Member) End() token.Position {
	if x.Computed {
		return x.Rbrack.Advance(1)
	}
	return x.Attr.End()
}

func (x *Member) String() string {
	var out bytes.Buffer
	out.WriteString(x.X.String())
	switch {
	case x.Computed:
		out.WriteString("[")
		out.WriteString(x.Index.String())
		out.WriteString("]")
	case x.Optional:
		out.WriteString("?.")
		out.WriteString(x.Attr.Name)
	default:
		out.WriteString(".")
		out.WriteString(x.Attr.Name)
	}
	return out.String()
}

// New is an expression node for constructor invocation, as in "new Foo(1)".
// X is typically a Call; a bare "new Foo" has an Ident or Member instead.
type New struct {
	New token.Position // position of "new" keyword
	X   Expr           // constructor expression
}

func (x *New) exprNode() {}

func (x *New) Pos() token.Position { return x.New }
func (x *New) End() token.Position { return x.X.End() }

func (x *New) String() string { return "new " + x.X.String() }
