package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sift-js/sift/token"
)

// Number is an expression node that holds a numeric literal. JavaScript has
// a single number type, so the parsed value is always a float64.
type Number struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text (e.g., "42", "3.14")
	Value    float64        // the parsed value
}

func (x *Number) exprNode() {}

func (x *Number) Pos() token.Position { return x.ValuePos }
func (x *Number) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Number) String() string { return x.Literal }

// String is an expression node that holds a string literal.
type String struct {
	ValuePos token.Position // position of the opening quote
	Literal  string         // raw text between the quotes, escapes intact
	Value    string         // the unescaped string value
}

func (x *String) exprNode() {}

func (x *String) Pos() token.Position { return x.ValuePos }

// End accounts for the two quote characters not present in the literal.
func (x *String) End() token.Position { return x.ValuePos.Advance(len(x.Literal) + 2) }

func (x *String) String() string { return fmt.Sprintf("%q", x.Value) }

// Template is an expression node that holds a backtick-delimited template
// literal. Interpolation placeholders are carried verbatim in the literal
// text; they are not parsed into sub-expressions.
type Template struct {
	ValuePos token.Position // position of the opening backtick
	Literal  string         // raw text between the backticks
}

func (x *Template) exprNode() {}

func (x *Template) Pos() token.Position { return x.ValuePos }
func (x *Template) End() token.Position { return x.ValuePos.Advance(len(x.Literal) + 2) }

func (x *Template) String() string { return "`" + x.Literal + "`" }

// Regex is an expression node that holds a regular expression literal.
type Regex struct {
	ValuePos token.Position // position of the opening slash
	Literal  string         // full literal text including slashes and flags
	Pattern  string         // text between the slashes
	Flags    string         // trailing flags (e.g., "gi")
}

func (x *Regex) exprNode() {}

func (x *Regex) Pos() token.Position { return x.ValuePos }
func (x *Regex) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Regex) String() string { return x.Literal }

// Bool is an expression node that holds a boolean literal.
type Bool struct {
	ValuePos token.Position // position of "true" or "false"
	Value    bool           // the boolean value
}

func (x *Bool) exprNode() {}

func (x *Bool) Pos() token.Position { return x.ValuePos }

func (x *Bool) End() token.Position {
	if x.Value {
		return x.ValuePos.Advance(4) // len("true")
	}
	return x.ValuePos.Advance(5) // len("false")
}

func (x *Bool) String() string {
	if x.Value {
		return "true"
	}
	return "false"
}

// Null is an expression node that holds a null literal.
type Null struct {
	NullPos token.Position // position of "null" keyword
}

func (x *Null) exprNode() {}

func (x *Null) Pos() token.Position { return x.NullPos }
func (x *Null) End() token.Position { return x.NullPos.Advance(4) } // len("null")

func (x *Null) String() string { return "null" }

// Undefined is an expression node that holds an undefined literal.
type Undefined struct {
	UndefinedPos token.Position // position of "undefined" keyword
}

func (x *Undefined) exprNode() {}

func (x *Undefined) Pos() token.Position { return x.UndefinedPos }
func (x *Undefined) End() token.Position { return x.UndefinedPos.Advance(9) } // len("undefined")

func (x *Undefined) String() string { return "undefined" }

// Func is a node that holds a function. A named function at statement level
// is a declaration; in any other position it is a function expression, in
// which case Name may be nil.
type Func struct {
	Func   token.Position // position of "function" keyword
	Name   *Ident         // function name; nil for anonymous functions
	Lparen token.Position // position of "("
	Params []*Ident       // parameter names
	Rparen token.Position // position of ")"
	Body   *Block         // function body
}

func (x *Func) exprNode() {}
func (x *Func) stmtNode() {} // named functions are also statements

func (x *Func) Pos() token.Position { return x.Func }

func (x *Func) End() token.Position {
	if x.Body != nil {
		return x.Body.End()
	}
	return x.Rparen.Advance(1)
}

func (x *Func) String() string {
	var out bytes.Buffer
	params := make([]string, 0, len(x.Params))
	for _, p := range x.Params {
		params = append(params, p.Name)
	}
	out.WriteString("function")
	if x.Name != nil {
		out.WriteString(" ")
		out.WriteString(x.Name.Name)
	}
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") { ")
	out.WriteString(x.Body.String())
	out.WriteString(" }")
	return out.String()
}
