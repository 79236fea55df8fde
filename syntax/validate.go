package syntax

import "github.com/sift-js/sift/ast"

// RestrictedSyntax describes language constructs a program is not
// permitted to use. The zero value allows everything. This is useful
// for embedding contexts that accept untrusted snippets, such as
// expression-only configuration fields.
type RestrictedSyntax struct {
	DisallowVariableDecl  bool // const, let, and var declarations
	DisallowAssignment    bool // assignment and increment/decrement
	DisallowFuncDef       bool // function declarations and expressions
	DisallowFuncCall      bool // call expressions
	DisallowNew           bool // constructor invocation
	DisallowReturn        bool // return statements
	DisallowIf            bool // if/else statements
	DisallowTernary       bool // conditional expressions
	DisallowSpread        bool // spread arguments
	DisallowOptionalChain bool // a?.b member access
	DisallowTemplates     bool // template literals
	DisallowRegex         bool // regex literals
	DisallowImports       bool // import statements
	DisallowExports       bool // export statements
}

// SyntaxValidator validates an AST against a RestrictedSyntax configuration.
type SyntaxValidator struct {
	config RestrictedSyntax
}

// NewSyntaxValidator creates a validator for the given configuration.
func NewSyntaxValidator(config RestrictedSyntax) *SyntaxValidator {
	return &SyntaxValidator{config: config}
}

// Validate checks the AST against the syntax configuration.
func (v *SyntaxValidator) Validate(program *ast.Program) []ValidationError {
	var errors []ValidationError

	for node := range ast.Preorder(program) {
		if err := v.checkNode(node); err != nil {
			errors = append(errors, *err)
		}
	}

	return errors
}

func (v *SyntaxValidator) checkNode(node ast.Node) *ValidationError {
	switch n := node.(type) {
	case *ast.VarDecl:
		if v.config.DisallowVariableDecl {
			return violation(node, "variable declarations are not allowed")
		}

	case *ast.Assign, *ast.Postfix:
		if v.config.DisallowAssignment {
			return violation(node, "assignment is not allowed")
		}

	case *ast.Func:
		if v.config.DisallowFuncDef {
			return violation(node, "function definitions are not allowed")
		}

	case *ast.Call:
		if v.config.DisallowFuncCall {
			return violation(node, "function calls are not allowed")
		}

	case *ast.New:
		if v.config.DisallowNew {
			return violation(node, "constructor calls are not allowed")
		}

	case *ast.Return:
		if v.config.DisallowReturn {
			return violation(node, "return statements are not allowed")
		}

	case *ast.If:
		if v.config.DisallowIf {
			return violation(node, "if statements are not allowed")
		}

	case *ast.Ternary:
		if v.config.DisallowTernary {
			return violation(node, "conditional expressions are not allowed")
		}

	case *ast.Spread:
		if v.config.DisallowSpread {
			return violation(node, "spread syntax is not allowed")
		}

	case *ast.Member:
		if n.Optional && v.config.DisallowOptionalChain {
			return violation(node, "optional chaining is not allowed")
		}

	case *ast.Template:
		if v.config.DisallowTemplates {
			return violation(node, "template literals are not allowed")
		}

	case *ast.Regex:
		if v.config.DisallowRegex {
			return violation(node, "regex literals are not allowed")
		}

	case *ast.Import:
		if v.config.DisallowImports {
			return violation(node, "import statements are not allowed")
		}

	case *ast.Export:
		if v.config.DisallowExports {
			return violation(node, "export statements are not allowed")
		}
	}

	return nil
}

func violation(node ast.Node, message string) *ValidationError {
	return &ValidationError{
		Message:  message,
		Node:     node,
		Position: node.Pos(),
	}
}
