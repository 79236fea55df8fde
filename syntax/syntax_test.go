package syntax

import (
	"context"
	"errors"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/sift-js/sift/ast"
	"github.com/sift-js/sift/parser"
	"github.com/sift-js/sift/token"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, err := parser.Parse(context.Background(), input)
	assert.Nil(t, err)
	return program
}

func TestTransformerFunc(t *testing.T) {
	called := false
	transformer := TransformerFunc(func(p *ast.Program) (*ast.Program, error) {
		called = true
		return p, nil
	})

	program := parse(t, "1 + 2;")
	result, err := transformer.Transform(program)

	assert.Nil(t, err)
	assert.True(t, called)
	assert.Equal(t, result, program)
}

func TestTransformerReturnsError(t *testing.T) {
	transformer := TransformerFunc(func(p *ast.Program) (*ast.Program, error) {
		return nil, errors.New("transform failed")
	})

	program := parse(t, "1 + 2;")
	_, err := transformer.Transform(program)

	assert.NotNil(t, err)
	assert.Equal(t, err.Error(), "transform failed")
}

func TestTransformerModifiesAST(t *testing.T) {
	// Doubles every number literal in place.
	transformer := TransformerFunc(func(p *ast.Program) (*ast.Program, error) {
		for node := range ast.Preorder(p) {
			if num, ok := node.(*ast.Number); ok {
				num.Value *= 2
			}
		}
		return p, nil
	})

	program := parse(t, "5;")
	result, err := transformer.Transform(program)

	assert.Nil(t, err)
	stmt := result.Stmts[0].(*ast.ExprStmt)
	num := stmt.X.(*ast.Number)
	assert.Equal(t, num.Value, float64(10))
}

func TestValidatorFunc(t *testing.T) {
	called := false
	validator := ValidatorFunc(func(p *ast.Program) []ValidationError {
		called = true
		return nil
	})

	program := parse(t, "1 + 2;")
	errs := validator.Validate(program)

	assert.True(t, called)
	assert.Equal(t, len(errs), 0)
}

func TestSyntaxValidatorAllowsByDefault(t *testing.T) {
	validator := NewSyntaxValidator(RestrictedSyntax{})
	program := parse(t, "const x = f(1, ...rest) ? `a` : /b/g;")
	assert.Equal(t, len(validator.Validate(program)), 0)
}

func TestSyntaxValidatorRestrictions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		config  RestrictedSyntax
		message string
	}{
		{
			name:    "variable declaration",
			input:   "const x = 1;",
			config:  RestrictedSyntax{DisallowVariableDecl: true},
			message: "variable declarations are not allowed",
		},
		{
			name:    "assignment",
			input:   "x = 1;",
			config:  RestrictedSyntax{DisallowAssignment: true},
			message: "assignment is not allowed",
		},
		{
			name:    "increment",
			input:   "x++;",
			config:  RestrictedSyntax{DisallowAssignment: true},
			message: "assignment is not allowed",
		},
		{
			name:    "function definition",
			input:   "function f() { return 1; }",
			config:  RestrictedSyntax{DisallowFuncDef: true},
			message: "function definitions are not allowed",
		},
		{
			name:    "function call",
			input:   "f(1);",
			config:  RestrictedSyntax{DisallowFuncCall: true},
			message: "function calls are not allowed",
		},
		{
			name:    "constructor call",
			input:   "new Foo(1);",
			config:  RestrictedSyntax{DisallowNew: true},
			message: "constructor calls are not allowed",
		},
		{
			name:    "return",
			input:   "function f() { return 1; }",
			config:  RestrictedSyntax{DisallowReturn: true},
			message: "return statements are not allowed",
		},
		{
			name:    "if statement",
			input:   "if (x) { y; }",
			config:  RestrictedSyntax{DisallowIf: true},
			message: "if statements are not allowed",
		},
		{
			name:    "ternary",
			input:   "a ? b : c;",
			config:  RestrictedSyntax{DisallowTernary: true},
			message: "conditional expressions are not allowed",
		},
		{
			name:    "spread",
			input:   "f(...args);",
			config:  RestrictedSyntax{DisallowSpread: true},
			message: "spread syntax is not allowed",
		},
		{
			name:    "optional chaining",
			input:   "a?.b;",
			config:  RestrictedSyntax{DisallowOptionalChain: true},
			message: "optional chaining is not allowed",
		},
		{
			name:    "template literal",
			input:   "`hello`;",
			config:  RestrictedSyntax{DisallowTemplates: true},
			message: "template literals are not allowed",
		},
		{
			name:    "regex literal",
			input:   "/ab+c/i;",
			config:  RestrictedSyntax{DisallowRegex: true},
			message: "regex literals are not allowed",
		},
		{
			name:    "import",
			input:   `import { a } from "mod";`,
			config:  RestrictedSyntax{DisallowImports: true},
			message: "import statements are not allowed",
		},
		{
			name:    "export",
			input:   "export const x = 1;",
			config:  RestrictedSyntax{DisallowExports: true},
			message: "export statements are not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewSyntaxValidator(tt.config)
			errs := validator.Validate(parse(t, tt.input))
			assert.True(t, len(errs) >= 1)
			assert.Equal(t, errs[0].Message, tt.message)
			assert.NotNil(t, errs[0].Node)
		})
	}
}

func TestSyntaxValidatorNoViolation(t *testing.T) {
	// Restrictions only fire on the constructs they name.
	validator := NewSyntaxValidator(RestrictedSyntax{DisallowIf: true})
	program := parse(t, "const x = 1 + 2;")
	assert.Equal(t, len(validator.Validate(program)), 0)
}

func TestSyntaxValidatorMultipleViolations(t *testing.T) {
	validator := NewSyntaxValidator(RestrictedSyntax{DisallowVariableDecl: true})
	program := parse(t, "const x = 1;\nlet y = 2;\nvar z = 3;")
	errs := validator.Validate(program)
	assert.Equal(t, len(errs), 3)
}

func TestValidationErrorPosition(t *testing.T) {
	validator := NewSyntaxValidator(RestrictedSyntax{DisallowAssignment: true})
	program := parse(t, "1 + 2;\nx = 3;")
	errs := validator.Validate(program)
	assert.Equal(t, len(errs), 1)
	assert.Equal(t, errs[0].Position.LineNumber(), 2)
	assert.Equal(t, errs[0].Error(), "assignment is not allowed at line 2, column 1")
}

func TestValidationErrorWithFile(t *testing.T) {
	err := ValidationError{
		Message:  "function calls are not allowed",
		Position: token.Position{File: "main.js", Line: 4, Column: 2},
	}
	assert.Equal(t, err.Error(), "function calls are not allowed at main.js:5:3")
}

func TestValidationErrors(t *testing.T) {
	empty := NewValidationErrors(nil)
	assert.Equal(t, empty.Error(), "no validation errors")
	assert.Nil(t, empty.Unwrap())

	one := NewValidationErrors([]ValidationError{
		{Message: "spread syntax is not allowed"},
	})
	assert.Equal(t, one.Error(), "spread syntax is not allowed at line 1, column 1")

	two := NewValidationErrors([]ValidationError{
		{Message: "first"},
		{Message: "second"},
	})
	assert.True(t, len(two.Error()) > 0)
	assert.Equal(t, two.Unwrap().Error(), "first at line 1, column 1")
}
