package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/sift-js/sift/ast"
)

// Core parser tests (parser.go)
// - Token position tracking
// - Context cancellation
// - Max depth limits
// - Multi-error reporting and recovery
// - Newline handling policy
// - Bad input handling

func TestTokenLineCol(t *testing.T) {
	code := `
const x = 5;
const y = 10;
	`
	program, err := Parse(context.Background(), code)
	assert.Nil(t, err)

	statements := program.Stmts
	assert.Len(t, statements, 2)

	stmt1 := statements[0].(*ast.VarDecl)
	stmt2 := statements[1].(*ast.VarDecl)

	start := stmt1.Pos()
	end := stmt1.End()

	assert.Equal(t, 2, start.LineNumber())
	assert.Equal(t, 1, start.ColumnNumber())
	assert.Equal(t, 2, end.LineNumber())
	assert.Equal(t, 12, end.ColumnNumber())

	start = stmt2.Pos()
	end = stmt2.End()

	assert.Equal(t, 3, start.LineNumber())
	assert.Equal(t, 1, start.ColumnNumber())
	assert.Equal(t, 3, end.LineNumber())
	assert.Equal(t, 13, end.ColumnNumber())
}

func TestFilenameInErrors(t *testing.T) {
	_, err := Parse(context.Background(), `@@@`, WithFilename("test.js"))
	assert.NotNil(t, err)

	errs, ok := err.(*Errors)
	assert.True(t, ok)
	assert.Equal(t, "test.js", errs.First().File())
}

func TestErrorTypeAndLocation(t *testing.T) {
	errs := parseFail(t, "const x 42;")
	first := errs.First()
	assert.Equal(t, "syntax error", first.Type())
	assert.Equal(t, "Expected '=' after variable name", first.Message())

	loc := first.Location()
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 9, loc.Column)
	assert.Equal(t, "const x 42;", loc.Source)
	assert.Equal(t, "1:9", loc.String())

	_, err := Parse(context.Background(), "const x 42;", WithFilename("a.js"))
	assert.NotNil(t, err)
	assert.Equal(t, "a.js:1:9", err.(*Errors).First().Location().String())
}

func TestEmptyInput(t *testing.T) {
	program, err := Parse(context.Background(), "")
	assert.Nil(t, err)
	assert.NotNil(t, program)
	assert.Len(t, program.Stmts, 0)

	program, err = Parse(context.Background(), "   \n\n\t  ")
	assert.Nil(t, err)
	assert.Len(t, program.Stmts, 0)
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, "const x = 1;")
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMaxDepth(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 600; i++ {
		sb.WriteString("(")
	}
	sb.WriteString("1")
	for i := 0; i < 600; i++ {
		sb.WriteString(")")
	}
	parenInput := sb.String()

	_, err := Parse(context.Background(), parenInput)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "maximum nesting depth")

	_, err = Parse(context.Background(), parenInput, WithMaxDepth(2000))
	assert.Nil(t, err)

	// Deeply nested function calls
	sb.Reset()
	for i := 0; i < 600; i++ {
		sb.WriteString("f(")
	}
	sb.WriteString("1")
	for i := 0; i < 600; i++ {
		sb.WriteString(")")
	}
	_, err = Parse(context.Background(), sb.String())
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "maximum nesting depth")

	// Custom lower depth limit
	_, err = Parse(context.Background(), `((((((1))))))`, WithMaxDepth(5))
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "maximum nesting depth")
}

func TestMaxErrorsCap(t *testing.T) {
	input := strings.Repeat("const;\n", 25)
	_, err := Parse(context.Background(), input)
	assert.NotNil(t, err)

	errs, ok := err.(*Errors)
	assert.True(t, ok)
	assert.Equal(t, MaxErrors, errs.Count())
}

func TestErrorRecovery(t *testing.T) {
	// The bad first statement should not prevent the second from parsing
	program, err := Parse(context.Background(), "const x 42;\nlet y = 1;")
	assert.NotNil(t, err)

	errs, ok := err.(*Errors)
	assert.True(t, ok)
	assert.Equal(t, 1, errs.Count())
	assert.Equal(t, "Expected '=' after variable name", errs.First().Message())

	assert.Len(t, program.Stmts, 1)
	decl := program.Stmts[0].(*ast.VarDecl)
	assert.Equal(t, "y", decl.Name.Name)
}

func TestMultipleErrors(t *testing.T) {
	_, err := Parse(context.Background(), "const x 1;\nconst 2;\nconst z = @;")
	assert.NotNil(t, err)

	errs, ok := err.(*Errors)
	assert.True(t, ok)
	assert.Equal(t, 3, errs.Count())

	messages := make([]string, 0, errs.Count())
	for _, e := range errs.Errors() {
		messages = append(messages, e.Message())
	}
	assert.Equal(t, []string{
		"Expected '=' after variable name",
		"Expected variable name",
		"Unexpected character",
	}, messages)
}

func TestNoInfiniteLoopOnBadInput(t *testing.T) {
	inputs := []string{
		"const x 42;",
		"const",
		"const x =",
		")",
		"}",
		"((",
		"@@@@",
		"if (",
		"function f(",
		"1 + + + ;",
		"import from",
		"export",
	}
	for _, input := range inputs {
		_, err := Parse(context.Background(), input)
		assert.NotNil(t, err, "expected error for input: %q", input)
	}
}

func TestNewlinePolicy(t *testing.T) {
	// Trailing operator continues the expression
	program, err := Parse(context.Background(), "x +\ny")
	assert.Nil(t, err)
	assert.Len(t, program.Stmts, 1)
	infix := program.Stmts[0].(*ast.ExprStmt).X.(*ast.Infix)
	assert.Equal(t, "+", infix.Op)

	// Newline at the start of a line terminates the expression
	program, err = Parse(context.Background(), "x\ny")
	assert.Nil(t, err)
	assert.Len(t, program.Stmts, 2)

	// Leading operator starts a new statement
	program, err = Parse(context.Background(), "x\n+ y")
	assert.Nil(t, err)
	assert.Len(t, program.Stmts, 2)
	_, ok := program.Stmts[1].(*ast.ExprStmt).X.(*ast.Prefix)
	assert.True(t, ok)

	// Newlines inside parentheses are fine
	program, err = Parse(context.Background(), "(\nx + y\n)")
	assert.Nil(t, err)
	assert.Len(t, program.Stmts, 1)

	// Newlines after commas in argument lists are fine
	program, err = Parse(context.Background(), "f(1,\n2,\n3)")
	assert.Nil(t, err)
	assert.Len(t, program.Stmts, 1)
	call := program.Stmts[0].(*ast.ExprStmt).X.(*ast.Call)
	assert.Len(t, call.Args, 3)
}

func TestStatementTermination(t *testing.T) {
	// Semicolons, newlines, and EOF all terminate statements
	for _, input := range []string{"let x = 1;", "let x = 1\n", "let x = 1"} {
		program, err := Parse(context.Background(), input)
		assert.Nil(t, err, "input: %q", input)
		assert.Len(t, program.Stmts, 1)
	}

	// Two expressions on one line without a separator is an error
	_, err := Parse(context.Background(), "1 2")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Unexpected token: 2")

	// Empty statements are allowed
	program, err := Parse(context.Background(), ";;;")
	assert.Nil(t, err)
	assert.Len(t, program.Stmts, 0)
}

func TestCommentsAreIgnored(t *testing.T) {
	code := `
// leading comment
const x = 1; // trailing comment
/* block
   comment */
const y = /* inline */ 2;
	`
	program, err := Parse(context.Background(), code)
	assert.Nil(t, err)
	assert.Len(t, program.Stmts, 2)
}

func TestUnexpectedEndOfInput(t *testing.T) {
	_, err := Parse(context.Background(), "const x = ")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "unexpected end of input")
}

func TestKeywordInExpressionPosition(t *testing.T) {
	_, err := Parse(context.Background(), "let x = if;")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Unexpected token: if")
}
