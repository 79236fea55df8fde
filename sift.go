// Package sift processes JavaScript source code. It tokenizes source into
// a stream of position-tracked tokens and parses it into an abstract
// syntax tree, collecting as many syntax errors as possible rather than
// stopping at the first.
//
// Parse a program:
//
//	program, err := sift.Parse(ctx, `const x = 1;`)
//
// Or inspect the raw token stream:
//
//	tokens := sift.Tokenize(`const x = 1;`)
package sift

import (
	"context"

	"github.com/sift-js/sift/ast"
	"github.com/sift-js/sift/lexer"
	"github.com/sift-js/sift/parser"
	"github.com/sift-js/sift/syntax"
	"github.com/sift-js/sift/token"
)

// Tokenize converts JavaScript source code into a flat list of tokens.
// The list always ends with an EOF token. Malformed input produces ILLEGAL
// tokens whose literal describes the problem; tokenization itself never
// fails.
func Tokenize(source string) []token.Token {
	return lexer.Tokenize(source)
}

// Parse converts JavaScript source code into an AST. Syntax errors do not
// stop the parse: the returned error collects every diagnostic found, and
// the returned program contains the statements that parsed successfully.
func Parse(ctx context.Context, source string, opts ...parser.Option) (*ast.Program, error) {
	return parser.Parse(ctx, source, opts...)
}

// Valid reports whether the source parses without syntax errors.
func Valid(ctx context.Context, source string) bool {
	_, err := parser.Parse(ctx, source)
	return err == nil
}

// Check parses source and runs the given validators over the resulting
// AST. Parse errors are returned as-is; validator findings are wrapped
// in a *syntax.ValidationErrors.
func Check(ctx context.Context, source string, validators ...syntax.Validator) (*ast.Program, error) {
	program, err := parser.Parse(ctx, source)
	if err != nil {
		return program, err
	}
	var found []syntax.ValidationError
	for _, v := range validators {
		found = append(found, v.Validate(program)...)
	}
	if len(found) > 0 {
		return program, syntax.NewValidationErrors(found)
	}
	return program, nil
}
