package parser

import (
	"github.com/sift-js/sift/ast"
	"github.com/sift-js/sift/token"
)

// parseVarDecl parses a const, let, or var declaration:
//
//	const x = 1;
//	let y = f(2);
//
// It consumes the terminating semicolon if present. A declaration may also
// end at a newline, closing brace, or end of input.
func (p *Parser) parseVarDecl() ast.Node {
	kindTok := p.curToken
	if !p.expectPeek("Expected variable name", token.IDENT) {
		return nil
	}
	name := p.newIdent(p.curToken)
	if !p.expectPeek("Expected '=' after variable name", token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if fn, ok := value.(*ast.Func); ok && fn.Name == nil {
		fn.Name = name
	}
	decl := &ast.VarDecl{
		KindPos: kindTok.StartPosition,
		Kind:    kindTok.Literal,
		Name:    name,
		Value:   value,
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return decl
	}
	if statementTerminators[p.peekToken.Type] {
		return decl
	}
	p.peekError("Expected ';' after variable declaration", p.peekToken)
	return nil
}

// parseReturn parses a return statement. The return value is optional:
// "return;" and a return followed by a newline or closing brace produce a
// Return node with a nil Value.
func (p *Parser) parseReturn() ast.Node {
	retTok := p.curToken
	if statementTerminators[p.peekToken.Type] {
		return &ast.Return{Return: retTok.StartPosition}
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	return &ast.Return{Return: retTok.StartPosition, Value: value}
}

// parseIf parses an if statement with an optional else branch, which may
// itself be another if statement:
//
//	if (cond) { ... } else if (other) { ... } else { ... }
func (p *Parser) parseIf() ast.Node {
	ifTok := p.curToken
	if !p.expectPeek("Expected '(' after 'if'", token.LPAREN) {
		return nil
	}
	p.nextToken()
	p.eatNewlines()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.skipNewlinesAndPeek(token.RPAREN) {
		p.peekError("Expected ')' after condition", p.peekToken)
		return nil
	}
	p.nextToken() // move to ')'
	if !p.expectPeek("Expected '{' after condition", token.LBRACE) {
		return nil
	}
	consequence := p.parseBlock()
	if consequence == nil {
		return nil
	}
	stmt := &ast.If{
		If:          ifTok.StartPosition,
		Cond:        cond,
		Consequence: consequence,
	}
	// An else may appear on the line after the closing brace
	if p.skipNewlinesAndPeek(token.ELSE) {
		p.nextToken() // move to 'else'
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			alt := p.parseIf()
			if alt == nil {
				return nil
			}
			stmt.Alternative = alt.(*ast.If)
			return stmt
		}
		if !p.expectPeek("Expected '{' after 'else'", token.LBRACE) {
			return nil
		}
		alt := p.parseBlock()
		if alt == nil {
			return nil
		}
		stmt.Alternative = alt
	}
	return stmt
}

// parseBlock parses a braced sequence of statements. The current token
// must be the opening brace. On success, the current token is the closing
// brace.
func (p *Parser) parseBlock() *ast.Block {
	lbrace := p.curToken.StartPosition
	var statements []ast.Node
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.setTokenError(p.curToken, "unterminated block statement")
			return nil
		}
		if p.cancelled() || p.tooManyErrors() {
			return nil
		}
		stmt := p.parseStatementStrict()
		if stmt != nil {
			statements = append(statements, stmt)
		} else if p.hadNewError() {
			return nil
		}
		p.nextToken()
	}
	return &ast.Block{
		Lbrace: lbrace,
		Stmts:  statements,
		Rbrace: p.curToken.StartPosition,
	}
}

// parseImport parses the supported import statement forms:
//
//	import "./module.js";
//	import defaultName from "./module.js";
//	import * as ns from "./module.js";
//	import { a, b as c } from "./module.js";
//	import defaultName, { a } from "./module.js";
//	import defaultName, * as ns from "./module.js";
func (p *Parser) parseImport() ast.Node {
	importTok := p.curToken
	stmt := &ast.Import{Import: importTok.StartPosition}

	// Bare import: import "./module.js";
	if p.peekTokenIs(token.STRING) {
		p.nextToken()
		stmt.Path = p.parseModulePath()
		return stmt
	}

	// Default binding: import name ...
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		stmt.Default = p.newIdent(p.curToken)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	switch p.peekToken.Type {
	case token.ASTERISK:
		// Namespace binding: * as ns
		p.nextToken()
		if !p.expectPeek("Expected 'as' after '*'", token.AS) {
			return nil
		}
		if !p.expectPeek("Expected namespace name after 'as'", token.IDENT) {
			return nil
		}
		stmt.Star = p.newIdent(p.curToken)
	case token.LBRACE:
		// Named bindings: { a, b as c }
		p.nextToken()
		specs := p.parseImportSpecs()
		if specs == nil {
			return nil
		}
		stmt.Named = specs
	default:
		if stmt.Default == nil {
			p.peekError("Expected import bindings or module path", p.peekToken)
			return nil
		}
	}

	if !p.expectPeek("Expected 'from' after import bindings", token.FROM) {
		return nil
	}
	if !p.expectPeek("Expected module path string", token.STRING) {
		return nil
	}
	stmt.Path = p.parseModulePath()
	return stmt
}

// parseImportSpecs parses the contents of a named import or export clause.
// The current token must be the opening brace. On success, the current
// token is the closing brace.
func (p *Parser) parseImportSpecs() []ast.ImportSpec {
	specs := []ast.ImportSpec{}
	p.eatNewlinesAfterComma()
	for !p.peekTokenIs(token.RBRACE) {
		if !p.expectPeek("Expected identifier in import clause", token.IDENT) {
			return nil
		}
		spec := ast.ImportSpec{Name: p.newIdent(p.curToken)}
		if p.peekTokenIs(token.AS) {
			p.nextToken()
			if !p.expectPeek("Expected identifier after 'as'", token.IDENT) {
				return nil
			}
			spec.Alias = p.newIdent(p.curToken)
		}
		specs = append(specs, spec)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.eatNewlinesAfterComma()
			continue
		}
		if !p.skipNewlinesAndPeek(token.RBRACE) {
			p.peekError("Expected ',' or '}' in import clause", p.peekToken)
			return nil
		}
	}
	p.nextToken() // move to '}'
	return specs
}

func (p *Parser) eatNewlinesAfterComma() {
	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// parseModulePath converts the current STRING token into a String node.
// The current token must be a STRING.
func (p *Parser) parseModulePath() *ast.String {
	tok := p.curToken
	return &ast.String{
		ValuePos: tok.StartPosition,
		Literal:  tok.Literal,
		Value:    unescapeString(tok.Literal),
	}
}

// parseExport parses the supported export statement forms:
//
//	export const x = 1;
//	export function f() {}
//	export default expr;
//	export { a, b as c };
//	export { a } from "./module.js";
func (p *Parser) parseExport() ast.Node {
	exportTok := p.curToken
	stmt := &ast.Export{Export: exportTok.StartPosition}

	switch p.peekToken.Type {
	case token.CONST, token.LET, token.VAR:
		p.nextToken()
		decl := p.parseVarDecl()
		if decl == nil {
			return nil
		}
		stmt.Decl = decl.(ast.Stmt)
	case token.FUNCTION:
		p.nextToken()
		fn := p.parseFunc()
		if fn == nil {
			return nil
		}
		stmt.Decl = fn.(*ast.Func)
	case token.DEFAULT:
		p.nextToken()
		p.nextToken()
		x := p.parseExpression(LOWEST)
		if x == nil {
			return nil
		}
		stmt.Default = true
		stmt.X = x
	case token.LBRACE:
		p.nextToken()
		specs := p.parseImportSpecs()
		if specs == nil {
			return nil
		}
		stmt.Named = specs
		// Re-export: export { a } from "./module.js";
		if p.peekTokenIs(token.FROM) {
			p.nextToken()
			if !p.expectPeek("Expected module path string", token.STRING) {
				return nil
			}
			stmt.Path = p.parseModulePath()
		}
	default:
		p.peekError("Expected declaration or export clause after 'export'", p.peekToken)
		return nil
	}
	return stmt
}

// parseExpressionStatement parses an expression used in statement position.
func (p *Parser) parseExpressionStatement() ast.Node {
	node := p.parseNode(LOWEST)
	if node == nil {
		return nil
	}
	if expr, ok := node.(ast.Expr); ok {
		return p.alloc.exprStmt(ast.ExprStmt{X: expr})
	}
	return node
}
