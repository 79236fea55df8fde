package parser

import (
	"github.com/sift-js/sift/ast"
	"github.com/sift-js/sift/token"
)

func (p *Parser) parseIdent() ast.Node {
	return p.newIdent(p.curToken)
}

// parsePrefixExpr parses a unary operator applied to an operand, e.g.
// !x, -x, +x, typeof x.
func (p *Parser) parsePrefixExpr() ast.Node {
	opTok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return p.alloc.prefix(ast.Prefix{
		OpPos: opTok.StartPosition,
		Op:    opTok.Literal,
		X:     operand,
	})
}

// parseInfixExpr parses a binary operator expression. Most operators are
// left-associative; exponentiation binds right-to-left.
func (p *Parser) parseInfixExpr(left ast.Node) ast.Node {
	leftExpr, ok := left.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid operand for operator %q", p.curToken.Literal)
		return nil
	}
	opTok := p.curToken
	precedence := p.currentPrecedence()
	if opTok.Type == token.POW {
		// Right-associative: parse the right side at one lower precedence
		// so that 2 ** 3 ** 2 groups as 2 ** (3 ** 2).
		precedence--
	}
	p.nextToken()
	p.eatNewlines()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return p.alloc.infix(ast.Infix{
		X:     leftExpr,
		OpPos: opTok.StartPosition,
		Op:    opTok.Literal,
		Y:     right,
	})
}

// parseGroupedExpr parses a parenthesized expression. Newlines are allowed
// after the opening and before the closing parenthesis.
func (p *Parser) parseGroupedExpr() ast.Node {
	p.nextToken()
	p.eatNewlines()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.skipNewlinesAndPeek(token.RPAREN) {
		p.peekError("Expected ')' after expression", p.peekToken)
		return nil
	}
	p.nextToken() // move to ')'
	return expr
}

// parseTernary parses a conditional expression: cond ? ifTrue : ifFalse.
// The current token is '?'. Conditional expressions are right-associative,
// so "a ? b : c ? d : e" groups as "a ? b : (c ? d : e)".
func (p *Parser) parseTernary(cond ast.Node) ast.Node {
	condExpr, ok := cond.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid condition for ternary expression")
		return nil
	}
	question := p.curToken.StartPosition
	p.nextToken()
	ifTrue := p.parseExpression(LOWEST)
	if ifTrue == nil {
		return nil
	}
	if !p.expectPeek("Expected ':' in ternary expression", token.COLON) {
		return nil
	}
	colon := p.curToken.StartPosition
	p.nextToken()
	ifFalse := p.parseExpression(TERNARY - 1)
	if ifFalse == nil {
		return nil
	}
	return &ast.Ternary{
		Cond:     condExpr,
		Question: question,
		IfTrue:   ifTrue,
		Colon:    colon,
		IfFalse:  ifFalse,
	}
}

// parseAssign parses assignment and compound assignment. The target must
// be an identifier or member expression.
func (p *Parser) parseAssign(left ast.Node) ast.Node {
	opTok := p.curToken
	switch left.(type) {
	case *ast.Ident, *ast.Member:
	default:
		p.setTokenError(opTok, "invalid assignment target")
		return nil
	}
	p.nextToken()
	// Right-associative: a = b = c groups as a = (b = c)
	value := p.parseExpression(ASSIGN - 1)
	if value == nil {
		return nil
	}
	return &ast.Assign{
		X:     left.(ast.Expr),
		OpPos: opTok.StartPosition,
		Op:    opTok.Literal,
		Y:     value,
	}
}

// parsePostfix parses x++ or x--. The current token is the operator and
// the operand has already been parsed.
func (p *Parser) parsePostfix(left ast.Node) ast.Node {
	opTok := p.curToken
	switch left.(type) {
	case *ast.Ident, *ast.Member:
	default:
		p.setTokenError(opTok, "invalid operand for %q", opTok.Literal)
		return nil
	}
	return &ast.Postfix{
		X:     left.(ast.Expr),
		OpPos: opTok.StartPosition,
		Op:    opTok.Literal,
	}
}

// parseCall parses a call expression. The current token is the opening
// parenthesis and the callee has already been parsed.
func (p *Parser) parseCall(fun ast.Node) ast.Node {
	funExpr, ok := fun.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid call target")
		return nil
	}
	lparen := p.curToken.StartPosition
	args := p.parseNodeList(token.RPAREN, "Expected ')' after arguments")
	if p.hadNewError() {
		return nil
	}
	return p.alloc.call(ast.Call{
		Fun:    funExpr,
		Lparen: lparen,
		Args:   args,
		Rparen: p.curToken.StartPosition,
	})
}

// parseNodeList parses a comma-separated list of expressions ending with
// the given token, e.g. the arguments of a call. The current token is the
// list opener. On success, the current token is the end token. Newlines
// are allowed around elements, and a trailing comma before the end token
// is accepted.
func (p *Parser) parseNodeList(end token.Type, msg string) []ast.Node {
	nodes := []ast.Node{}
	p.eatNewlinesAfterComma()
	if p.peekTokenIs(end) {
		p.nextToken()
		return nodes
	}
	p.nextToken()
	first := p.parseNode(LOWEST)
	if first == nil {
		return nil
	}
	nodes = append(nodes, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // move to ','
		p.eatNewlinesAfterComma()
		if p.peekTokenIs(end) {
			break
		}
		p.nextToken()
		node := p.parseNode(LOWEST)
		if node == nil {
			return nil
		}
		nodes = append(nodes, node)
	}
	if !p.skipNewlinesAndPeek(end) {
		p.peekError(msg, p.peekToken)
		return nil
	}
	p.nextToken() // move to end token
	return nodes
}

// parseMember parses property access with '.' or '?.'. The current token
// is the accessor and the object has already been parsed. Keywords are
// permitted as property names, so "obj.default" is valid.
func (p *Parser) parseMember(left ast.Node) ast.Node {
	leftExpr, ok := left.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid member access target")
		return nil
	}
	opTok := p.curToken
	optional := opTok.Type == token.QUESTION_DOT
	p.nextToken()
	if !isPropertyName(p.curToken) {
		p.setTokenError(p.curToken, "Expected property name after '%s'", opTok.Literal)
		return nil
	}
	return p.alloc.member(ast.Member{
		X:        leftExpr,
		Period:   opTok.StartPosition,
		Attr:     p.newIdent(p.curToken),
		Optional: optional,
	})
}

// isPropertyName reports whether a token may appear after '.' as a
// property name. Identifiers and keywords both qualify.
func isPropertyName(t token.Token) bool {
	switch t.Type {
	case token.IDENT, token.CONST, token.LET, token.VAR, token.FUNCTION,
		token.RETURN, token.IF, token.ELSE, token.TRUE, token.FALSE,
		token.NULL, token.UNDEFINED, token.NEW, token.TYPEOF, token.IMPORT,
		token.EXPORT, token.DEFAULT, token.FROM, token.AS:
		return true
	}
	return false
}

// parseIndex parses computed member access: obj[expr]. The current token
// is the opening bracket.
func (p *Parser) parseIndex(left ast.Node) ast.Node {
	leftExpr, ok := left.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid index target")
		return nil
	}
	lbrack := p.curToken.StartPosition
	p.nextToken()
	p.eatNewlines()
	index := p.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	if !p.skipNewlinesAndPeek(token.RBRACKET) {
		p.peekError("Expected ']' after index expression", p.peekToken)
		return nil
	}
	p.nextToken() // move to ']'
	return p.alloc.member(ast.Member{
		X:        leftExpr,
		Period:   lbrack,
		Index:    index,
		Rbrack:   p.curToken.StartPosition,
		Computed: true,
	})
}

// parseNew parses a new expression: new Ctor(args). The operand is parsed
// at call precedence so that member access and the argument list bind to
// the constructor, while trailing binary operators do not.
func (p *Parser) parseNew() ast.Node {
	newTok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return &ast.New{New: newTok.StartPosition, X: operand}
}

// parseSpread parses a spread element: ...expr. Valid only inside
// argument lists; the parser accepts it wherever an expression may start
// and leaves placement validation to later passes.
func (p *Parser) parseSpread() ast.Node {
	tok := p.curToken
	p.nextToken()
	x := p.parseExpression(LOWEST)
	if x == nil {
		return nil
	}
	return &ast.Spread{Ellipsis: tok.StartPosition, X: x}
}
