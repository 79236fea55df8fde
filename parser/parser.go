// Package parser is used to generate the abstract syntax tree (AST) for a
// JavaScript source file.
//
// A parser is created by calling New() with a lexer as input. The parser
// should then be used only once, by calling parser.Parse() to produce the
// AST. Syntax errors do not abort the parse: the parser records them,
// skips to the next statement boundary, and continues, so a single Parse
// call reports as many diagnostics as possible.
package parser

import (
	"context"
	"fmt"

	"github.com/sift-js/sift/ast"
	"github.com/sift-js/sift/lexer"
	"github.com/sift-js/sift/token"
)

type (
	prefixParseFn func() ast.Node
	infixParseFn  func(ast.Node) ast.Node
)

// statementTerminators defines tokens that can end a statement.
//
// NEWLINE HANDLING POLICY:
//  1. Trailing operators continue expressions: "x +\ny" parses as one expression
//  2. Newlines at start of line terminate expressions: "x\ny" parses as two statements
//  3. Inside parentheses: leading/trailing newlines allowed: "(\nx + y\n)"
//  4. In argument lists: newlines after commas allowed: "f(1,\n2)"
//  5. Postfix operators (++, --) must be on same line as operand
//
// This mirrors how JavaScript's automatic semicolon insertion behaves for
// the grammar subset handled here.
var statementTerminators = map[token.Type]bool{
	token.SEMICOLON: true,
	token.NEWLINE:   true,
	token.RBRACE:    true,
	token.EOF:       true,
}

// Parse the provided input as JavaScript source code and return the AST.
// This is a shorthand way to create a Lexer and Parser and then call Parse
// on that.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	// Extract filename from options before creating the parser, so that the
	// first tokens have proper location context.
	var filename string
	for _, opt := range options {
		var scratch Parser
		opt(&scratch)
		if scratch.filename != "" {
			filename = scratch.filename
			break
		}
	}

	l := lexer.New(input)
	if filename != "" {
		l.SetFilename(filename)
	}

	p := New(l, options...)
	return p.Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in error locations.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// MaxErrors is the maximum number of errors to collect before stopping.
const MaxErrors = 10

// Parser object
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// l is our lexer
	l *lexer.Lexer

	// prevToken holds the previous token, which we already processed.
	prevToken token.Token

	// curToken holds the current token from the lexer.
	curToken token.Token

	// peekToken holds the next token from the lexer.
	peekToken token.Token

	// parsing errors collected during parsing
	errors []ParserError

	// stmtErrorCount tracks error count at start of current statement.
	// Used by inner methods to detect if an error was added during this statement.
	stmtErrorCount int

	// prefixParseFns holds a map of parsing methods for
	// prefix-based syntax.
	prefixParseFns map[token.Type]prefixParseFn

	// infixParseFns holds a map of parsing methods for
	// infix-based syntax.
	infixParseFns map[token.Type]infixParseFn

	// alloc owns the node arenas for this parse
	alloc nodeAllocator

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{
		l:              l,
		prefixParseFns: map[token.Type]prefixParseFn{},
		infixParseFns:  map[token.Type]infixParseFn{},
		maxDepth:       DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}

	// Prime the token pump
	p.nextToken() // makes curToken=<empty>, peekToken=token[0]
	p.nextToken() // makes curToken=token[0], peekToken=token[1]

	// Register prefix-functions
	p.registerPrefix(token.IDENT, p.parseIdent)
	p.registerPrefix(token.NUMBER, p.parseNumber)
	p.registerPrefix(token.STRING, p.parseString)
	p.registerPrefix(token.TEMPLATE, p.parseTemplate)
	p.registerPrefix(token.REGEX, p.parseRegex)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.NULL, p.parseNull)
	p.registerPrefix(token.UNDEFINED, p.parseUndefined)
	p.registerPrefix(token.BANG, p.parsePrefixExpr)
	p.registerPrefix(token.MINUS, p.parsePrefixExpr)
	p.registerPrefix(token.PLUS, p.parsePrefixExpr)
	p.registerPrefix(token.TYPEOF, p.parsePrefixExpr)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpr)
	p.registerPrefix(token.FUNCTION, p.parseFunc)
	p.registerPrefix(token.NEW, p.parseNew)
	p.registerPrefix(token.SPREAD, p.parseSpread)
	p.registerPrefix(token.NEWLINE, p.parseNewline)
	p.registerPrefix(token.ILLEGAL, p.illegalToken)
	p.registerPrefix(token.EOF, p.unexpectedEOF)

	// Register infix functions
	p.registerInfix(token.PLUS, p.parseInfixExpr)
	p.registerInfix(token.MINUS, p.parseInfixExpr)
	p.registerInfix(token.ASTERISK, p.parseInfixExpr)
	p.registerInfix(token.SLASH, p.parseInfixExpr)
	p.registerInfix(token.MOD, p.parseInfixExpr)
	p.registerInfix(token.POW, p.parseInfixExpr)
	p.registerInfix(token.EQ, p.parseInfixExpr)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(token.STRICT_EQ, p.parseInfixExpr)
	p.registerInfix(token.STRICT_NOT_EQ, p.parseInfixExpr)
	p.registerInfix(token.LT, p.parseInfixExpr)
	p.registerInfix(token.LT_EQUALS, p.parseInfixExpr)
	p.registerInfix(token.GT, p.parseInfixExpr)
	p.registerInfix(token.GT_EQUALS, p.parseInfixExpr)
	p.registerInfix(token.LT_LT, p.parseInfixExpr)
	p.registerInfix(token.GT_GT, p.parseInfixExpr)
	p.registerInfix(token.GT_GT_GT, p.parseInfixExpr)
	p.registerInfix(token.AND, p.parseInfixExpr)
	p.registerInfix(token.OR, p.parseInfixExpr)
	p.registerInfix(token.NULLISH, p.parseInfixExpr)
	p.registerInfix(token.AMPERSAND, p.parseInfixExpr)
	p.registerInfix(token.BITOR, p.parseInfixExpr)
	p.registerInfix(token.CARET, p.parseInfixExpr)
	p.registerInfix(token.ASSIGN, p.parseAssign)
	p.registerInfix(token.PLUS_EQ, p.parseAssign)
	p.registerInfix(token.MINUS_EQ, p.parseAssign)
	p.registerInfix(token.ASTERISK_EQ, p.parseAssign)
	p.registerInfix(token.SLASH_EQ, p.parseAssign)
	p.registerInfix(token.QUESTION, p.parseTernary)
	p.registerInfix(token.LPAREN, p.parseCall)
	p.registerInfix(token.PERIOD, p.parseMember)
	p.registerInfix(token.QUESTION_DOT, p.parseMember)
	p.registerInfix(token.LBRACKET, p.parseIndex)

	return p
}

// nextToken moves to the next significant token from the lexer, updating
// all of prevToken, curToken, and peekToken. Comment tokens are skipped
// here; they are part of the token stream but never part of the grammar.
func (p *Parser) nextToken() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	p.peekToken = p.l.Next()
	for p.peekToken.Type == token.COMMENT || p.peekToken.Type == token.BLOCK_COMMENT {
		p.peekToken = p.l.Next()
	}
}

// Parse the program that is provided via the lexer.
// Returns the AST and any errors encountered. If there are errors, the AST
// may be partial (containing only successfully parsed statements).
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.ctx = ctx
	// Parse the entire input program as a series of statements.
	// When a statement fails, we synchronize and continue to collect more errors.
	var statements []ast.Node
	for p.curToken.Type != token.EOF {
		// Check for context timeout
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		// Stop if we've collected too many errors
		if p.tooManyErrors() {
			break
		}
		// Track error count for this statement so inner methods can detect new errors
		p.stmtErrorCount = len(p.errors)
		stmt := p.parseStatementStrict()
		if stmt != nil {
			statements = append(statements, stmt)
		} else if p.hadNewError() {
			// Statement failed - synchronize and continue
			p.synchronize()
		}
		p.nextToken()
	}
	if p.hasErrors() {
		return &ast.Program{Stmts: statements}, NewErrors(p.errors)
	}
	return &ast.Program{Stmts: statements}, nil
}

// registerPrefix registers a function for handling a prefix-based statement.
func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

// registerInfix registers a function for handling an infix-based statement.
func (p *Parser) registerInfix(tokenType token.Type, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// addError appends an error to the errors slice.
func (p *Parser) addError(err ParserError) {
	p.errors = append(p.errors, err)
}

// hasErrors returns true if any errors have been recorded.
func (p *Parser) hasErrors() bool {
	return len(p.errors) > 0
}

// tooManyErrors returns true if error limit has been reached.
func (p *Parser) tooManyErrors() bool {
	return len(p.errors) >= MaxErrors
}

// hadNewError returns true if an error was added during the current statement.
func (p *Parser) hadNewError() bool {
	return len(p.errors) > p.stmtErrorCount
}

// synchronize skips tokens until a statement boundary is reached.
// This is used for error recovery to continue parsing after an error.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) {
		// Stop at statement terminators
		if statementTerminators[p.curToken.Type] {
			return
		}
		// Stop at statement-starting keywords
		switch p.curToken.Type {
		case token.CONST, token.LET, token.VAR, token.RETURN, token.IF,
			token.FUNCTION, token.IMPORT, token.EXPORT:
			return
		}
		prevPos := p.curToken.StartPosition
		p.nextToken()
		// Safety: if we didn't advance (lexer stuck), bail out
		if p.curToken.StartPosition == prevPos {
			return
		}
	}
}

func (p *Parser) noPrefixParseFnError(t token.Token) {
	p.setTokenError(t, "Unexpected token: %s", tokenDescription(t))
}

// peekError records an error because the next token is not the expected type.
func (p *Parser) peekError(msg string, got token.Token) {
	opts := ErrorOpts{
		Message:       msg,
		File:          p.l.Filename(),
		StartPosition: got.StartPosition,
		EndPosition:   got.EndPosition,
		SourceCode:    p.l.GetLineText(got),
	}
	if got.Type != token.EOF {
		tok := got
		opts.Token = &tok
	}
	p.addError(NewSyntaxError(opts))
}

func (p *Parser) setError(err ParserError) {
	p.addError(err)
}

// cancelled checks if the parsing context has been cancelled.
// Returns true if cancelled, in which case parsing should stop.
func (p *Parser) cancelled() bool {
	if p.ctx == nil {
		return false
	}
	select {
	case <-p.ctx.Done():
		p.setError(NewParserError(ErrorOpts{
			ErrType: "context error",
			Message: p.ctx.Err().Error(),
		}))
		return true
	default:
		return false
	}
}

func (p *Parser) parseStatementStrict() ast.Node {
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	// statement should end with a semicolon or the next token should be
	// a statement terminator
	if !p.curTokenIs(token.SEMICOLON) && !statementTerminators[p.peekToken.Type] {
		p.setTokenError(p.peekToken, "Unexpected token: %s", tokenDescription(p.peekToken))
		return nil
	}
	return stmt
}

func (p *Parser) parseStatement() ast.Node {
	var stmt ast.Node
	switch p.curToken.Type {
	case token.CONST, token.LET, token.VAR:
		return p.parseVarDecl() // consumes its own terminator
	case token.FUNCTION:
		stmt = p.parseFunc()
	case token.RETURN:
		stmt = p.parseReturn()
	case token.IF:
		stmt = p.parseIf()
	case token.IMPORT:
		stmt = p.parseImport()
	case token.EXPORT:
		stmt = p.parseExport()
	case token.NEWLINE, token.SEMICOLON:
		stmt = nil
	default:
		stmt = p.parseExpressionStatement()
	}
	// Consume trailing semicolon if present
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseNode(precedence int) ast.Node {
	if p.hadNewError() {
		return nil
	}
	// Check recursion depth
	p.depth++
	if p.depth > p.maxDepth {
		p.setTokenError(p.curToken, "maximum nesting depth exceeded")
		p.depth--
		return nil
	}
	defer func() { p.depth-- }()

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if p.hadNewError() || leftExp == nil {
		return nil
	}
	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if p.hadNewError() || leftExp == nil {
			return nil
		}
	}
	// Check for postfix operators (++ or --)
	if p.peekTokenIs(token.PLUS_PLUS) || p.peekTokenIs(token.MINUS_MINUS) {
		p.nextToken()
		return p.parsePostfix(leftExp)
	}
	return leftExp
}

func (p *Parser) parseExpression(precedence int) ast.Expr {
	node := p.parseNode(precedence)
	if node == nil {
		return nil
	}
	if p.hadNewError() {
		return nil
	}
	if expr, ok := node.(ast.Expr); ok {
		return expr
	}
	p.setTokenError(p.prevToken, "expected expression")
	return nil
}

// illegalToken reports a token the lexer flagged as malformed. The token's
// literal carries the lexer's diagnostic, e.g. "Unterminated string".
func (p *Parser) illegalToken() ast.Node {
	return p.setTokenError(p.curToken, "%s", p.curToken.Literal)
}

func (p *Parser) unexpectedEOF() ast.Node {
	p.addError(NewSyntaxError(ErrorOpts{
		Message:       "unexpected end of input",
		File:          p.l.Filename(),
		StartPosition: p.curToken.StartPosition,
		EndPosition:   p.curToken.EndPosition,
		SourceCode:    p.l.GetLineText(p.curToken),
	}))
	return nil
}

func (p *Parser) setTokenError(t token.Token, msg string, args ...interface{}) ast.Node {
	opts := ErrorOpts{
		Message:       fmt.Sprintf(msg, args...),
		File:          p.l.Filename(),
		StartPosition: t.StartPosition,
		EndPosition:   t.EndPosition,
		SourceCode:    p.l.GetLineText(t),
	}
	if t.Type != token.EOF {
		tok := t
		opts.Token = &tok
	}
	p.setError(NewSyntaxError(opts))
	return nil
}

// newIdent creates a new Ident node from a token.
func (p *Parser) newIdent(tok token.Token) *ast.Ident {
	return p.alloc.ident(ast.Ident{NamePos: tok.StartPosition, Name: tok.Literal})
}

// curTokenIs returns true if the current token has the given type.
func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

// peekTokenIs returns true if the next token has the given type.
func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek validates that the next token is of the given type, and
// advances if it is. If it's a different type, the given message is
// recorded as an error against the unexpected token.
func (p *Parser) expectPeek(msg string, t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(msg, p.peekToken)
	return false
}

// peekPrecedence returns the precedence of the next token.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// currentPrecedence returns the precedence of the current token.
func (p *Parser) currentPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) eatNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// skipNewlinesAndPeek checks if the given token type appears after optional
// newlines. If found, it skips the newlines and returns true (with peekToken
// now being the target). If not found, it returns false without consuming
// any tokens.
func (p *Parser) skipNewlinesAndPeek(targetType token.Type) bool {
	// If peek is already the target, no newlines to skip
	if p.peekTokenIs(targetType) {
		return true
	}
	// If peek is not a newline, target doesn't follow
	if !p.peekTokenIs(token.NEWLINE) {
		return false
	}
	// Save parser and lexer state
	savedCur := p.curToken
	savedPeek := p.peekToken
	savedLexer := p.l.SaveState()

	// Skip through newlines
	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	// Check if we found the target
	if p.peekTokenIs(targetType) {
		// Success - keep the new state (newlines consumed)
		return true
	}

	// Target not found - restore state
	p.curToken = savedCur
	p.peekToken = savedPeek
	p.l.RestoreState(savedLexer)
	return false
}
