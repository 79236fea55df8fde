package parser

import (
	"strconv"
	"strings"

	"github.com/sift-js/sift/ast"
	"github.com/sift-js/sift/token"
)

func (p *Parser) parseNumber() ast.Node {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return p.setTokenError(tok, "invalid number: %s", tok.Literal)
	}
	return p.alloc.number(ast.Number{
		ValuePos: tok.StartPosition,
		Literal:  tok.Literal,
		Value:    value,
	})
}

func (p *Parser) parseString() ast.Node {
	tok := p.curToken
	return p.alloc.string_(ast.String{
		ValuePos: tok.StartPosition,
		Literal:  tok.Literal,
		Value:    unescapeString(tok.Literal),
	})
}

// unescapeString resolves backslash escapes in a string literal body.
// Unrecognized escapes keep the escaped character, matching how
// JavaScript treats e.g. "\q" as "q".
func unescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i == len(runes)-1 {
			out.WriteRune(r)
			continue
		}
		i++
		switch runes[i] {
		case 'n':
			out.WriteRune('\n')
		case 't':
			out.WriteRune('\t')
		case 'r':
			out.WriteRune('\r')
		case 'b':
			out.WriteRune('\b')
		case 'f':
			out.WriteRune('\f')
		case 'v':
			out.WriteRune('\v')
		case '0':
			out.WriteRune(0)
		default:
			out.WriteRune(runes[i])
		}
	}
	return out.String()
}

func (p *Parser) parseTemplate() ast.Node {
	tok := p.curToken
	return &ast.Template{
		ValuePos: tok.StartPosition,
		Literal:  tok.Literal,
	}
}

// parseRegex splits a regex token into its pattern and flags. The literal
// includes the surrounding slashes, e.g. "/ab+c/gi".
func (p *Parser) parseRegex() ast.Node {
	tok := p.curToken
	lit := tok.Literal
	end := strings.LastIndexByte(lit, '/')
	pattern := ""
	flags := ""
	if end > 0 {
		pattern = lit[1:end]
		flags = lit[end+1:]
	}
	return &ast.Regex{
		ValuePos: tok.StartPosition,
		Literal:  lit,
		Pattern:  pattern,
		Flags:    flags,
	}
}

func (p *Parser) parseBoolean() ast.Node {
	return &ast.Bool{
		ValuePos: p.curToken.StartPosition,
		Value:    p.curTokenIs(token.TRUE),
	}
}

func (p *Parser) parseNull() ast.Node {
	return &ast.Null{NullPos: p.curToken.StartPosition}
}

func (p *Parser) parseUndefined() ast.Node {
	return &ast.Undefined{UndefinedPos: p.curToken.StartPosition}
}

// parseFunc parses a function, which may be a declaration or an
// expression depending on where it appears:
//
//	function add(a, b) { return a + b; }
//	const f = function(a) { return a; };
func (p *Parser) parseFunc() ast.Node {
	funcTok := p.curToken
	fn := &ast.Func{Func: funcTok.StartPosition}
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		fn.Name = p.newIdent(p.curToken)
	}
	if !p.expectPeek("Expected '(' after function name", token.LPAREN) {
		return nil
	}
	fn.Lparen = p.curToken.StartPosition
	params := p.parseFuncParams()
	if p.hadNewError() {
		return nil
	}
	fn.Params = params
	fn.Rparen = p.curToken.StartPosition
	if !p.expectPeek("Expected '{' before function body", token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	fn.Body = body
	return fn
}

// parseFuncParams parses a parenthesized parameter list of simple
// identifiers. The current token is the opening parenthesis; on success
// the current token is the closing parenthesis.
func (p *Parser) parseFuncParams() []*ast.Ident {
	params := []*ast.Ident{}
	p.eatNewlinesAfterComma()
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	if !p.expectPeek("Expected parameter name", token.IDENT) {
		return nil
	}
	params = append(params, p.newIdent(p.curToken))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // move to ','
		p.eatNewlinesAfterComma()
		if p.peekTokenIs(token.RPAREN) {
			break
		}
		if !p.expectPeek("Expected parameter name", token.IDENT) {
			return nil
		}
		params = append(params, p.newIdent(p.curToken))
	}
	if !p.skipNewlinesAndPeek(token.RPAREN) {
		p.peekError("Expected ')' after parameters", p.peekToken)
		return nil
	}
	p.nextToken() // move to ')'
	return params
}

// parseNewline allows an expression to begin on the next line, as inside
// parentheses. The newline itself produces no node.
func (p *Parser) parseNewline() ast.Node {
	p.nextToken()
	return p.parseNode(LOWEST)
}
