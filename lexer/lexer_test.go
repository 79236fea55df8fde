package lexer

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/sift-js/sift/token"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
const ten = 10.5;

function add(x, y) {
	return x + y;
}

let result = add(five, ten);
`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5"},
		{token.SEMICOLON, ";"},
		{token.NEWLINE, "\n"},
		{token.CONST, "const"},
		{token.IDENT, "ten"},
		{token.ASSIGN, "="},
		{token.NUMBER, "10.5"},
		{token.SEMICOLON, ";"},
		{token.NEWLINE, "\n"},
		{token.NEWLINE, "\n"},
		{token.FUNCTION, "function"},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.NEWLINE, "\n"},
		{token.RETURN, "return"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.SEMICOLON, ";"},
		{token.NEWLINE, "\n"},
		{token.RBRACE, "}"},
		{token.NEWLINE, "\n"},
		{token.NEWLINE, "\n"},
		{token.LET, "let"},
		{token.IDENT, "result"},
		{token.ASSIGN, "="},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.COMMA, ","},
		{token.IDENT, "ten"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `== === != !== <= >= << >> >>> && || ?? ?. => ... ** += -= *= ++ -- & | ^ % ? :`
	expected := []token.Type{
		token.EQ, token.STRICT_EQ, token.NOT_EQ, token.STRICT_NOT_EQ,
		token.LT_EQUALS, token.GT_EQUALS, token.LT_LT, token.GT_GT,
		token.GT_GT_GT, token.AND, token.OR, token.NULLISH,
		token.QUESTION_DOT, token.ARROW, token.SPREAD, token.POW,
		token.PLUS_EQ, token.MINUS_EQ, token.ASTERISK_EQ,
		token.PLUS_PLUS, token.MINUS_MINUS, token.AMPERSAND, token.BITOR,
		token.CARET, token.MOD, token.QUESTION, token.COLON,
		token.EOF,
	}
	l := New(input)
	for i, want := range expected {
		tok := l.Next()
		if tok.Type != want {
			t.Fatalf("tokens[%d] - expected=%q, got=%q (literal=%q)",
				i, want, tok.Type, tok.Literal)
		}
	}
}

func TestSlashAssign(t *testing.T) {
	// "/=" only reads as an operator after an expression; at expression
	// start a leading "/" opens a regex literal.
	toks := Tokenize("x /= 2")
	assert.Len(t, toks, 4)
	assert.Equal(t, token.IDENT, toks[0].Type)
	assert.Equal(t, token.SLASH_EQ, toks[1].Type)
	assert.Equal(t, "/=", toks[1].Literal)
	assert.Equal(t, token.NUMBER, toks[2].Type)
}

func TestMaximalMunch(t *testing.T) {
	// "===" is one token, never "==" followed by "=".
	toks := Tokenize("a === b")
	assert.Len(t, toks, 4)
	assert.Equal(t, token.STRICT_EQ, toks[1].Type)
	assert.Equal(t, "===", toks[1].Literal)

	// "..." is a spread, ".." is two periods.
	toks = Tokenize("...")
	assert.Equal(t, token.SPREAD, toks[0].Type)
	toks = Tokenize("..")
	assert.Equal(t, token.PERIOD, toks[0].Type)
	assert.Equal(t, token.PERIOD, toks[1].Type)
}

func TestKeywords(t *testing.T) {
	input := "let const function return if else new typeof import export from as default true false null undefined"
	expected := []token.Type{
		token.LET, token.CONST, token.FUNCTION, token.RETURN, token.IF,
		token.ELSE, token.NEW, token.TYPEOF, token.IMPORT, token.EXPORT,
		token.FROM, token.AS, token.DEFAULT, token.TRUE, token.FALSE,
		token.NULL, token.UNDEFINED, token.EOF,
	}
	l := New(input)
	for i, want := range expected {
		tok := l.Next()
		assert.Equal(t, want, tok.Type, "tokens[%d]", i)
	}
}

func TestIdentifiers(t *testing.T) {
	toks := Tokenize("foo _bar $baz café x1")
	assert.Len(t, toks, 6)
	for _, tok := range toks[:5] {
		assert.Equal(t, token.IDENT, tok.Type)
	}
	assert.Equal(t, "café", toks[3].Literal)
	assert.Equal(t, "x1", toks[4].Literal)
}

func TestNumbers(t *testing.T) {
	toks := Tokenize("0 42 3.14")
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, "0", toks[0].Literal)
	assert.Equal(t, "42", toks[1].Literal)
	assert.Equal(t, "3.14", toks[2].Literal)

	// A trailing "." is not part of the number.
	toks = Tokenize("1.")
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, "1", toks[0].Literal)
	assert.Equal(t, token.PERIOD, toks[1].Type)

	// Member access on a number literal.
	toks = Tokenize("1.toString")
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, token.PERIOD, toks[1].Type)
	assert.Equal(t, token.IDENT, toks[2].Type)
}

func TestStrings(t *testing.T) {
	l := New(`"hello" 'world'`)
	tok := l.Next()
	assert.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "hello", tok.Literal)
	tok = l.Next()
	assert.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "world", tok.Literal)
}

func TestStringEscapes(t *testing.T) {
	// The literal is the raw span between the quotes; escapes are kept.
	toks := Tokenize(`'it\'s'`)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, `it\'s`, toks[0].Literal)

	toks = Tokenize(`"a\"b\\c"`)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, `a\"b\\c`, toks[0].Literal)
}

func TestUnterminatedString(t *testing.T) {
	toks := Tokenize(`"abc`)
	assert.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Type)
	assert.Equal(t, "Unterminated string", toks[0].Literal)
	assert.Equal(t, token.EOF, toks[1].Type)

	// An escape at end of input is still unterminated.
	toks = Tokenize(`"abc\`)
	assert.Equal(t, token.ILLEGAL, toks[0].Type)
	assert.Equal(t, "Unterminated string", toks[0].Literal)
}

func TestTemplates(t *testing.T) {
	toks := Tokenize("`hello ${name}`")
	assert.Equal(t, token.TEMPLATE, toks[0].Type)
	assert.Equal(t, "hello ${name}", toks[0].Literal)

	// Templates may span lines.
	toks = Tokenize("`a\nb` x")
	assert.Equal(t, token.TEMPLATE, toks[0].Type)
	assert.Equal(t, "a\nb", toks[0].Literal)
	x := toks[1]
	assert.Equal(t, token.IDENT, x.Type)
	assert.Equal(t, 1, x.StartPosition.Line)

	toks = Tokenize("`oops")
	assert.Equal(t, token.ILLEGAL, toks[0].Type)
	assert.Equal(t, "Unterminated template literal", toks[0].Literal)
}

func TestComments(t *testing.T) {
	toks := Tokenize("let x // trailing\n/* block */ y")
	expected := []token.Type{
		token.LET, token.IDENT, token.COMMENT, token.NEWLINE,
		token.BLOCK_COMMENT, token.IDENT, token.EOF,
	}
	assert.Len(t, toks, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, toks[i].Type, "tokens[%d]", i)
	}
	assert.Equal(t, "// trailing", toks[2].Literal)
	assert.Equal(t, "/* block */", toks[4].Literal)
}

func TestUnterminatedBlockComment(t *testing.T) {
	// An unterminated block comment swallows the rest of the input but is
	// not an error.
	toks := Tokenize("x /* never closed")
	assert.Len(t, toks, 3)
	assert.Equal(t, token.IDENT, toks[0].Type)
	assert.Equal(t, token.BLOCK_COMMENT, toks[1].Type)
	assert.Equal(t, "/* never closed", toks[1].Literal)
	assert.Equal(t, token.EOF, toks[2].Type)
}

func TestRegexVersusDivision(t *testing.T) {
	// After an identifier, "/" is division.
	toks := Tokenize("a / b")
	assert.Equal(t, token.SLASH, toks[1].Type)

	// After "=", "/" starts a regex.
	toks = Tokenize("x = /ab+c/gi")
	assert.Equal(t, token.REGEX, toks[2].Type)
	assert.Equal(t, "/ab+c/gi", toks[2].Literal)

	// After "(", "," and "return" a regex is allowed.
	toks = Tokenize("f(/a/, /b/)")
	assert.Equal(t, token.REGEX, toks[2].Type)
	assert.Equal(t, token.REGEX, toks[4].Type)
	toks = Tokenize("return /x/")
	assert.Equal(t, token.REGEX, toks[1].Type)

	// After a closing paren or a number, "/" is division.
	toks = Tokenize("(a) / b")
	assert.Equal(t, token.SLASH, toks[3].Type)
	toks = Tokenize("10 / 2")
	assert.Equal(t, token.SLASH, toks[1].Type)

	// Character classes may contain an unescaped slash.
	toks = Tokenize("x = /[/]/")
	assert.Equal(t, token.REGEX, toks[2].Type)
	assert.Equal(t, "/[/]/", toks[2].Literal)

	// Comments do not change the decision.
	toks = Tokenize("a /* c */ / b")
	assert.Equal(t, token.SLASH, toks[2].Type)
}

func TestUnterminatedRegex(t *testing.T) {
	toks := Tokenize("x = /ab\n")
	assert.Equal(t, token.ILLEGAL, toks[2].Type)
	assert.Equal(t, "Unterminated regex", toks[2].Literal)
}

func TestPositions(t *testing.T) {
	l := New("ab\ncd")

	tok := l.Next()
	assert.Equal(t, token.IDENT, tok.Type)
	assert.Equal(t, "ab", tok.Literal)
	assert.Equal(t, 0, tok.StartPosition.Char)
	assert.Equal(t, 0, tok.StartPosition.Line)
	assert.Equal(t, 0, tok.StartPosition.Column)
	assert.Equal(t, 1, tok.StartPosition.LineNumber())
	assert.Equal(t, 1, tok.StartPosition.ColumnNumber())

	tok = l.Next()
	assert.Equal(t, token.NEWLINE, tok.Type)
	assert.Equal(t, 2, tok.StartPosition.Char)

	tok = l.Next()
	assert.Equal(t, token.IDENT, tok.Type)
	assert.Equal(t, "cd", tok.Literal)
	assert.Equal(t, 3, tok.StartPosition.Char)
	assert.Equal(t, 1, tok.StartPosition.Line)
	assert.Equal(t, 0, tok.StartPosition.Column)
	assert.Equal(t, 3, tok.StartPosition.LineStart)
}

func TestCarriageReturns(t *testing.T) {
	toks := Tokenize("a\r\nb")
	expected := []token.Type{token.IDENT, token.NEWLINE, token.IDENT, token.EOF}
	assert.Len(t, toks, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, toks[i].Type, "tokens[%d]", i)
	}
	assert.Equal(t, 1, toks[2].StartPosition.Line)
}

func TestEmptyInput(t *testing.T) {
	toks := Tokenize("")
	assert.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)

	toks = Tokenize("   \t  ")
	assert.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)
}

func TestEOFIsSticky(t *testing.T) {
	l := New("x")
	assert.Equal(t, token.IDENT, l.Next().Type)
	for i := 0; i < 3; i++ {
		assert.Equal(t, token.EOF, l.Next().Type)
	}
}

func TestIllegalCharacter(t *testing.T) {
	toks := Tokenize("let @ = 1")
	assert.Equal(t, token.ILLEGAL, toks[1].Type)
	assert.Equal(t, "Unexpected character", toks[1].Literal)
	// Scanning continues after the bad character.
	assert.Equal(t, token.ASSIGN, toks[2].Type)
}

func TestShebang(t *testing.T) {
	toks := Tokenize("#!/usr/bin/env node\nlet x = 1")
	assert.Equal(t, token.COMMENT, toks[0].Type)
	assert.Equal(t, "#!/usr/bin/env node", toks[0].Literal)
	assert.Equal(t, token.NEWLINE, toks[1].Type)
	assert.Equal(t, token.LET, toks[2].Type)

	// "#" anywhere else is illegal.
	toks = Tokenize("x #")
	assert.Equal(t, token.ILLEGAL, toks[1].Type)
}

func TestGetLineText(t *testing.T) {
	l := New("let x = 1\nlet y = 2\n")
	l.Next() // let
	l.Next() // x
	l.Next() // =
	one := l.Next()
	assert.Equal(t, "let x = 1", l.GetLineText(one))
	l.Next() // newline
	l.Next() // let
	y := l.Next()
	assert.Equal(t, "let y = 2", l.GetLineText(y))
}

func TestSaveRestoreState(t *testing.T) {
	l := New("a + b")
	assert.Equal(t, "a", l.Next().Literal)
	state := l.SaveState()
	assert.Equal(t, "+", l.Next().Literal)
	assert.Equal(t, "b", l.Next().Literal)
	l.RestoreState(state)
	assert.Equal(t, "+", l.Next().Literal)
	assert.Equal(t, "b", l.Next().Literal)
}

func TestFilename(t *testing.T) {
	l := New("x")
	l.SetFilename("main.js")
	assert.Equal(t, "main.js", l.Filename())
	tok := l.Next()
	assert.Equal(t, "main.js", tok.StartPosition.File)
}
