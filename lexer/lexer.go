// Package lexer scans JavaScript source text and produces tokens.
//
// A Lexer is created with New() and then driven with Next(), which returns
// one token at a time. The package-level Tokenize() function scans an entire
// input at once and guarantees the result ends with exactly one EOF token.
//
// The lexer never fails on malformed input: unterminated strings, stray
// characters, and similar problems are returned as ILLEGAL tokens whose
// literal carries a diagnostic message, so that the parser (or a diagnostics
// layer) can decide how to react.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sift-js/sift/token"
)

// Lexer scans an input string into tokens. Each Lexer owns its own cursor
// and may be used from only one goroutine; independent Lexers are fully
// independent.
type Lexer struct {
	// input is the full source text. Token literals are slices into this
	// string, so it must outlive every token derived from it.
	input string

	// pos is the byte offset of ch within input.
	pos int

	// readPos is the byte offset of the character after ch.
	readPos int

	// ch is the current character, or 0 at end of input.
	ch rune

	// line is the 0-indexed line number of ch.
	line int

	// column is the 0-indexed column number of ch.
	column int

	// lineStart is the byte offset of the start of the current line.
	lineStart int

	// filename is an optional name reported in token positions.
	filename string

	// prev is the type of the last significant token. It drives the
	// regex-versus-division decision for "/".
	prev token.Type
}

// State is an opaque snapshot of the lexer's cursor, used by the parser to
// backtrack over newline runs.
type State struct {
	pos       int
	readPos   int
	ch        rune
	line      int
	column    int
	lineStart int
	prev      token.Type
}

// New returns a Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// SetFilename sets the file name used in token positions.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the file name associated with this lexer's input.
func (l *Lexer) Filename() string {
	return l.filename
}

// SaveState captures the current cursor so it can be restored later.
func (l *Lexer) SaveState() State {
	return State{
		pos:       l.pos,
		readPos:   l.readPos,
		ch:        l.ch,
		line:      l.line,
		column:    l.column,
		lineStart: l.lineStart,
		prev:      l.prev,
	}
}

// RestoreState rewinds the lexer to a previously saved cursor.
func (l *Lexer) RestoreState(s State) {
	l.pos = s.pos
	l.readPos = s.readPos
	l.ch = s.ch
	l.line = s.line
	l.column = s.column
	l.lineStart = s.lineStart
	l.prev = s.prev
}

// GetLineText returns the line of source text containing the given token.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start > len(l.input) {
		return ""
	}
	if i := strings.IndexByte(l.input[start:], '\n'); i >= 0 {
		return l.input[start : start+i]
	}
	return l.input[start:]
}

// Next returns the next significant token. Whitespace runs (spaces, tabs,
// carriage returns) are scanned and discarded; newlines, comments, and block
// comments are significant and returned. After the end of input, Next
// returns EOF tokens forever.
func (l *Lexer) Next() token.Token {
	for {
		tok := l.scan()
		if tok.Type == token.WHITESPACE {
			continue
		}
		// Comments are transparent to the regex/division decision:
		// "a /* x */ / b" is still a division.
		if tok.Type != token.COMMENT && tok.Type != token.BLOCK_COMMENT {
			l.prev = tok.Type
		}
		return tok
	}
}

// Tokenize scans the entire source and returns the ordered token sequence.
// The result always terminates in exactly one EOF token, even for empty
// input. Newlines and comments are preserved; whitespace is filtered.
func Tokenize(source string) []token.Token {
	l := New(source)
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// readChar advances the cursor by one character, updating line and column
// accounting. Consuming a newline resets the column and starts a new line.
func (l *Lexer) readChar() {
	switch l.ch {
	case 0:
		// Initial load, or already at end of input.
	case '\n':
		l.line++
		l.column = 0
		l.lineStart = l.readPos
	default:
		l.column++
	}
	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = 0
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += w
}

// peekChar returns the character after ch without consuming anything.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// position returns the Position of the current character.
func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.column,
		File:      l.filename,
	}
}

// emit builds a token whose literal is the source span from start to the
// current position.
func (l *Lexer) emit(typ token.Type, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       l.input[start.Char:l.pos],
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

// illegal builds an ILLEGAL token carrying a diagnostic message as its
// literal.
func (l *Lexer) illegal(msg string, start token.Position) token.Token {
	return token.Token{
		Type:          token.ILLEGAL,
		Literal:       msg,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

// scan reads one raw token, including WHITESPACE runs which Next filters.
func (l *Lexer) scan() token.Token {
	start := l.position()
	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}
	case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		return l.emit(token.WHITESPACE, start)
	case l.ch == '\n':
		l.readChar()
		return l.emit(token.NEWLINE, start)
	case isIdentStart(l.ch):
		return l.scanIdentifier(start)
	case isDigit(l.ch):
		return l.scanNumber(start)
	case l.ch == '"' || l.ch == '\'':
		return l.scanString(start)
	case l.ch == '`':
		return l.scanTemplate(start)
	}
	return l.scanOperator(start)
}

func (l *Lexer) scanIdentifier(start token.Position) token.Token {
	for isIdentPart(l.ch) {
		l.readChar()
	}
	tok := l.emit(token.IDENT, start)
	tok.Type = token.LookupIdentifier(tok.Literal)
	return tok
}

// scanNumber reads a decimal integer with an optional single fractional
// part. A "." is consumed only when followed by another digit, so "1." scans
// as the number 1 followed by a period. Exponents, hex, and separators are
// out of scope.
func (l *Lexer) scanNumber(start token.Position) token.Token {
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.emit(token.NUMBER, start)
}

// scanString reads a single- or double-quoted string. A backslash
// unconditionally consumes the following character, even when that character
// is the closing quote or a newline. The returned literal is the raw source
// span between the quotes, escapes included; unescaping is the consumer's
// concern. Reaching end of input before the closing quote yields an ILLEGAL
// token rather than an error.
func (l *Lexer) scanString(start token.Position) token.Token {
	quote := l.ch
	l.readChar()
	contentStart := l.pos
	for {
		switch l.ch {
		case 0:
			return l.illegal("Unterminated string", start)
		case '\\':
			l.readChar()
			if l.ch != 0 {
				l.readChar()
			}
		case quote:
			content := l.input[contentStart:l.pos]
			l.readChar()
			return token.Token{
				Type:          token.STRING,
				Literal:       content,
				StartPosition: start,
				EndPosition:   l.position(),
			}
		default:
			l.readChar()
		}
	}
}

// scanTemplate reads a backtick-delimited template literal as a single
// TEMPLATE token. Interpolation placeholders are not parsed here; the
// literal is the raw span between the backticks.
func (l *Lexer) scanTemplate(start token.Position) token.Token {
	l.readChar()
	contentStart := l.pos
	for {
		switch l.ch {
		case 0:
			return l.illegal("Unterminated template literal", start)
		case '\\':
			l.readChar()
			if l.ch != 0 {
				l.readChar()
			}
		case '`':
			content := l.input[contentStart:l.pos]
			l.readChar()
			return token.Token{
				Type:          token.TEMPLATE,
				Literal:       content,
				StartPosition: start,
				EndPosition:   l.position(),
			}
		default:
			l.readChar()
		}
	}
}

// scanLineComment reads a "//" comment through, but excluding, the
// terminating newline.
func (l *Lexer) scanLineComment(start token.Position) token.Token {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.emit(token.COMMENT, start)
}

// scanBlockComment reads a "/* ... */" comment. Reaching end of input before
// the closing "*/" still returns the partial comment as a BLOCK_COMMENT
// token; the lexer is deliberately permissive here.
func (l *Lexer) scanBlockComment(start token.Position) token.Token {
	l.readChar() // consume '/'
	l.readChar() // consume '*'
	for {
		if l.ch == 0 {
			return l.emit(token.BLOCK_COMMENT, start)
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return l.emit(token.BLOCK_COMMENT, start)
		}
		l.readChar()
	}
}

// canBeRegex reports whether a "/" at the current position starts a regex
// literal. A regex is possible wherever an expression may begin: after an
// operator, an opening delimiter, a statement boundary, or a non-value
// keyword. After an identifier, literal, or closing paren/bracket, "/" is
// division.
func (l *Lexer) canBeRegex() bool {
	switch l.prev {
	case "":
		return true // start of input
	case token.IDENT, token.NUMBER, token.STRING, token.TEMPLATE, token.REGEX,
		token.RPAREN, token.RBRACKET, token.PLUS_PLUS, token.MINUS_MINUS,
		token.TRUE, token.FALSE, token.NULL, token.UNDEFINED:
		return false
	}
	return true
}

// scanRegex reads a /pattern/flags regex literal. Character classes may
// contain unescaped slashes. An unterminated regex (newline or end of input
// before the closing slash) yields an ILLEGAL token.
func (l *Lexer) scanRegex(start token.Position) token.Token {
	l.readChar() // consume opening '/'
	inClass := false
	for {
		switch {
		case l.ch == 0 || l.ch == '\n':
			return l.illegal("Unterminated regex", start)
		case l.ch == '\\':
			l.readChar()
			if l.ch != 0 && l.ch != '\n' {
				l.readChar()
			}
		case l.ch == '[':
			inClass = true
			l.readChar()
		case l.ch == ']':
			inClass = false
			l.readChar()
		case l.ch == '/' && !inClass:
			l.readChar()
			for l.ch >= 'a' && l.ch <= 'z' {
				l.readChar()
			}
			return l.emit(token.REGEX, start)
		default:
			l.readChar()
		}
	}
}

// scanOperator classifies operators and punctuation using strict maximal
// munch: at each operator start, the longest sequence forming a valid token
// is consumed.
func (l *Lexer) scanOperator(start token.Position) token.Token {
	switch l.ch {
	case '=':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return l.emit(token.STRICT_EQ, start)
			}
			return l.emit(token.EQ, start)
		case '>':
			l.readChar()
			return l.emit(token.ARROW, start)
		}
		return l.emit(token.ASSIGN, start)
	case '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return l.emit(token.STRICT_NOT_EQ, start)
			}
			return l.emit(token.NOT_EQ, start)
		}
		return l.emit(token.BANG, start)
	case '<':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			return l.emit(token.LT_EQUALS, start)
		case '<':
			l.readChar()
			return l.emit(token.LT_LT, start)
		}
		return l.emit(token.LT, start)
	case '>':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			return l.emit(token.GT_EQUALS, start)
		case '>':
			l.readChar()
			if l.ch == '>' {
				l.readChar()
				return l.emit(token.GT_GT_GT, start)
			}
			return l.emit(token.GT_GT, start)
		}
		return l.emit(token.GT, start)
	case '+':
		l.readChar()
		switch l.ch {
		case '+':
			l.readChar()
			return l.emit(token.PLUS_PLUS, start)
		case '=':
			l.readChar()
			return l.emit(token.PLUS_EQ, start)
		}
		return l.emit(token.PLUS, start)
	case '-':
		l.readChar()
		switch l.ch {
		case '-':
			l.readChar()
			return l.emit(token.MINUS_MINUS, start)
		case '=':
			l.readChar()
			return l.emit(token.MINUS_EQ, start)
		}
		return l.emit(token.MINUS, start)
	case '*':
		l.readChar()
		switch l.ch {
		case '*':
			l.readChar()
			return l.emit(token.POW, start)
		case '=':
			l.readChar()
			return l.emit(token.ASTERISK_EQ, start)
		}
		return l.emit(token.ASTERISK, start)
	case '/':
		switch {
		case l.peekChar() == '/':
			return l.scanLineComment(start)
		case l.peekChar() == '*':
			return l.scanBlockComment(start)
		case l.canBeRegex():
			return l.scanRegex(start)
		}
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.emit(token.SLASH_EQ, start)
		}
		return l.emit(token.SLASH, start)
	case '%':
		l.readChar()
		return l.emit(token.MOD, start)
	case '&':
		l.readChar()
		if l.ch == '&' {
			l.readChar()
			return l.emit(token.AND, start)
		}
		return l.emit(token.AMPERSAND, start)
	case '|':
		l.readChar()
		if l.ch == '|' {
			l.readChar()
			return l.emit(token.OR, start)
		}
		return l.emit(token.BITOR, start)
	case '^':
		l.readChar()
		return l.emit(token.CARET, start)
	case '?':
		l.readChar()
		switch l.ch {
		case '?':
			l.readChar()
			return l.emit(token.NULLISH, start)
		case '.':
			l.readChar()
			return l.emit(token.QUESTION_DOT, start)
		}
		return l.emit(token.QUESTION, start)
	case '.':
		if strings.HasPrefix(l.input[l.pos:], "...") {
			l.readChar()
			l.readChar()
			l.readChar()
			return l.emit(token.SPREAD, start)
		}
		l.readChar()
		return l.emit(token.PERIOD, start)
	case '(':
		l.readChar()
		return l.emit(token.LPAREN, start)
	case ')':
		l.readChar()
		return l.emit(token.RPAREN, start)
	case '{':
		l.readChar()
		return l.emit(token.LBRACE, start)
	case '}':
		l.readChar()
		return l.emit(token.RBRACE, start)
	case '[':
		l.readChar()
		return l.emit(token.LBRACKET, start)
	case ']':
		l.readChar()
		return l.emit(token.RBRACKET, start)
	case ',':
		l.readChar()
		return l.emit(token.COMMA, start)
	case ';':
		l.readChar()
		return l.emit(token.SEMICOLON, start)
	case ':':
		l.readChar()
		return l.emit(token.COLON, start)
	case '#':
		// Shebang line: only recognized at the very start of the input.
		if l.pos == 0 && l.peekChar() == '!' {
			return l.scanLineComment(start)
		}
	}
	l.readChar()
	return l.illegal("Unexpected character", start)
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
