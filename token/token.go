// Package token defines language keywords and tokens used when lexing
// JavaScript source code.
package token

import "sort"

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes.
// Used for computing End positions from a start position.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	// Keywords
	AS        Type = "AS"
	CONST     Type = "CONST"
	DEFAULT   Type = "DEFAULT"
	ELSE      Type = "ELSE"
	EXPORT    Type = "EXPORT"
	FALSE     Type = "FALSE"
	FROM      Type = "FROM"
	FUNCTION  Type = "FUNCTION"
	IF        Type = "IF"
	IMPORT    Type = "IMPORT"
	LET       Type = "LET"
	NEW       Type = "NEW"
	NULL      Type = "NULL"
	RETURN    Type = "RETURN"
	TRUE      Type = "TRUE"
	TYPEOF    Type = "TYPEOF"
	UNDEFINED Type = "UNDEFINED"
	VAR       Type = "VAR"

	// Operators
	AND           Type = "&&"
	ARROW         Type = "=>"
	ASSIGN        Type = "="
	ASTERISK      Type = "*"
	ASTERISK_EQ   Type = "*="
	BANG          Type = "!"
	BITOR         Type = "|"
	CARET         Type = "^"
	EQ            Type = "=="
	GT            Type = ">"
	GT_EQUALS     Type = ">="
	GT_GT         Type = ">>"
	GT_GT_GT      Type = ">>>"
	LT            Type = "<"
	LT_EQUALS     Type = "<="
	LT_LT         Type = "<<"
	MINUS         Type = "-"
	MINUS_EQ      Type = "-="
	MINUS_MINUS   Type = "--"
	MOD           Type = "%"
	AMPERSAND     Type = "&"
	NOT_EQ        Type = "!="
	NULLISH       Type = "??"
	OR            Type = "||"
	PLUS          Type = "+"
	PLUS_EQ       Type = "+="
	PLUS_PLUS     Type = "++"
	POW           Type = "**"
	QUESTION      Type = "?"
	QUESTION_DOT  Type = "?."
	SLASH         Type = "/"
	SLASH_EQ      Type = "/="
	SPREAD        Type = "..."
	STRICT_EQ     Type = "==="
	STRICT_NOT_EQ Type = "!=="

	// Punctuation
	COLON     Type = ":"
	COMMA     Type = ","
	LBRACE    Type = "{"
	LBRACKET  Type = "["
	LPAREN    Type = "("
	PERIOD    Type = "."
	RBRACE    Type = "}"
	RBRACKET  Type = "]"
	RPAREN    Type = ")"
	SEMICOLON Type = ";"

	// Literals
	IDENT    Type = "IDENT"
	NUMBER   Type = "NUMBER"
	REGEX    Type = "REGEX"
	STRING   Type = "STRING"
	TEMPLATE Type = "TEMPLATE"

	// Sentinels
	BLOCK_COMMENT Type = "BLOCK_COMMENT"
	COMMENT       Type = "COMMENT"
	EOF           Type = "EOF"
	ILLEGAL       Type = "ILLEGAL"
	NEWLINE       Type = "EOL"
	WHITESPACE    Type = "WHITESPACE"
)

// Reserved keywords
var keywords = map[string]Type{
	"as":        AS,
	"const":     CONST,
	"default":   DEFAULT,
	"else":      ELSE,
	"export":    EXPORT,
	"false":     FALSE,
	"from":      FROM,
	"function":  FUNCTION,
	"if":        IF,
	"import":    IMPORT,
	"let":       LET,
	"new":       NEW,
	"null":      NULL,
	"return":    RETURN,
	"true":      TRUE,
	"typeof":    TYPEOF,
	"undefined": UNDEFINED,
	"var":       VAR,
}

// LookupIdentifier used to determinate whether identifier is keyword nor not
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

var keywordTypes = func() map[Type]bool {
	m := make(map[Type]bool, len(keywords))
	for _, t := range keywords {
		m[t] = true
	}
	return m
}()

var operators = map[Type]bool{
	AND:           true,
	ARROW:         true,
	ASSIGN:        true,
	ASTERISK:      true,
	ASTERISK_EQ:   true,
	BANG:          true,
	BITOR:         true,
	CARET:         true,
	EQ:            true,
	GT:            true,
	GT_EQUALS:     true,
	GT_GT:         true,
	GT_GT_GT:      true,
	LT:            true,
	LT_EQUALS:     true,
	LT_LT:         true,
	MINUS:         true,
	MINUS_EQ:      true,
	MINUS_MINUS:   true,
	MOD:           true,
	AMPERSAND:     true,
	NOT_EQ:        true,
	NULLISH:       true,
	OR:            true,
	PLUS:          true,
	PLUS_EQ:       true,
	PLUS_PLUS:     true,
	POW:           true,
	QUESTION:      true,
	QUESTION_DOT:  true,
	SLASH:         true,
	SLASH_EQ:      true,
	SPREAD:        true,
	STRICT_EQ:     true,
	STRICT_NOT_EQ: true,
}

// IsKeyword returns true if the token type is a reserved keyword.
func IsKeyword(t Type) bool {
	return keywordTypes[t]
}

// Keywords returns the sorted list of reserved keywords.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// IsOperator returns true if the token type is an operator.
func IsOperator(t Type) bool {
	return operators[t]
}

// IsLiteral returns true if the token type is a literal category:
// an identifier, string, number, template literal, or regex literal.
func IsLiteral(t Type) bool {
	switch t {
	case IDENT, NUMBER, STRING, TEMPLATE, REGEX:
		return true
	}
	return false
}
