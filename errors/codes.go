package errors

import "strings"

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Lexical errors
//   - E2xxx: Parse errors
type ErrorCode string

const (
	// Lexical errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected character
	E1002 ErrorCode = "E1002" // Unterminated string literal
	E1003 ErrorCode = "E1003" // Unterminated template literal
	E1004 ErrorCode = "E1004" // Unterminated regex literal
	E1005 ErrorCode = "E1005" // Unterminated block comment

	// Parse errors (E2xxx)
	E2001 ErrorCode = "E2001" // Unexpected token
	E2002 ErrorCode = "E2002" // Expected identifier
	E2003 ErrorCode = "E2003" // Unclosed delimiter
	E2004 ErrorCode = "E2004" // Invalid assignment target
	E2005 ErrorCode = "E2005" // Invalid number literal
	E2006 ErrorCode = "E2006" // Maximum nesting depth exceeded
	E2007 ErrorCode = "E2007" // Unexpected end of input
	E2008 ErrorCode = "E2008" // Invalid import statement
	E2009 ErrorCode = "E2009" // Invalid export statement
	E2010 ErrorCode = "E2010" // Incomplete statement
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected character",
	E1002: "unterminated string literal",
	E1003: "unterminated template literal",
	E1004: "unterminated regex literal",
	E1005: "unterminated block comment",

	E2001: "unexpected token",
	E2002: "expected identifier",
	E2003: "unclosed delimiter",
	E2004: "invalid assignment target",
	E2005: "invalid number literal",
	E2006: "maximum nesting depth exceeded",
	E2007: "unexpected end of input",
	E2008: "invalid import statement",
	E2009: "invalid export statement",
	E2010: "incomplete statement",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "lex"
	case '2':
		return "parse"
	default:
		return "unknown"
	}
}

// ClassifyMessage maps a diagnostic message to its error code. Messages
// that have no specific code classify as general syntax errors (E2001).
func ClassifyMessage(msg string) ErrorCode {
	switch {
	case strings.HasPrefix(msg, "Unexpected character"):
		return E1001
	case strings.HasPrefix(msg, "Unterminated string"):
		return E1002
	case strings.HasPrefix(msg, "Unterminated template"):
		return E1003
	case strings.HasPrefix(msg, "Unterminated regex"):
		return E1004
	case strings.HasPrefix(msg, "Unterminated block comment"):
		return E1005
	case strings.HasPrefix(msg, "unexpected end of input"):
		return E2007
	case strings.Contains(msg, "maximum nesting depth"):
		return E2006
	case strings.Contains(msg, "assignment target"):
		return E2004
	case strings.Contains(msg, "invalid number"):
		return E2005
	case strings.Contains(msg, "import"), strings.Contains(msg, "module path"):
		return E2008
	case strings.Contains(msg, "export"):
		return E2009
	case strings.Contains(msg, "variable name"), strings.Contains(msg, "parameter name"),
		strings.Contains(msg, "property name"), strings.Contains(msg, "namespace name"):
		return E2002
	case strings.Contains(msg, "Expected ')'"), strings.Contains(msg, "Expected ']'"),
		strings.Contains(msg, "Expected '}'"), strings.Contains(msg, "unterminated block"):
		return E2003
	case strings.Contains(msg, "Expected"):
		return E2010
	default:
		return E2001
	}
}
