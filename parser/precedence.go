package parser

import "github.com/sift-js/sift/token"

// Precedence order for operators, lowest binding first.
const (
	_ int = iota
	LOWEST
	ASSIGN      // = += -= *= /=
	TERNARY     // ? :
	NULLISH     // ??
	OR          // ||
	AND         // &&
	BITOR       // | ^
	BITAND      // &
	EQUALS      // == != === !==
	LESSGREATER // < <= > >=
	SHIFT       // << >> >>>
	SUM         // + -
	PRODUCT     // * / %
	POWER       // **
	PREFIX      // -x !x typeof x
	CALL        // f(x)
	INDEX       // a.b a[b] a?.b
	HIGHEST
)

// Precedences for each token type.
var precedences = map[token.Type]int{
	token.ASSIGN:        ASSIGN,
	token.PLUS_EQ:       ASSIGN,
	token.MINUS_EQ:      ASSIGN,
	token.ASTERISK_EQ:   ASSIGN,
	token.SLASH_EQ:      ASSIGN,
	token.QUESTION:      TERNARY,
	token.NULLISH:       NULLISH,
	token.OR:            OR,
	token.AND:           AND,
	token.BITOR:         BITOR,
	token.CARET:         BITOR,
	token.AMPERSAND:     BITAND,
	token.EQ:            EQUALS,
	token.NOT_EQ:        EQUALS,
	token.STRICT_EQ:     EQUALS,
	token.STRICT_NOT_EQ: EQUALS,
	token.LT:            LESSGREATER,
	token.LT_EQUALS:     LESSGREATER,
	token.GT:            LESSGREATER,
	token.GT_EQUALS:     LESSGREATER,
	token.LT_LT:         SHIFT,
	token.GT_GT:         SHIFT,
	token.GT_GT_GT:      SHIFT,
	token.PLUS:          SUM,
	token.MINUS:         SUM,
	token.ASTERISK:      PRODUCT,
	token.SLASH:         PRODUCT,
	token.MOD:           PRODUCT,
	token.POW:           POWER,
	token.LPAREN:        CALL,
	token.PERIOD:        INDEX,
	token.QUESTION_DOT:  INDEX,
	token.LBRACKET:      INDEX,
}
