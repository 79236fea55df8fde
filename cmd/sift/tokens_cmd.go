package main

import (
	"fmt"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"

	"github.com/sift-js/sift/lexer"
	"github.com/sift-js/sift/token"
)

// jsonToken is the JSON shape for a single token.
type jsonToken struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func tokensHandler(ctx *cli.Context) error {
	setupLogging(ctx)

	code, filename, err := getCode(ctx)
	if err != nil {
		return err
	}

	tokens := lexer.Tokenize(code)
	log.Debug().Int("count", len(tokens)).Str("file", filename).Msg("tokenized")

	if !ctx.Bool("comments") {
		tokens = dropComments(tokens)
	}

	if ctx.String("output") == "json" {
		out := make([]jsonToken, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, jsonToken{
				Type:    string(tok.Type),
				Literal: tok.Literal,
				Line:    tok.StartPosition.LineNumber(),
				Column:  tok.StartPosition.ColumnNumber(),
			})
		}
		text, err := formatOutput(ctx, out)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	colorize := useColor(ctx)
	for _, tok := range tokens {
		printToken(tok, colorize)
	}
	return nil
}

func dropComments(tokens []token.Token) []token.Token {
	kept := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == token.COMMENT || tok.Type == token.BLOCK_COMMENT {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

func printToken(tok token.Token, colorize bool) {
	loc := fmt.Sprintf("%3d:%-3d", tok.StartPosition.LineNumber(), tok.StartPosition.ColumnNumber())
	typ := fmt.Sprintf("%-14s", tok.Type)
	lit := tok.Literal
	if tok.Type == token.NEWLINE {
		lit = ""
	}
	if colorize {
		loc = color.BrightBlack.Apply(loc)
		switch {
		case token.IsKeyword(tok.Type):
			typ = color.Magenta.Apply(typ)
		case token.IsOperator(tok.Type):
			typ = color.Cyan.Apply(typ)
		case token.IsLiteral(tok.Type):
			typ = color.Green.Apply(typ)
		case tok.Type == token.ILLEGAL:
			typ = color.Red.Apply(typ)
		}
	}
	fmt.Printf("%s  %s %s\n", loc, typ, lit)
}
