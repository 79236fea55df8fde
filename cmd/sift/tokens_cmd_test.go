package main

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/deepnoodle-ai/wonton/cli"

	"github.com/sift-js/sift/lexer"
	"github.com/sift-js/sift/token"
)

func TestDropComments(t *testing.T) {
	tokens := lexer.Tokenize("let x = 1; // note")
	kept := dropComments(tokens)
	for _, tok := range kept {
		assert.True(t, tok.Type != token.COMMENT)
		assert.True(t, tok.Type != token.BLOCK_COMMENT)
	}
	assert.True(t, len(kept) < len(tokens))
}

func TestTokensHandler(t *testing.T) {
	app := cli.New("sift").SetColorEnabled(false)
	app.Command("tokens").
		Args("file?").
		Flags(
			cli.String("code", "c"),
			cli.Bool("stdin", ""),
			cli.Bool("comments", ""),
			cli.String("output", "o"),
			cli.Bool("no-color", ""),
			cli.Bool("verbose", "v"),
		).
		Run(tokensHandler)

	output := captureStdout(t, func() {
		err := app.ExecuteArgs([]string{"tokens", "-c", "const x = 42;"})
		assert.Nil(t, err)
	})

	assert.True(t, contains(output, "CONST"))
	assert.True(t, contains(output, "IDENT"))
	assert.True(t, contains(output, "NUMBER"))
	assert.True(t, contains(output, "42"))
}

func TestGetCodeNoInput(t *testing.T) {
	app := cli.New("sift").SetColorEnabled(false)
	var capturedErr error
	app.Command("test").
		Args("file?").
		Flags(
			cli.String("code", "c"),
			cli.Bool("stdin", ""),
		).
		Run(func(ctx *cli.Context) error {
			_, _, capturedErr = getCode(ctx)
			return capturedErr
		})

	_ = app.ExecuteArgs([]string{"test"})
	assert.NotNil(t, capturedErr)
	assert.True(t, contains(capturedErr.Error(), "no input"))
}

func TestGetCodeMultipleInputs(t *testing.T) {
	app := cli.New("sift").SetColorEnabled(false)
	var capturedErr error
	app.Command("test").
		Args("file?").
		Flags(
			cli.String("code", "c"),
			cli.Bool("stdin", ""),
		).
		Run(func(ctx *cli.Context) error {
			_, _, capturedErr = getCode(ctx)
			return capturedErr
		})

	_ = app.ExecuteArgs([]string{"test", "-c", "1 + 2", "somefile.js"})
	assert.NotNil(t, capturedErr)
	assert.True(t, contains(capturedErr.Error(), "multiple"))
}
