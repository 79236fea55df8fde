package main

import (
	goerrors "errors"
	"fmt"
	"time"

	"github.com/deepnoodle-ai/wonton/cli"

	ferrors "github.com/sift-js/sift/errors"
	"github.com/sift-js/sift/parser"
)

func checkHandler(ctx *cli.Context) error {
	setupLogging(ctx)

	code, filename, err := getCode(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	var opts []parser.Option
	if filename != "" {
		opts = append(opts, parser.WithFilename(filename))
	}
	program, err := parser.Parse(ctx.Context(), code, opts...)
	dt := time.Since(start)

	if err != nil {
		var perrs *parser.Errors
		if goerrors.As(err, &perrs) {
			log.Debug().
				Int("errors", perrs.Count()).
				Str("location", perrs.First().Location().String()).
				Msg("parse failed")
		}
		return formatParseError(ctx, err)
	}

	log.Debug().
		Int("statements", len(program.Stmts)).
		Dur("elapsed", dt).
		Str("file", filename).
		Msg("parse ok")
	return nil
}

func versionHandler(ctx *cli.Context) error {
	if ctx.String("output") == "json" {
		out, err := formatOutput(ctx, map[string]any{
			"version": version,
			"commit":  commit,
			"date":    date,
		})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Println(version)
	return nil
}

// formatParseError renders parser diagnostics with source context and
// caret underlines. Other errors pass through unchanged.
func formatParseError(ctx *cli.Context, err error) error {
	var perrs *parser.Errors
	if !goerrors.As(err, &perrs) {
		return err
	}
	formatter := ferrors.NewFormatter(useColor(ctx))
	return goerrors.New(formatter.FormatMultiple(perrs.ToFormattedMultiple()))
}
