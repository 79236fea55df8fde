package main

import (
	"os"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
	"github.com/rs/zerolog"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var log zerolog.Logger

func main() {
	app := cli.New("sift").
		Description("JavaScript source processing toolkit").
		Version(version).
		AddCompletionCommand()

	// Global flags
	app.GlobalFlags(
		cli.String("code", "c").Help("Code to process"),
		cli.Bool("stdin", "").Help("Read code from stdin"),
		cli.Bool("no-color", "").Env("NO_COLOR").Help("Disable colored output"),
		cli.Bool("verbose", "v").Help("Enable debug logging"),
	)

	// Root command: check a source file for syntax errors
	app.Main().
		Args("file?").
		Run(checkHandler)

	// Version command with JSON support
	app.Command("version").
		Description("Print version information").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(versionHandler)

	// Tokens command
	app.Command("tokens").
		Alias("t").
		Description("Display the token stream for JavaScript code").
		Args("file?").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
			cli.Bool("comments", "").Help("Include comment tokens"),
		).
		Run(tokensHandler)

	// AST command
	app.Command("ast").
		Alias("a").
		Description("Display the AST for JavaScript code").
		Args("file?").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(astHandler)

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			return
		}
		printError(err.Error())
		os.Exit(cli.GetExitCode(err))
	}
}

func setupLogging(ctx *cli.Context) {
	level := zerolog.WarnLevel
	if ctx.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: ctx.Bool("no-color")}
	log = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func printError(msg string) {
	if color.ShouldColorize(os.Stderr) {
		msg = color.Red.Apply(msg)
	}
	os.Stderr.WriteString(msg + "\n")
}
