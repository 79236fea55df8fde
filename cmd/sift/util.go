package main

import (
	"errors"
	"io"
	"os"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/mattn/go-isatty"
)

// getCode resolves the input source from the -c flag, --stdin, or a file
// argument. The returned filename is empty unless a file was read.
func getCode(ctx *cli.Context) (code, filename string, err error) {
	codeSet := ctx.IsSet("code")
	stdinSet := ctx.Bool("stdin")
	file := ctx.Arg(0)

	count := 0
	if codeSet {
		count++
	}
	if stdinSet {
		count++
	}
	if file != "" {
		count++
	}
	if count > 1 {
		return "", "", errors.New("multiple input sources specified")
	}
	if count == 0 {
		return "", "", errors.New("no input provided")
	}

	if stdinSet {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", err
		}
		return string(data), file, nil
	}

	return ctx.String("code"), "", nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
