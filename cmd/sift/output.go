package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/hokaccha/go-prettyjson"
)

func formatOutput(ctx *cli.Context, result any) (string, error) {
	format := strings.ToLower(ctx.String("output"))
	switch format {
	case "", "json":
		output, err := formatJSON(ctx, result)
		if err != nil {
			return "", err
		}
		return string(output), nil
	case "text":
		return fmt.Sprintf("%v", result), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

func formatJSON(ctx *cli.Context, result any) ([]byte, error) {
	if useColor(ctx) {
		return prettyjson.Marshal(result)
	}
	return json.MarshalIndent(result, "", "  ")
}

// useColor reports whether output should be colorized: stdout must be a
// terminal and --no-color must not be set.
func useColor(ctx *cli.Context) bool {
	if ctx.Bool("no-color") {
		return false
	}
	return isTerminal(os.Stdout)
}
