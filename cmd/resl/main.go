// Command resl formats, evaluates, and converts RESL documents.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	resl "github.com/decipher3114/go-resl"
	"github.com/decipher3114/go-resl/generator"
	"github.com/decipher3114/go-resl/parser"
	"github.com/decipher3114/go-resl/value"
)

// CLI is the top-level command-line interface for resl.
type CLI struct {
	Input  string `help:"Input file to read from (leave empty for stdin)"  short:"i" type:"path"`
	Output string `help:"Output file to write to (leave empty for stdout)" short:"o" type:"path"`
	Pretty bool   `help:"Use multi-line indented output"                   short:"p"`
	Debug  bool   `help:"Enable debug logging"                             short:"d"`

	Fmt    FmtCmd    `cmd:"" help:"Format a RESL expression without evaluating it"`
	Eval   EvalCmd   `cmd:"" help:"Evaluate a RESL expression and print the result"`
	Export ExportCmd `cmd:"" help:"Evaluate a RESL expression and export the result to JSON or YAML"`
	Import ImportCmd `cmd:"" help:"Convert a JSON or YAML document to RESL"`
}

type (
	// FmtCmd rewrites the input in canonical form.
	FmtCmd struct{}
	// EvalCmd evaluates the input and renders the resulting value.
	EvalCmd struct{}
	// ExportCmd evaluates the input and serializes the result.
	ExportCmd struct {
		To DataFormat `help:"Format to export to" enum:"json,yaml" required:""`
	}
	// ImportCmd parses a foreign document and renders it as RESL.
	ImportCmd struct {
		From DataFormat `help:"Format to import from" enum:"json,yaml" required:""`
	}
)

// DataFormat names an interchange format for export and import.
type DataFormat string

const (
	FormatJSON DataFormat = "json"
	FormatYAML DataFormat = "yaml"
)

func main() {
	var cli CLI

	ktx := kong.Parse(&cli,
		kong.Name("resl"),
		kong.Description("Format, evaluate, and convert RESL configuration files."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := ktx.Run(&cli); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// readInput returns the full source text from the input file, or from stdin
// when no file was given.
func (c *CLI) readInput() (string, error) {
	if c.Input == "" || c.Input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		slog.Debug("read input", "source", "stdin", "bytes", len(data))
		return string(data), nil
	}
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return "", err
	}
	slog.Debug("read input", "source", c.Input, "bytes", len(data))
	return string(data), nil
}

// writeOutput writes the result to the output file, or to stdout when no
// file was given. A trailing newline is added if the result lacks one.
func (c *CLI) writeOutput(out string) error {
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out += "\n"
	}
	if c.Output == "" || c.Output == "-" {
		_, err := io.WriteString(os.Stdout, out)
		return err
	}
	return os.WriteFile(c.Output, []byte(out), 0o644)
}

func (FmtCmd) Run(cli *CLI) error {
	src, err := cli.readInput()
	if err != nil {
		return err
	}
	out, err := resl.Format(src, cli.Pretty)
	if err != nil {
		return sourced(err, src)
	}
	return cli.writeOutput(out)
}

func (EvalCmd) Run(cli *CLI) error {
	src, err := cli.readInput()
	if err != nil {
		return err
	}
	out, err := resl.EvaluateAndFormat(src, cli.Pretty)
	if err != nil {
		return sourced(err, src)
	}
	return cli.writeOutput(out)
}

func (c ExportCmd) Run(cli *CLI) error {
	src, err := cli.readInput()
	if err != nil {
		return err
	}
	val, err := resl.Evaluate(src)
	if err != nil {
		return sourced(err, src)
	}
	defer val.Release()

	var out string
	switch c.To {
	case FormatJSON:
		out, err = valueToJSON(val, cli.Pretty)
	case FormatYAML:
		out, err = valueToYAML(val)
	}
	if err != nil {
		return err
	}
	slog.Debug("exported value", "format", string(c.To), "bytes", len(out))
	return cli.writeOutput(out)
}

func (c ImportCmd) Run(cli *CLI) error {
	src, err := cli.readInput()
	if err != nil {
		return err
	}

	var val *value.Value
	switch c.From {
	case FormatJSON:
		val, err = valueFromJSON(src)
	case FormatYAML:
		val, err = valueFromYAML(src)
	}
	if err != nil {
		return err
	}
	defer val.Release()

	slog.Debug("imported value", "format", string(c.From))
	return cli.writeOutput(generator.GenerateValue(val, cli.Pretty))
}

// sourcedError carries the source text alongside a parse error so the
// diagnostic renderer can show the offending line.
type sourcedError struct {
	err *parser.Error
	src string
}

func (e *sourcedError) Error() string { return e.err.Error() }
func (e *sourcedError) Unwrap() error { return e.err }

func sourced(err error, src string) error {
	if pe, ok := err.(*parser.Error); ok {
		return &sourcedError{err: pe, src: src}
	}
	return err
}
