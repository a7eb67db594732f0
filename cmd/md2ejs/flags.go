package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Conversion directions accepted by --to.
const (
	targetBlocks   = "blocks"
	targetMarkdown = "markdown"
	targetHTML     = "html"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("usage: md2ejs [flags] <input>")

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	to      string
	output  string
	config  string
	style   string
	strict  bool
	pretty  bool
	verbose bool
	input   string
}

// parseFlags parses args (excluding the program name).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("md2ejs", flag.ContinueOnError)

	f := &cliFlags{}
	fs.StringVar(&f.to, "to", targetBlocks, "conversion target: blocks, markdown, or html")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringVar(&f.config, "config", "", "YAML options file")
	fs.StringVar(&f.style, "style", "", "chroma style for HTML preview")
	fs.BoolVar(&f.strict, "strict", true, "reject unrecognized inline node types")
	fs.BoolVar(&f.pretty, "pretty", false, "indent JSON output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output on stderr")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch f.to {
	case targetBlocks, targetMarkdown, targetHTML:
	default:
		return nil, fmt.Errorf("%w: invalid --to %q", ErrUsage, f.to)
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, ErrUsage
	}
	f.input = rest[0]

	return f, nil
}
