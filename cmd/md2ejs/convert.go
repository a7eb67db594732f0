package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	md2ejs "github.com/alnah/go-md2ejs"
)

// run executes one conversion according to the parsed flags.
func run(ctx context.Context, f *cliFlags) error {
	opts := md2ejs.DefaultOptions()
	if f.config != "" {
		loaded, err := md2ejs.LoadOptions(f.config)
		if err != nil {
			return err
		}
		opts = loaded
	}
	opts.Strict = opts.Strict && f.strict
	opts.Pretty = opts.Pretty || f.pretty
	if f.style != "" {
		opts.ChromaStyle = f.style
	}

	input, err := os.ReadFile(f.input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.input, err)
	}

	svc := md2ejs.New(md2ejs.WithOptions(opts))

	var output []byte
	switch f.to {
	case targetBlocks:
		doc, err := svc.MarkdownToBlocks(ctx, string(input))
		if err != nil {
			return err
		}
		output, err = marshalDocument(doc, opts.Pretty)
		if err != nil {
			return err
		}
	case targetMarkdown:
		doc, err := md2ejs.UnmarshalDocument(input)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", f.input, err)
		}
		md, err := svc.BlocksToMarkdown(doc)
		if err != nil {
			return err
		}
		output = []byte(md)
	case targetHTML:
		html, err := svc.ToHTML(ctx, string(input))
		if err != nil {
			return err
		}
		output = []byte(html)
	}

	return writeOutput(f.output, output)
}

func marshalDocument(doc md2ejs.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
