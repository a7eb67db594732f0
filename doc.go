// Package md2ejs converts between markdown and the editor.js block format
// in both directions.
//
// # Quick Start
//
// Create a service and convert:
//
//	svc := md2ejs.New()
//	doc, err := svc.MarkdownToBlocks(ctx, "# Hello\n\nSome *text*.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	md, err := svc.BlocksToMarkdown(doc)
//
// # Model
//
// An editor.js document is a flat, ordered list of blocks, each a
// {type, data} record. Markdown parses into a recursive tree. The two do
// not line up one-to-one, so conversion leans on a per-type converter
// registry plus a few structural heuristics:
//
//   - a markdown paragraph containing images or embedded tags splits into
//     several blocks
//   - a list whose every item starts with "[ ]" or "[x]" (and has no
//     nested sublist) becomes a checklist block
//   - pipe tables are parsed from literal paragraph text
//   - block types with no markdown form (linkTool, attaches) are embedded
//     as <editorjs> tags inside the markdown text and decoded back
//
// # HTML preview
//
// Service.ToHTML renders markdown to a standalone HTML document through
// goldmark with syntax highlighting, substituting embedded custom tags
// with their display renderings first.
//
// # Concurrency
//
// Conversions are pure, synchronous transforms over immutable inputs. The
// registry is write-once at process start; a Service may be shared across
// goroutines.
package md2ejs
