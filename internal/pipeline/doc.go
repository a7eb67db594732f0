// Package pipeline wraps the external markdown machinery the converters
// rely on:
//
//   - text normalization applied before any parse (line endings, blank-line
//     compression)
//   - parsing markdown into the tree shape the block converters consume,
//     via goldmark's parser
//   - the markdown-to-HTML preview renderer, a full goldmark render with
//     syntax highlighting that runs a caller-supplied postprocessing
//     callback over the raw text first
//
// The parser is configured without table or task-list extensions on
// purpose: pipe tables and checkbox markers must reach the converters as
// literal text so their structural heuristics can run.
package pipeline
