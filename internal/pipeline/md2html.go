package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// htmlTemplate wraps goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
</head>
<body>
%s
</body>
</html>`

// Postprocessor transforms raw markdown text before the HTML render. The
// embedded custom-tag substitution is registered through this hook.
type Postprocessor func(content string) (string, error)

// HTMLRenderer converts markdown to a standalone HTML preview document
// using goldmark with syntax highlighting.
type HTMLRenderer struct {
	md   goldmark.Markdown
	post Postprocessor
}

// NewHTMLRenderer creates an HTMLRenderer. A non-empty style selects a
// chroma color scheme; otherwise highlighting emits CSS classes for
// external stylesheet control. The postprocessor may be nil.
func NewHTMLRenderer(post Postprocessor, style string) *HTMLRenderer {
	highlightOpt := highlighting.WithFormatOptions(chromahtml.WithClasses(true))
	if style != "" {
		highlightOpt = highlighting.WithStyle(style)
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(highlightOpt),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
			html.WithUnsafe(),    // Substituted tag renderings are inline HTML
		),
	)
	return &HTMLRenderer{md: md, post: post}
}

// ToHTML converts markdown content to a standalone HTML5 document. Context
// cancellation is supported via the goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *HTMLRenderer) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.post != nil {
		transformed, err := r.post(content)
		if err != nil {
			return "", err
		}
		content = transformed
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
