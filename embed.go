package md2ejs

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/alnah/go-md2ejs/ast"
)

// Block types with no native markup form travel through markup text as an
// HTML-like tag: <editorjs type="T" k="v" ...>body</editorjs>, or the
// self-closing <editorjs type="T" k="v" .../> when there is no body. The
// "type" attribute selects the registry entry that decodes the block.
const embedTagName = "editorjs"

var (
	// Paired form first (non-greedy body), then self-closing.
	embedPairedPattern    = regexp.MustCompile(`(?s)<` + embedTagName + `\s+([^>]*?)>(.*?)</` + embedTagName + `>`)
	embedSelfClosePattern = regexp.MustCompile(`<` + embedTagName + `\s+([^>]*?)/>`)

	embedAttrPattern = regexp.MustCompile(`([A-Za-z][\w-]*)\s*=\s*"([^"]*)"`)
)

func isEmbedOpen(value string) bool {
	return strings.HasPrefix(strings.TrimSpace(value), "<"+embedTagName)
}

func isEmbedClose(value string) bool {
	return strings.HasPrefix(strings.TrimSpace(value), "</"+embedTagName+">")
}

func isEmbedSelfClosing(value string) bool {
	return strings.HasSuffix(strings.TrimSpace(value), "/>")
}

// encodeEmbedTag renders the wire form of a custom block. Attributes keep
// the given order so the encoding is stable; empty-valued attributes are
// omitted. Values and body are HTML-escaped and unescaped symmetrically by
// decodeEmbedTag.
func encodeEmbedTag(typ string, attrs [][2]string, body string) string {
	var b strings.Builder
	b.WriteString("<" + embedTagName + ` type="` + html.EscapeString(typ) + `"`)
	for _, kv := range attrs {
		if kv[1] == "" {
			continue
		}
		b.WriteString(` ` + kv[0] + `="` + html.EscapeString(kv[1]) + `"`)
	}
	if body == "" {
		b.WriteString("/>")
	} else {
		b.WriteString(">" + html.EscapeString(body) + "</" + embedTagName + ">")
	}
	return b.String()
}

// decodeEmbedTag extracts the attribute map of an embedded tag. Enclosed
// text is stored under "body" unless a body attribute is already present.
func decodeEmbedTag(tag string) (map[string]string, error) {
	var rawAttrs, body string
	switch {
	case embedPairedPattern.MatchString(tag):
		m := embedPairedPattern.FindStringSubmatch(tag)
		rawAttrs, body = m[1], m[2]
	case embedSelfClosePattern.MatchString(tag):
		m := embedSelfClosePattern.FindStringSubmatch(tag)
		rawAttrs = m[1]
	default:
		return nil, fmt.Errorf("%w: %q", ErrMalformedEmbedTag, tag)
	}

	attrs := make(map[string]string)
	for _, m := range embedAttrPattern.FindAllStringSubmatch(rawAttrs, -1) {
		attrs[m[1]] = html.UnescapeString(m[2])
	}
	if body != "" {
		if _, ok := attrs["body"]; !ok {
			attrs["body"] = html.UnescapeString(body)
		}
	}
	return attrs, nil
}

// embedConverterFor resolves the registry entry named by a decoded tag's
// type attribute. The dispatcher's own name never resolves, so a tag
// cannot dispatch back into the dispatcher.
func (r *Registry) embedConverterFor(attrs map[string]string) (Converter, error) {
	typ := attrs["type"]
	conv, ok := r.Lookup(typ)
	if !ok || typ == embedTagName {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCustomBlockType, typ)
	}
	return conv, nil
}

// PostprocessEmbeds substitutes every embedded custom tag in text with the
// corresponding converter's display rendering. This is the callback handed
// to the external markup pipeline ahead of its parse: it is idempotent on
// tag-free text, and on failure it returns the input unchanged alongside
// the error.
func (r *Registry) PostprocessEmbeds(text string) (string, error) {
	out, err := r.replaceEmbeds(text, embedPairedPattern)
	if err != nil {
		return text, err
	}
	out, err = r.replaceEmbeds(out, embedSelfClosePattern)
	if err != nil {
		return text, err
	}
	return out, nil
}

func (r *Registry) replaceEmbeds(text string, pattern *regexp.Regexp) (string, error) {
	var firstErr error
	out := pattern.ReplaceAllStringFunc(text, func(tag string) string {
		if firstErr != nil {
			return tag
		}
		attrs, err := decodeEmbedTag(tag)
		if err != nil {
			firstErr = err
			return tag
		}
		conv, err := r.embedConverterFor(attrs)
		if err != nil {
			firstErr = err
			return tag
		}
		s, err := conv.ToText(ast.FromAttrs(attrs))
		if err != nil {
			firstErr = err
			return tag
		}
		return s
	})
	if firstErr != nil {
		return text, firstErr
	}
	return out, nil
}

// linkEmbedConverter handles editor.js "linkTool" blocks through the
// embedding protocol.
type linkEmbedConverter struct{}

func (c *linkEmbedConverter) ToMarkup(data Data) (string, error) {
	meta := data.Map("meta")
	tag := encodeEmbedTag("linkTool", [][2]string{
		{"href", data.String("link")},
		{"title", meta.String("title")},
		{"image", meta.Map("image").String("url")},
	}, meta.String("description"))
	return tag + "\n\n", nil
}

func (c *linkEmbedConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	return []Block{{
		Type: "linkTool",
		Data: Data{
			"link": node.Attr("href"),
			"meta": Data{
				"title":       node.Attr("title"),
				"description": node.Attr("body"),
				"image":       Data{"url": node.Attr("image")},
			},
		},
	}}, nil
}

func (c *linkEmbedConverter) ToText(node *ast.TreeNode) (string, error) {
	label := node.Attr("title")
	if label == "" {
		label = node.Attr("body")
	}
	if label == "" {
		label = node.Attr("href")
	}
	return fmt.Sprintf("<a href=%q>%s</a>", node.Attr("href"), label), nil
}

// attachmentConverter handles editor.js "attaches" blocks through the
// embedding protocol.
type attachmentConverter struct{}

func (c *attachmentConverter) ToMarkup(data Data) (string, error) {
	tag := encodeEmbedTag("attaches", [][2]string{
		{"file", data.Map("file").String("url")},
	}, data.String("title"))
	return tag + "\n\n", nil
}

func (c *attachmentConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	return []Block{{
		Type: "attaches",
		Data: Data{
			"file":  Data{"url": node.Attr("file")},
			"title": node.Attr("body"),
		},
	}}, nil
}

func (c *attachmentConverter) ToText(node *ast.TreeNode) (string, error) {
	return fmt.Sprintf("<a href=%q>%s</a>", node.Attr("file"), node.Attr("body")), nil
}

// customDispatchConverter bridges the embedding protocol to the registry:
// it decodes a tag, reads its type attribute, and re-invokes the matching
// converter with the attribute map standing in for a tree node.
type customDispatchConverter struct {
	reg *Registry
}

func (c *customDispatchConverter) ToMarkup(data Data) (string, error) {
	return "", fmt.Errorf("%w: custom dispatch to markup", ErrNotImplemented)
}

func (c *customDispatchConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	attrs, err := c.attrsOf(node)
	if err != nil {
		return nil, err
	}
	conv, err := c.reg.embedConverterFor(attrs)
	if err != nil {
		return nil, err
	}
	return conv.ToBlocks(ast.FromAttrs(attrs))
}

func (c *customDispatchConverter) ToText(node *ast.TreeNode) (string, error) {
	attrs, err := c.attrsOf(node)
	if err != nil {
		return "", err
	}
	conv, err := c.reg.embedConverterFor(attrs)
	if err != nil {
		return "", err
	}
	return conv.ToText(ast.FromAttrs(attrs))
}

func (c *customDispatchConverter) attrsOf(node *ast.TreeNode) (map[string]string, error) {
	if node.Attrs != nil {
		return node.Attrs, nil
	}
	return decodeEmbedTag(node.Value)
}
