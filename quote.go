package md2ejs

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2ejs/ast"
)

// citePattern captures the attribution inside a <cite> tag. Single capture
// group; extraction uses the first occurrence only.
var citePattern = regexp.MustCompile(`<cite>(.+?)</cite>`)

// quoteConverter handles markup blockquotes and editor.js "quote" blocks.
// The quote caption has no native markup form, so it travels as a <cite>
// tag inside the quoted text.
type quoteConverter struct {
	reg *Registry
}

func (c *quoteConverter) ToMarkup(data Data) (string, error) {
	result := "> " + data.String("text") + "\n"
	if caption := data.String("caption"); caption != "" {
		result += "> <cite>" + caption + "</cite>\n"
	}
	return result, nil
}

func (c *quoteConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	text, err := c.ToText(node)
	if err != nil {
		return nil, err
	}
	text = strings.ReplaceAll(text, "\n", "<br/>\n")

	caption := ""
	if m := citePattern.FindStringSubmatch(text); m != nil {
		caption = m[1]
		text = citePattern.ReplaceAllString(text, "")
	}

	return []Block{{
		Type: "quote",
		Data: Data{"alignment": "left", "caption": caption, "text": text},
	}}, nil
}

func (c *quoteConverter) ToText(node *ast.TreeNode) (string, error) {
	return c.reg.nodeText(node)
}
