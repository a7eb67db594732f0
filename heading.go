package md2ejs

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2ejs/ast"
)

// headingConverter handles markup headings and editor.js "header" blocks.
type headingConverter struct{}

func (c *headingConverter) ToMarkup(data Data) (string, error) {
	level := 1
	if _, ok := data["level"]; ok {
		level = data.Int("level")
	}
	if level < 1 || level > 6 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidHeadingLevel, level)
	}
	return strings.Repeat("#", level) + " " + data.String("text") + "\n", nil
}

func (c *headingConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	if node.Depth < 1 || node.Depth > 6 {
		return nil, fmt.Errorf("%w: got depth %d", ErrInvalidHeadingLevel, node.Depth)
	}
	text, err := c.ToText(node)
	if err != nil {
		return nil, err
	}
	return []Block{{
		Type: "header",
		Data: Data{"level": node.Depth, "text": text},
	}}, nil
}

// ToText returns the literal value of the heading's sole child.
func (c *headingConverter) ToText(node *ast.TreeNode) (string, error) {
	if len(node.Children) != 1 {
		return "", fmt.Errorf("%w: heading must have exactly one child, got %d", ErrInvalidHeadingLevel, len(node.Children))
	}
	return node.Children[0].Value, nil
}
