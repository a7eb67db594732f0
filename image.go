package md2ejs

import (
	"fmt"

	"github.com/alnah/go-md2ejs/ast"
)

// imageConverter handles markup images and editor.js "image" blocks.
type imageConverter struct{}

func (c *imageConverter) ToMarkup(data Data) (string, error) {
	url := data.String("url")
	if url == "" {
		url = data.Map("file").String("url")
	}
	caption := data.String("caption")
	return fmt.Sprintf("![%s](%s %q)\n", caption, url, caption), nil
}

func (c *imageConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	caption, err := c.ToText(node)
	if err != nil {
		return nil, err
	}
	return []Block{{
		Type: "image",
		Data: Data{"caption": caption, "file": Data{"url": node.URL}},
	}}, nil
}

// ToText prefers the alt text and falls back to a caption attribute.
func (c *imageConverter) ToText(node *ast.TreeNode) (string, error) {
	if node.Alt != "" {
		return node.Alt, nil
	}
	return node.Attr("caption"), nil
}
