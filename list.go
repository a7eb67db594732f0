package md2ejs

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2ejs/ast"
)

// listConverter handles markup lists and editor.js "list" blocks, and owns
// the checklist inference heuristic: the markup tree has no native
// checklist node, so a list whose every top-level item reads like a
// checkbox marker is promoted to a checklist block.
type listConverter struct {
	reg *Registry
}

func (c *listConverter) ToMarkup(data Data) (string, error) {
	style := data.String("style")
	if style == "" {
		style = "unordered"
	}
	lines := renderListItems(data.Slice("items"), style, 0)
	return "\n" + strings.Join(lines, "\n") + "\n", nil
}

func renderListItems(items []any, style string, depth int) []string {
	var lines []string
	for i, it := range items {
		item := asData(it)
		prefix := "-"
		if style == "ordered" {
			prefix = fmt.Sprintf("%d.", i+1)
		}
		lines = append(lines, strings.Repeat("  ", depth)+prefix+" "+item.String("content"))
		if sub := item.Slice("items"); len(sub) > 0 {
			lines = append(lines, renderListItems(sub, style, depth+1)...)
		}
	}
	return lines
}

func (c *listConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	var items []any
	couldBeChecklist := true

	for _, child := range node.Children {
		var content strings.Builder
		subitems := []any{}

		for _, grand := range child.Children {
			switch grand.Type {
			case ast.TypeParagraph:
				s, err := c.reg.nodeText(grand)
				if err != nil {
					return nil, err
				}
				couldBeChecklist = couldBeChecklist && isChecklistItem(s)
				content.WriteString(s)
			case ast.TypeList:
				couldBeChecklist = false
				sub, err := c.ToBlocks(grand)
				if err != nil {
					return nil, err
				}
				subitems = append(subitems, sub[0].Data.Slice("items")...)
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnsupportedListChildType, grand.Type)
			}
		}

		items = append(items, Data{"content": content.String(), "items": subitems})
	}

	if couldBeChecklist {
		checkItems := []any{}
		for _, it := range items {
			content := asData(it).String("content")
			text := strings.TrimPrefix(strings.TrimPrefix(content, "[ ] "), "[x] ")
			checkItems = append(checkItems, Data{
				"text":    text,
				"checked": strings.HasPrefix(content, "[x]"),
			})
		}
		return []Block{{Type: "checklist", Data: Data{"items": checkItems}}}, nil
	}

	style := "unordered"
	if node.Ordered {
		style = "ordered"
	}
	return []Block{{Type: "list", Data: Data{"items": items, "style": style}}}, nil
}

func (c *listConverter) ToText(node *ast.TreeNode) (string, error) {
	return "", nil
}

func isChecklistItem(content string) bool {
	t := strings.TrimSpace(content)
	return strings.HasPrefix(t, "[ ]") || strings.HasPrefix(t, "[x]")
}

// checklistConverter serializes editor.js "checklist" blocks back to
// markup. Tree-to-block conversion never targets it directly; checklist
// blocks are produced by the list converter's inference.
type checklistConverter struct {
	*listConverter
}

func (c *checklistConverter) ToMarkup(data Data) (string, error) {
	var lines []string
	for _, it := range data.Slice("items") {
		item := asData(it)
		char := " "
		if item.Bool("checked") {
			char = "x"
		}
		lines = append(lines, "- ["+char+"] "+strings.TrimSpace(item.String("text")))
	}
	return "\n" + strings.Join(lines, "\n") + "\n", nil
}
