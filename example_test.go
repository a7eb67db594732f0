package md2ejs_test

import (
	"context"
	"fmt"
	"strings"

	md2ejs "github.com/alnah/go-md2ejs"
)

// Example demonstrates converting markdown into editor.js blocks.
func Example() {
	svc := md2ejs.New()

	doc, err := svc.MarkdownToBlocks(context.Background(), "# Hello World\n\nThis is a test.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, blk := range doc.Blocks {
		fmt.Println(blk.Type)
	}
	// Output:
	// header
	// paragraph
}

// Example_blocksToMarkdown demonstrates the reverse direction.
func Example_blocksToMarkdown() {
	svc := md2ejs.New()

	doc := md2ejs.NewDocument([]md2ejs.Block{
		{Type: "header", Data: md2ejs.Data{"level": 2, "text": "Title"}},
		{Type: "paragraph", Data: md2ejs.Data{"text": "Body text."}},
	})

	markdown, err := svc.BlocksToMarkdown(doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(markdown)
	// Output:
	// ## Title
	//
	// Body text.
}

// Example_customBlock demonstrates an embedded custom tag surviving the trip
// into block JSON.
func Example_customBlock() {
	svc := md2ejs.New()

	doc, err := svc.MarkdownToBlocks(context.Background(),
		"<editorjs type=\"linkTool\" href=\"https://example.com\">A site</editorjs>\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(doc.Blocks[0].Type)
	// Output: linkTool
}

// Example_toHTML demonstrates the HTML preview.
func Example_toHTML() {
	svc := md2ejs.New()

	html, err := svc.ToHTML(context.Background(), "# Hello\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, "<h1>Hello</h1>") {
		fmt.Println("HTML preview generated")
	}
	// Output: HTML preview generated
}
