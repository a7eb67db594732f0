package md2ejs

import (
	"fmt"

	"github.com/alnah/go-md2ejs/ast"
)

// Converter translates one block variant between its three representations:
// block data to markup text, a markup tree node to editor.js blocks, and a
// markup tree node to a display/HTML string.
//
// ToMarkup must be a pure function of its data argument. ToBlocks may emit
// zero, one, or many blocks; splitting is legal (a paragraph containing an
// image emits up to three blocks).
type Converter interface {
	ToMarkup(data Data) (string, error)
	ToBlocks(node *ast.TreeNode) ([]Block, error)
	ToText(node *ast.TreeNode) (string, error)
}

// Registry maps block type names to converters. It is assembled once by
// newRegistry and never mutated afterwards, so concurrent readers need no
// synchronization.
type Registry struct {
	byName map[string]Converter
	strict bool
}

// register inserts conv under every given name. Re-registering a name with
// a different converter is a wiring mistake, caught at construction time.
func (r *Registry) register(conv Converter, names ...string) {
	for _, name := range names {
		if existing, ok := r.byName[name]; ok && existing != conv {
			panic(fmt.Sprintf("md2ejs: block type %q registered twice with different converters", name))
		}
		r.byName[name] = conv
	}
}

// Lookup returns the converter registered under name.
func (r *Registry) Lookup(name string) (Converter, bool) {
	conv, ok := r.byName[name]
	return conv, ok
}

// Strict reports whether unrecognized inline node types are rejected
// rather than passed through unwrapped.
func (r *Registry) Strict() bool {
	return r.strict
}

// newRegistry assembles the full converter table. Aliases map markup node
// names and editor.js type names onto the same converter ("heading" and
// "header" select one heading converter; "thematicBreak" and "delimiter"
// select one delimiter converter). The "html" name is deliberately absent:
// inline HTML must fall through to the serializer's passthrough wrapper.
func newRegistry(strict bool) *Registry {
	r := &Registry{byName: make(map[string]Converter), strict: strict}

	list := &listConverter{reg: r}

	r.register(&headingConverter{}, "heading", "header")
	r.register(&paragraphConverter{reg: r}, "paragraph")
	r.register(list, "list")
	r.register(&checklistConverter{listConverter: list}, "checklist")
	r.register(&delimiterConverter{}, "thematicBreak", "delimiter")
	r.register(&codeConverter{}, "code")
	r.register(&imageConverter{}, "image")
	r.register(&quoteConverter{reg: r}, "blockquote", "quote")
	r.register(&rawConverter{}, "raw")
	r.register(&tableConverter{}, "table")
	r.register(&linkEmbedConverter{}, "linkTool")
	r.register(&attachmentConverter{}, "attaches")
	r.register(&customDispatchConverter{reg: r}, embedTagName)

	return r
}

// defaultRegistry backs the package-level entry points. Strict by default;
// Service options build a relaxed copy when asked.
var defaultRegistry = newRegistry(true)

// DefaultRegistry returns the shared strict registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
