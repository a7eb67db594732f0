package md2ejs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2ejs/ast"
	"github.com/alnah/go-md2ejs/internal/pipeline"
)

// Service is the document-level entry point for conversions. It is
// stateless apart from its registry and preview renderer, both read-only
// after New, so a single Service is safe for concurrent use; callers may
// parallelize independent document conversions freely.
type Service struct {
	cfg     Options
	reg     *Registry
	preview *pipeline.HTMLRenderer
}

// Option customizes a Service.
type Option func(*Options)

// WithStrict controls strict inline serialization. Strict mode rejects
// unrecognized inline node types; non-strict passes their value through
// unwrapped.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithChromaStyle selects the chroma color scheme for the HTML preview.
// Empty keeps the default CSS-classes output.
func WithChromaStyle(style string) Option {
	return func(o *Options) { o.ChromaStyle = style }
}

// WithOptions replaces the whole option set, e.g. one loaded from a YAML
// file via LoadOptions.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// New creates a Service with default options.
func New(opts ...Option) *Service {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := defaultRegistry
	if !cfg.Strict {
		reg = newRegistry(false)
	}

	return &Service{
		cfg:     cfg,
		reg:     reg,
		preview: pipeline.NewHTMLRenderer(reg.PostprocessEmbeds, cfg.ChromaStyle),
	}
}

// Registry returns the converter registry backing this service.
func (s *Service) Registry() *Registry {
	return s.reg
}

// MarkdownToBlocks converts markdown content into an editor.js document.
// A failing block aborts the whole conversion; there is no per-block skip
// mode. Callers wanting partial tolerance must split the input themselves.
func (s *Service) MarkdownToBlocks(ctx context.Context, content string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if strings.TrimSpace(content) == "" {
		return Document{}, ErrEmptyMarkdown
	}

	root := pipeline.Parse([]byte(pipeline.Normalize(content)))

	blocks := []Block{}
	for _, node := range root.Children {
		converted, err := s.convertNode(node)
		if err != nil {
			return Document{}, fmt.Errorf("converting %s node: %w", node.Type, err)
		}
		blocks = append(blocks, converted...)
	}
	return NewDocument(blocks), nil
}

// convertNode routes one top-level tree node through the registry. HTML
// blocks carrying an embedded custom tag go to the dispatcher; any other
// HTML block hits the raw converter's unsupported direction.
func (s *Service) convertNode(node *ast.TreeNode) ([]Block, error) {
	name := node.Type
	if name == ast.TypeHTML {
		name = "raw"
		if isEmbedOpen(node.Value) {
			name = embedTagName
		}
	}
	conv, ok := s.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, name)
	}
	return conv.ToBlocks(node)
}

// BlocksToMarkdown serializes an editor.js document to markdown. Blocks
// that do not already end on a blank line get one, so adjacent blocks
// never glue together.
func (s *Service) BlocksToMarkdown(doc Document) (string, error) {
	var b strings.Builder
	for _, blk := range doc.Blocks {
		conv, ok := s.reg.Lookup(blk.Type)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownBlockType, blk.Type)
		}
		chunk, err := conv.ToMarkup(blk.Data)
		if err != nil {
			return "", fmt.Errorf("serializing %s block: %w", blk.Type, err)
		}
		b.WriteString(chunk)
		if !strings.HasSuffix(chunk, "\n\n") {
			b.WriteString("\n")
		}
	}
	if b.Len() == 0 {
		return "", nil
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// ToHTML renders markdown to a standalone HTML preview, substituting
// embedded custom tags with their display renderings first.
func (s *Service) ToHTML(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyMarkdown
	}
	out, err := s.preview.ToHTML(ctx, content)
	if err != nil {
		if errors.Is(err, pipeline.ErrHTMLConversion) {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return "", err
	}
	return out, nil
}
