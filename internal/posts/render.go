package posts

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderOptions tunes markdown rendering. Empty Extensions selects GFM,
// linkify and task lists. SafeMode drops raw HTML from the output.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// Renderer converts post bodies to HTML. A single instance is safe for
// concurrent use.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer builds a goldmark backed renderer.
func NewRenderer(opts RenderOptions) *Renderer {
	return &Renderer{engine: newEngine(opts)}
}

// Render converts body to HTML.
func (r *Renderer) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("posts: render markdown: %w", err)
	}
	return buf.String(), nil
}

func newEngine(opts RenderOptions) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM, extension.Linkify, extension.TaskList}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[key]; dup {
			continue
		}
		if ext, ok := extensionRegistry[key]; ok {
			extenders = append(extenders, ext)
			seen[key] = struct{}{}
		}
	}
	return extenders
}
