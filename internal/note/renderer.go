package note

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/dshills/showdiff/internal/render"
)

// BlockSource produces HTML for a block body. Failures are expected to be
// rendered into the returned markup.
type BlockSource interface {
	HTML(ctx context.Context, body string) string
}

// Extension registers the DiffBlock transformer and renderer.
type Extension struct {
	Blocks  BlockSource
	Context context.Context
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(blockTransformer{}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&blockRenderer{blocks: e.Blocks, ctx: e.Context}, 100),
	))
}

type blockRenderer struct {
	blocks BlockSource
	ctx    context.Context
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *blockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindDiffBlock, r.renderDiffBlock)
}

func (r *blockRenderer) renderDiffBlock(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*DiffBlock)
	ctx := r.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	_, _ = w.WriteString(`<div class="show-diff">`)
	_, _ = w.WriteString(r.blocks.HTML(ctx, n.Body))
	_, _ = w.WriteString("</div>\n")
	return ast.WalkSkipChildren, nil
}

// Renderer converts notes to HTML.
type Renderer struct {
	blocks BlockSource
	style  string
}

// New returns a Renderer using blocks for show-diff blocks and the named
// chroma style for the page stylesheet.
func New(blocks BlockSource, style string) *Renderer {
	if style == "" {
		style = render.DefaultStyle
	}
	return &Renderer{blocks: blocks, style: style}
}

func (r *Renderer) markdown(ctx context.Context) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(r.style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
			&Extension{Blocks: r.blocks, Context: ctx},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// Fragment renders a note body without the surrounding page.
func (r *Renderer) Fragment(ctx context.Context, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.markdown(ctx).Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// Page renders a note as a standalone HTML document with the stylesheet inlined.
func (r *Renderer) Page(ctx context.Context, title string, src []byte) ([]byte, error) {
	body, err := r.Fragment(ctx, src)
	if err != nil {
		return nil, err
	}
	return Wrap(title, r.style, string(body))
}

// RenderFile reads and renders the note at path.
func (r *Renderer) RenderFile(ctx context.Context, path string, fragment bool) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading note: %w", err)
	}
	if fragment {
		return r.Fragment(ctx, src)
	}
	return r.Page(ctx, Title(path), src)
}

// Title derives a page title from a note path.
func Title(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
{{.CSS}}
</style>
</head>
<body>
<article class="markdown-body">
{{.Body}}
</article>
</body>
</html>
`))

// Wrap places body in a standalone page styled with the named chroma style.
func Wrap(title, style, body string) ([]byte, error) {
	css, err := render.StyleSheet(style)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{title, template.CSS(css), template.HTML(body)})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}
