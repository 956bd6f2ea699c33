package note

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/dshills/showdiff/internal/revrange"
)

// LegacyLanguage is the block language used by earlier notes.
const LegacyLanguage = "render-diff"

// KindDiffBlock is the node kind of a show-diff block.
var KindDiffBlock = ast.NewNodeKind("DiffBlock")

// DiffBlock is a show-diff fenced block whose body is YAML configuration.
type DiffBlock struct {
	ast.BaseBlock
	Language string
	Body     string
}

// Kind implements ast.Node.
func (n *DiffBlock) Kind() ast.NodeKind { return KindDiffBlock }

// Dump implements ast.Node.
func (n *DiffBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Language": n.Language}, nil)
}

// IsDiffLanguage reports whether a fence info language selects a diff block.
func IsDiffLanguage(lang string) bool {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case revrange.BlockLanguage, LegacyLanguage:
		return true
	}
	return false
}

type blockTransformer struct{}

// Transform replaces diff fenced blocks with DiffBlock nodes.
func (blockTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	var found []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fcb, ok := n.(*ast.FencedCodeBlock); ok && IsDiffLanguage(string(fcb.Language(source))) {
			found = append(found, fcb)
		}
		return ast.WalkContinue, nil
	})

	for _, fcb := range found {
		var body bytes.Buffer
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(source))
		}
		block := &DiffBlock{
			Language: string(fcb.Language(source)),
			Body:     body.String(),
		}
		parent := fcb.Parent()
		parent.ReplaceChild(parent, fcb, block)
	}
}
