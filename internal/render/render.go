package render

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"html/template"
	"io"
	"strconv"

	"github.com/alecthomas/chroma/v2"
	"github.com/dshills/showdiff/internal/diffparse"
)

// Options controls HTML output.
type Options struct {
	// DrawFileList adds a summary list of changed files above the diffs.
	DrawFileList bool
	// Templates overrides icon templates by name. Values are trusted markup.
	Templates map[string]string
	// Highlight enables syntax highlighting of line content.
	Highlight bool
}

// Renderer writes diff HTML.
type Renderer struct {
	opts      Options
	templates map[string]template.HTML
}

// New returns a Renderer for opts.
func New(opts Options) *Renderer {
	merged := DefaultTemplates()
	for name, markup := range opts.Templates {
		merged[name] = markup
	}
	templates := make(map[string]template.HTML, len(merged))
	for name, markup := range merged {
		templates[name] = template.HTML(markup)
	}
	return &Renderer{opts: opts, templates: templates}
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options { return r.opts }

type fileView struct {
	ID        string
	Name      string
	Lang      string
	Status    string
	Icon      template.HTML
	Tag       template.HTML
	ListIcon  template.HTML
	Additions int
	Deletions int
	Binary    bool
	Redacted  bool
	Rows      []rowView
}

type rowView struct {
	Class   string
	Old     string
	New     string
	Prefix  string
	Content template.HTML
	Info    bool
}

type pageView struct {
	FileList bool
	Files    []fileView
}

// Write renders files to w.
func (r *Renderer) Write(w io.Writer, files []diffparse.File) error {
	view := pageView{FileList: r.opts.DrawFileList}
	for _, f := range files {
		view.Files = append(view.Files, r.fileView(f))
	}
	if err := diffTemplate.ExecuteTemplate(w, "diff", view); err != nil {
		return fmt.Errorf("rendering diff: %w", err)
	}
	return nil
}

// Render returns the HTML for files.
func (r *Renderer) Render(files []diffparse.File) (string, error) {
	var buf bytes.Buffer
	if err := r.Write(&buf, files); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) fileView(f diffparse.File) fileView {
	name := f.Name()
	status := string(f.Status)
	v := fileView{
		ID:        fileID(name),
		Name:      f.DisplayName(),
		Status:    status,
		Icon:      r.templates[IconFile],
		Tag:       r.templates["tag-file-"+status],
		ListIcon:  r.templates["icon-file-"+status],
		Additions: f.Additions,
		Deletions: f.Deletions,
		Binary:    f.Binary,
		Redacted:  f.Redacted,
	}

	lexer := lexerFor(name)
	v.Lang = lexerName(lexer)
	if !r.opts.Highlight {
		lexer = nil
	}

	for _, h := range f.Hunks {
		v.Rows = append(v.Rows, rowView{
			Class:   "d2h-info",
			Content: template.HTML(template.HTMLEscapeString(h.Header)),
			Info:    true,
		})
		for _, l := range h.Lines {
			v.Rows = append(v.Rows, lineRow(l, lexer))
		}
	}
	return v
}

func lineRow(l diffparse.Line, lexer chroma.Lexer) rowView {
	row := rowView{
		Old:     lineNumber(l.Old),
		New:     lineNumber(l.New),
		Content: highlightLine(lexer, l.Content),
	}
	switch l.Type {
	case diffparse.LineAdded:
		row.Class, row.Prefix = "d2h-ins", "+"
	case diffparse.LineDeleted:
		row.Class, row.Prefix = "d2h-del", "-"
	default:
		row.Class, row.Prefix = "d2h-cntx", " "
	}
	return row
}

func lineNumber(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func fileID(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return fmt.Sprintf("d2h-%06x", h.Sum32()&0xffffff)
}
