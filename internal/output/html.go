package output

import (
	"fmt"
	"io"

	"github.com/dshills/showdiff/internal/diffblock"
	"github.com/dshills/showdiff/internal/note"
)

// HTMLWriter outputs the rendered fragment.
type HTMLWriter struct{}

func (h *HTMLWriter) Write(w io.Writer, result *diffblock.Result) error {
	if _, err := io.WriteString(w, result.HTML); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// PageWriter outputs the fragment inside a standalone document.
type PageWriter struct {
	Style string
	Title string
}

func (p *PageWriter) Write(w io.Writer, result *diffblock.Result) error {
	title := p.Title
	if title == "" {
		title = result.Range
	}
	page, err := note.Wrap(title, p.Style, result.HTML)
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}
