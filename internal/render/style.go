package render

import (
	_ "embed"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

//go:embed diff.css
var baseCSS string

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// StyleSheet returns the CSS for diff markup plus the chroma style named
// style. Unknown styles fall back to chroma's default.
func StyleSheet(style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	var b strings.Builder
	b.WriteString(baseCSS)
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&b, styles.Get(style)); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", style, err)
	}
	return b.String(), nil
}
