package render

import (
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// lexerFor picks a lexer by file name, falling back to plain text.
func lexerFor(filename string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func lexerName(l chroma.Lexer) string {
	if cfg := l.Config(); cfg != nil {
		return strings.ToLower(cfg.Name)
	}
	return ""
}

// highlightLine renders one line of source as class-based chroma spans. Each
// line is lexed alone, so constructs spanning lines lose their context.
func highlightLine(lexer chroma.Lexer, content string) template.HTML {
	if lexer == nil || content == "" {
		return template.HTML(template.HTMLEscapeString(content))
	}
	it, err := lexer.Tokenise(nil, content)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}

	var b strings.Builder
	for _, tok := range it.Tokens() {
		value := strings.TrimRight(tok.Value, "\n")
		if value == "" {
			continue
		}
		class := tokenClass(tok.Type)
		if class == "" {
			b.WriteString(template.HTMLEscapeString(value))
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(class)
		b.WriteString(`">`)
		b.WriteString(template.HTMLEscapeString(value))
		b.WriteString(`</span>`)
	}
	return template.HTML(b.String())
}

// tokenClass mirrors the class names chroma's HTML formatter emits, so the
// formatter's stylesheet applies.
func tokenClass(t chroma.TokenType) string {
	for _, candidate := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if class, ok := chroma.StandardTypes[candidate]; ok {
			return class
		}
	}
	return ""
}
