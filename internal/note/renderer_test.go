package note

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/showdiff/internal/diffblock"
)

type fakeBlocks struct {
	bodies []string
	fail   map[string]bool
}

func (f *fakeBlocks) HTML(_ context.Context, body string) string {
	f.bodies = append(f.bodies, body)
	if f.fail[body] {
		return diffblock.ErrorHTML(errors.New("show-diff config: commits.to: missing required field"))
	}
	return `<div class="d2h-wrapper">diff</div>`
}

const sampleNote = "# Daily\n\n" +
	"```show-diff\ndates:\n  from: 2024-02-29\n```\n\n" +
	"Some text.\n\n" +
	"```go\nfunc main() {}\n```\n\n" +
	"```render-diff\nexclude: drafts\n```\n"

func TestFragment_ReplacesDiffBlocks(t *testing.T) {
	blocks := &fakeBlocks{}
	out, err := New(blocks, "").Fragment(context.Background(), []byte(sampleNote))
	if err != nil {
		t.Fatalf("Fragment error: %v", err)
	}
	html := string(out)

	if len(blocks.bodies) != 2 {
		t.Fatalf("processed %d blocks, want 2", len(blocks.bodies))
	}
	if blocks.bodies[0] != "dates:\n  from: 2024-02-29\n" {
		t.Errorf("first body = %q", blocks.bodies[0])
	}
	if blocks.bodies[1] != "exclude: drafts\n" {
		t.Errorf("legacy body = %q", blocks.bodies[1])
	}
	if strings.Count(html, `<div class="show-diff">`) != 2 {
		t.Errorf("expected two show-diff containers:\n%s", html)
	}
	if strings.Contains(html, "language-show-diff") || strings.Contains(html, "from: 2024-02-29") {
		t.Error("diff block source leaked into output")
	}
	if !strings.Contains(html, `<h1 id="daily">Daily</h1>`) {
		t.Errorf("heading missing:\n%s", html)
	}
}

func TestFragment_HighlightsOtherBlocks(t *testing.T) {
	out, err := New(&fakeBlocks{}, "").Fragment(context.Background(), []byte("```go\nfunc main() {}\n```\n"))
	if err != nil {
		t.Fatalf("Fragment error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `class="chroma"`) {
		t.Errorf("go block not highlighted:\n%s", html)
	}
	if strings.Contains(html, "show-diff") {
		t.Error("plain code block treated as diff block")
	}
}

func TestFragment_ErrorDoesNotAbort(t *testing.T) {
	src := "```show-diff\ncommits:\n  from: a\n```\n\nafter\n\n```show-diff\n```\n"
	blocks := &fakeBlocks{fail: map[string]bool{"commits:\n  from: a\n": true}}
	out, err := New(blocks, "").Fragment(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Fragment error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `<pre class="show-diff-error">`) {
		t.Errorf("error block missing:\n%s", html)
	}
	if !strings.Contains(html, "<p>after</p>") || len(blocks.bodies) != 2 {
		t.Errorf("rendering stopped after error:\n%s", html)
	}
}

func TestIsDiffLanguage(t *testing.T) {
	tests := map[string]bool{
		"show-diff":   true,
		"render-diff": true,
		"Show-Diff":   true,
		"diff":        false,
		"":            false,
	}
	for lang, want := range tests {
		if got := IsDiffLanguage(lang); got != want {
			t.Errorf("IsDiffLanguage(%q) = %v, want %v", lang, got, want)
		}
	}
}

func TestRenderFile_Page(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024-03-01.md")
	if err := os.WriteFile(path, []byte(sampleNote), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := New(&fakeBlocks{}, "monokai").RenderFile(context.Background(), path, false)
	if err != nil {
		t.Fatalf("RenderFile error: %v", err)
	}
	html := string(out)
	for _, want := range []string{"<!DOCTYPE html>", "<title>2024-03-01</title>", ".d2h-wrapper", ".chroma", `<article class="markdown-body">`} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderFile_Missing(t *testing.T) {
	_, err := New(&fakeBlocks{}, "").RenderFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"), true)
	if err == nil {
		t.Fatal("expected error for missing note")
	}
}
